package chat

import (
	"encoding/json"
	"strings"
	"testing"

	"finmentor/internal/content"
)

func optIdx(i int) *int { return &i }

// testLesson builds a small lesson: five pre-test items (1, 3, 5 scored;
// 2, 4 acknowledgment-only), two topics (the first with expansion content),
// and five scored post-test items.
func testLesson() *content.Lesson {
	l := &content.Lesson{
		ID:              "test-lesson",
		Title:           "Test Lesson",
		Introduction:    "Welcome to the test lesson!",
		PreTestIntro:    "Warm-up first.",
		PreTestComplete: "Warm-up done.",
		PostTestIntro:   "Final quiz time.",
		Completion:      "Lesson complete!",
		PreTest: []content.PreTestItem{
			{ID: "p1", Question: "Pick B.\nA. Apples\nB. Rent\nC. Cats", Options: []string{"A. Apples", "B. Rent", "C. Cats"}, Answer: "B"},
			{ID: "p2", Question: "How do you feel?", MentorAnswer: "Thanks for sharing!"},
			{ID: "p3", Question: "True or false?", Options: []string{"True", "False"}, AnswerIndex: optIdx(1)},
			{ID: "p4", Question: "Tell me a story.", MentorAnswer: "What a story!"},
			{ID: "p5", Question: "Pick A.\nA. Yes\nB. No", Options: []string{"A. Yes", "B. No"}, Answer: "A"},
		},
		Topics: []content.Topic{
			{ID: "t1", Title: "First Topic", Body: "Body one.", Analogy: "Like a bucket.", Scenario: "Maya budgets.", DiscussionQuestion: "What do you think?"},
			{ID: "t2", Title: "Second Topic", Body: "Body two.", DiscussionQuestion: "And now?"},
		},
		PostTest: []content.PostTestItem{
			{ID: "q1", Question: "One?", Options: []string{"A. Right", "B. Wrong"}, Answer: "A", Explanation: "Because one."},
			{ID: "q2", Question: "Two?", Options: []string{"A. Right", "B. Wrong"}, AnswerIndex: optIdx(0), Explanation: "Because two."},
			{ID: "q3", Question: "Three?", Options: []string{"A. Right", "B. Wrong"}, Answer: "A", Explanation: "Because three."},
			{ID: "q4", Question: "Four?", Options: []string{"A. Right", "B. Wrong"}, Answer: "A", Explanation: "Because four."},
			{ID: "q5", Question: "Five?", Options: []string{"A. Right", "B. Wrong"}, Answer: "A", Explanation: "Because five."},
		},
	}
	if err := content.Validate(l); err != nil {
		panic(err)
	}
	return l
}

// advance applies a sequence of answers and returns the final state.
func advance(t *testing.T, state State, lesson *content.Lesson, inputs ...string) State {
	t.Helper()
	for _, in := range inputs {
		r := Transition(state, lesson, Answer(in))
		assertInvariants(t, state, r.State, lesson)
		state = r.State
	}
	return state
}

// assertInvariants checks cursor monotonicity and correctness bounds across
// one transition.
func assertInvariants(t *testing.T, before, after State, lesson *content.Lesson) {
	t.Helper()
	if after.PreTestCursor < before.PreTestCursor || after.TopicCursor < before.TopicCursor || after.PostTestCursor < before.PostTestCursor {
		t.Fatalf("cursor decreased: %+v -> %+v", before, after)
	}
	if after.PreTestCursor > len(lesson.PreTest) || after.TopicCursor > len(lesson.Topics) || after.PostTestCursor > len(lesson.PostTest) {
		t.Fatalf("cursor out of range: %+v", after)
	}
	if after.PreTestCorrect > after.PreTestCursor {
		t.Fatalf("pre-test correct count %d exceeds cursor %d", after.PreTestCorrect, after.PreTestCursor)
	}
	if after.PostTestCorrect > after.PostTestCursor {
		t.Fatalf("post-test correct count %d exceeds cursor %d", after.PostTestCorrect, after.PostTestCursor)
	}
}

// toPreTest walks a fresh attempt up to the first pre-test question.
func toPreTest(t *testing.T, lesson *content.Lesson) State {
	t.Helper()
	r := Transition(NewState(), lesson, Start())
	if r.State.Phase != PhaseIntroduction {
		t.Fatalf("Phase after Start = %v, want introduction", r.State.Phase)
	}
	state := advance(t, r.State, lesson, "hi", "ok")
	if state.Phase != PhasePreTest {
		t.Fatalf("Phase = %v, want pre_test", state.Phase)
	}
	return state
}

// toTopics walks a fresh attempt to the first topic.
func toTopics(t *testing.T, lesson *content.Lesson) State {
	t.Helper()
	state := toPreTest(t, lesson)
	state = advance(t, state, lesson, "B", "fine", "False", "story", "A", "ok")
	if state.Phase != PhaseTopic {
		t.Fatalf("Phase = %v, want topic", state.Phase)
	}
	return state
}

// toPostTest walks a fresh attempt to the first post-test question.
func toPostTest(t *testing.T, lesson *content.Lesson) State {
	t.Helper()
	state := toTopics(t, lesson)
	state = advance(t, state, lesson, "next", "next", "ok")
	if state.Phase != PhasePostTest {
		t.Fatalf("Phase = %v, want post_test", state.Phase)
	}
	return state
}

func TestTransition_StartEmitsIntroduction(t *testing.T) {
	lesson := testLesson()
	r := Transition(NewState(), lesson, Start())

	if len(r.Messages) != 1 || r.Messages[0].Text != lesson.Introduction {
		t.Errorf("Start messages = %v, want the introduction", r.Messages)
	}
	if r.Messages[0].Role != RoleMentor {
		t.Errorf("Role = %v, want mentor", r.Messages[0].Role)
	}
	if len(r.QuickReplies) == 0 {
		t.Error("expected quick replies with the introduction")
	}
}

func TestTransition_StartIsIdempotent(t *testing.T) {
	lesson := testLesson()
	state := toPreTest(t, lesson)

	r := Transition(state, lesson, Start())
	if r.State.Phase != state.Phase || r.State.PreTestCursor != state.PreTestCursor ||
		r.State.PreTestCorrect != state.PreTestCorrect {
		t.Errorf("Start on live attempt changed state: %+v -> %+v", state, r.State)
	}
	if len(r.Messages) == 0 {
		t.Error("expected a reprompt for idempotent Start")
	}
}

func TestTransition_PreTestScoring(t *testing.T) {
	// Scenario: scored items answered correct, arbitrary, correct,
	// arbitrary, wrong -> 2 of 5, the 40% tier.
	lesson := testLesson()
	state := toPreTest(t, lesson)

	state = advance(t, state, lesson, "B", "whatever", "False", "anything")
	if state.PreTestCorrect != 2 {
		t.Fatalf("PreTestCorrect = %d, want 2 before final item", state.PreTestCorrect)
	}

	r := Transition(state, lesson, Answer("No")) // wrong: answer is A
	state = r.State

	if state.Phase != PhasePreTestComplete {
		t.Fatalf("Phase = %v, want pre_test_complete", state.Phase)
	}
	if state.PreTestCorrect != 2 {
		t.Errorf("PreTestCorrect = %d, want 2", state.PreTestCorrect)
	}
	if len(state.PreTestResponses) != 5 {
		t.Errorf("PreTestResponses length = %d, want 5", len(state.PreTestResponses))
	}

	var feedback string
	for _, m := range r.Messages {
		if strings.Contains(m.Text, "2 out of 5") {
			feedback = m.Text
		}
	}
	if feedback == "" {
		t.Fatalf("no score message in %v", r.Messages)
	}
	if !strings.Contains(feedback, "fill in the rest") {
		t.Errorf("score message %q should use the 40%% tier template", feedback)
	}
}

func TestTransition_MentorItemsNeverScore(t *testing.T) {
	lesson := testLesson()
	state := toPreTest(t, lesson)
	state = advance(t, state, lesson, "B") // item 1 correct

	// Item 2 is acknowledgment-only: even typing the text of a correct
	// answer elsewhere cannot bump the count.
	r := Transition(state, lesson, Answer("B"))
	if r.State.PreTestCorrect != 1 {
		t.Errorf("PreTestCorrect = %d, want 1", r.State.PreTestCorrect)
	}
	if len(r.Messages) == 0 || r.Messages[0].Text != "Thanks for sharing!" {
		t.Errorf("messages = %v, want the mentor answer first", r.Messages)
	}
}

func TestTransition_TopicLearnMore(t *testing.T) {
	lesson := testLesson()
	state := toTopics(t, lesson)

	// "learn more" expands topic 1 without advancing the cursor.
	r := Transition(state, lesson, Answer("learn more"))
	if r.State.Phase != PhaseTopicExpanded {
		t.Fatalf("Phase = %v, want topic_expanded", r.State.Phase)
	}
	if r.State.TopicCursor != 0 {
		t.Errorf("TopicCursor = %d, want 0 (unchanged)", r.State.TopicCursor)
	}
	joined := joinTexts(r.Messages)
	if !strings.Contains(joined, "Like a bucket.") || !strings.Contains(joined, "Maya budgets.") {
		t.Errorf("expansion messages = %q, want analogy and scenario", joined)
	}

	// A plain answer then advances to topic 2.
	r = Transition(r.State, lesson, Answer("got it"))
	if r.State.Phase != PhaseTopic || r.State.TopicCursor != 1 {
		t.Fatalf("after expansion: phase %v cursor %d, want topic/1", r.State.Phase, r.State.TopicCursor)
	}

	// And once more into the post-test intro.
	r = Transition(r.State, lesson, Answer("next"))
	if r.State.Phase != PhasePostTestIntro {
		t.Errorf("Phase = %v, want post_test_intro", r.State.Phase)
	}
}

func TestTransition_LearnMoreWithoutExpansionAdvances(t *testing.T) {
	lesson := testLesson()
	state := toTopics(t, lesson)
	state = advance(t, state, lesson, "next") // topic 2 has no expansion

	r := Transition(state, lesson, Answer("learn more"))
	if r.State.Phase != PhasePostTestIntro {
		t.Errorf("Phase = %v, want post_test_intro (no expansion to show)", r.State.Phase)
	}
}

func TestTransition_PostTestPassBoundary(t *testing.T) {
	tests := []struct {
		name     string
		answers  []string
		correct  int
		passing  bool
		fragment string
	}{
		{"exactly 80 percent passes", []string{"A", "A", "A", "A", "B"}, 4, true, "passing score"},
		{"60 percent does not pass", []string{"A", "A", "A", "B", "B"}, 3, false, "under the 80%"},
		{"90-plus tier", []string{"A", "A", "A", "A", "A"}, 5, true, "Phenomenal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson := testLesson()
			state := toPostTest(t, lesson)

			var last Result
			for _, a := range tt.answers {
				last = Transition(state, lesson, Answer(a))
				state = last.State
			}

			if state.Phase != PhaseComplete {
				t.Fatalf("Phase = %v, want complete", state.Phase)
			}
			if state.PostTestCorrect != tt.correct {
				t.Fatalf("PostTestCorrect = %d, want %d", state.PostTestCorrect, tt.correct)
			}
			joined := joinTexts(last.Messages)
			if !strings.Contains(joined, tt.fragment) {
				t.Errorf("final messages %q missing %q", joined, tt.fragment)
			}
			if tt.passing && strings.Contains(joined, "under the 80%") {
				t.Error("passing run produced the not-passing note")
			}
		})
	}
}

func TestTransition_PostTestItemFeedback(t *testing.T) {
	lesson := testLesson()
	state := toPostTest(t, lesson)

	r := Transition(state, lesson, Answer("B")) // wrong
	joined := joinTexts(r.Messages)
	if !strings.Contains(joined, "Not quite") || !strings.Contains(joined, "Because one.") {
		t.Errorf("wrong-answer feedback = %q, want correction plus explanation", joined)
	}

	r = Transition(r.State, lesson, Answer("A")) // right
	joined = joinTexts(r.Messages)
	if !strings.Contains(joined, "Correct!") || !strings.Contains(joined, "Because two.") {
		t.Errorf("correct-answer feedback = %q", joined)
	}
}

func TestTransition_CompletionEmittedExactlyOnce(t *testing.T) {
	lesson := testLesson()
	state := toPostTest(t, lesson)

	emissions := 0
	var got *Completion
	for _, a := range []string{"A", "A", "A", "A", "B", "thanks", "hello", "ask a question", "what is rent?"} {
		r := Transition(state, lesson, Answer(a))
		if r.Completion != nil {
			emissions++
			got = r.Completion
		}
		state = r.State
	}

	if emissions != 1 {
		t.Fatalf("completion emitted %d times, want exactly 1", emissions)
	}
	if got.LessonID != "test-lesson" || got.Score != 4 || got.Total != 5 {
		t.Errorf("completion = %+v, want {test-lesson 4 5}", got)
	}
}

func TestTransition_CompletePhaseRouting(t *testing.T) {
	lesson := testLesson()
	state := toPostTest(t, lesson)
	state = advance(t, state, lesson, "A", "A", "A", "A", "A")

	// Thanks stays on complete.
	r := Transition(state, lesson, Answer("thanks!"))
	if r.State.Phase != PhaseComplete {
		t.Errorf("after thanks: phase = %v, want complete", r.State.Phase)
	}
	if !strings.Contains(joinTexts(r.Messages), "welcome") {
		t.Errorf("thanks reply = %q", joinTexts(r.Messages))
	}

	// Unrecognized input reprompts.
	r = Transition(state, lesson, Answer("banana"))
	if r.State.Phase != PhaseComplete || len(r.Messages) == 0 {
		t.Error("expected a reprompt on unrecognized input after completion")
	}

	// Asking a question enters the free-question loop…
	r = Transition(state, lesson, Answer("can I ask something?"))
	if r.State.Phase != PhaseFreeQuestion {
		t.Fatalf("phase = %v, want free_question", r.State.Phase)
	}

	// …and the question itself is routed out while settling on complete.
	r = Transition(r.State, lesson, Answer("what is a budget?"))
	if r.Question != "what is a budget?" {
		t.Errorf("Question = %q, want the learner's text", r.Question)
	}
	if r.State.Phase != PhaseComplete {
		t.Errorf("phase = %v, want complete after one question", r.State.Phase)
	}
}

func TestTransition_MenuInterruptLeavesStateUntouched(t *testing.T) {
	lesson := testLesson()

	// Snapshot states across every phase of a full run.
	states := []State{}
	r := Transition(NewState(), lesson, Start())
	states = append(states, r.State)
	state := r.State
	for _, in := range []string{"hi", "ok", "B", "x", "False", "x", "No", "ok", "learn more", "next", "next", "ready", "A", "A"} {
		r = Transition(state, lesson, Answer(in))
		state = r.State
		states = append(states, state)
	}

	for i, s := range states {
		got := Transition(s, lesson, Answer("take me to the menu"))
		if got.Control != ControlReturnToMenu {
			t.Errorf("state %d (%v): control = %v, want return-to-menu", i, s.Phase, got.Control)
		}
		if got.State.Phase != s.Phase ||
			got.State.PreTestCursor != s.PreTestCursor ||
			got.State.PreTestCorrect != s.PreTestCorrect ||
			got.State.TopicCursor != s.TopicCursor ||
			got.State.PostTestCursor != s.PostTestCursor ||
			got.State.PostTestCorrect != s.PostTestCorrect {
			t.Errorf("state %d (%v): menu interrupt mutated state: %+v -> %+v", i, s.Phase, s, got.State)
		}
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	lesson := testLesson()
	state := toPreTest(t, lesson)
	before := state
	beforeResponses := len(state.PreTestResponses)

	Transition(state, lesson, Answer("B"))

	if state.Phase != before.Phase || state.PreTestCursor != before.PreTestCursor ||
		state.PreTestCorrect != before.PreTestCorrect || len(state.PreTestResponses) != beforeResponses {
		t.Errorf("Transition mutated its input: %+v -> %+v", before, state)
	}
}

func TestState_JSONRoundTrip(t *testing.T) {
	lesson := testLesson()
	state := toTopics(t, lesson)

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"phase":"topic"`) {
		t.Errorf("phase not serialized under its wire name: %s", data)
	}

	var back State
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Phase != state.Phase || back.PreTestCorrect != state.PreTestCorrect {
		t.Errorf("round trip lost data: %+v -> %+v", state, back)
	}

	// Re-serializing the loaded state is byte-identical: resume is a pure
	// read, not a rewrite.
	again, err := json.Marshal(back)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if string(again) != string(data) {
		t.Errorf("re-serialization differs:\n%s\n%s", data, again)
	}
}

func TestQuickReplies_PerPhase(t *testing.T) {
	lesson := testLesson()

	state := toPreTest(t, lesson)
	replies := QuickReplies(state, lesson)
	if len(replies) != 3 || replies[1] != "B. Rent" {
		t.Errorf("pre-test quick replies = %v, want the item options", replies)
	}

	state = toTopics(t, lesson)
	replies = QuickReplies(state, lesson)
	if len(replies) != 2 || replies[0] != "Learn more" {
		t.Errorf("topic quick replies = %v, want learn-more offered", replies)
	}

	state = advance(t, state, lesson, "next")
	replies = QuickReplies(state, lesson)
	if len(replies) != 1 {
		t.Errorf("topic 2 quick replies = %v, want no learn-more (no expansion)", replies)
	}
}

func TestState_FitsLesson(t *testing.T) {
	lesson := testLesson() // 5 pre-test items, 2 topics, 5 post-test items

	cases := []struct {
		name string
		s    State
		want bool
	}{
		{"fresh", NewState(), true},
		{"mid topic", State{Phase: PhaseTopic, PreTestCursor: 5, TopicCursor: 1}, true},
		{"topic cursor past content", State{Phase: PhaseTopic, PreTestCursor: 5, TopicCursor: 5}, false},
		{"pre-test cursor past content", State{Phase: PhasePreTest, PreTestCursor: 9}, false},
		{"post-test phase but items exhausted", State{Phase: PhasePostTest, PreTestCursor: 5, TopicCursor: 2, PostTestCursor: 5}, false},
		{"complete", State{Phase: PhaseComplete, PreTestCursor: 5, TopicCursor: 2, PostTestCursor: 5, PostTestCorrect: 4}, true},
		{"complete with unfinished post-test", State{Phase: PhaseComplete, PreTestCursor: 5, TopicCursor: 2, PostTestCursor: 3}, false},
		{"correct count exceeds cursor", State{Phase: PhaseTopic, PreTestCursor: 2, PreTestCorrect: 3}, false},
		{"too many pre-test responses", State{Phase: PhaseTopic, PreTestCursor: 5, PreTestResponses: make([]string, 6)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.FitsLesson(lesson); got != tc.want {
				t.Errorf("FitsLesson(%+v) = %v, want %v", tc.s, got, tc.want)
			}
		})
	}
}

func joinTexts(msgs []Message) string {
	var parts []string
	for _, m := range msgs {
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, "\n---\n")
}
