package chat

import (
	"fmt"

	"finmentor/internal/content"
	"finmentor/internal/match"
)

// Transition applies one event to one attempt. It is pure and deterministic:
// the same (state, lesson, event) triple always produces the same Result,
// and the input state is never modified.
//
// A menu request is honored in every phase before any phase logic runs, and
// leaves all cursors and counts exactly as they were — an abandoned quiz
// resumes later from the same question.
func Transition(state State, lesson *content.Lesson, ev Event) Result {
	if ev.Kind == EventStart {
		if !state.Started() {
			state.Phase = PhaseIntroduction
			return result(state, lesson, mentor(lesson.Introduction))
		}
		// Start on a live attempt just re-prompts; nothing is rewound.
		return result(state, lesson, Reprompt(state, lesson)...)
	}

	if ClassifyIntent(ev.Text) == IntentMenu {
		return Result{State: state, Control: ControlReturnToMenu}
	}

	switch state.Phase {
	case PhaseIntroduction:
		state.Phase = PhasePreTestIntro
		if len(lesson.PreTest) == 0 {
			// No pre-test in this lesson; skip straight past it.
			state.Phase = PhasePreTestComplete
			return result(state, lesson, mentor(lesson.PreTestComplete))
		}
		return result(state, lesson, mentor(lesson.PreTestIntro))

	case PhasePreTestIntro:
		state.Phase = PhasePreTest
		state.PreTestCursor = 0
		return result(state, lesson, preTestQuestion(lesson, 0))

	case PhasePreTest:
		return handlePreTest(state, lesson, ev.Text)

	case PhasePreTestComplete:
		return enterTopics(state, lesson)

	case PhaseTopic:
		topic := lesson.Topics[state.TopicCursor]
		if ClassifyIntent(ev.Text) == IntentLearnMore && topic.HasExpansion() {
			state.Phase = PhaseTopicExpanded
			return result(state, lesson, topicExpansion(topic)...)
		}
		return advanceTopic(state, lesson)

	case PhaseTopicExpanded:
		return advanceTopic(state, lesson)

	case PhasePostTestIntro:
		state.Phase = PhasePostTest
		state.PostTestCursor = 0
		return result(state, lesson, postTestQuestion(lesson, 0))

	case PhasePostTest:
		return handlePostTest(state, lesson, ev.Text)

	case PhaseComplete:
		return handleComplete(state, lesson, ev.Text)

	case PhaseFreeQuestion:
		// One question per visit; the answer arrives via the Q&A
		// collaborator and the conversation settles back on Complete.
		state.Phase = PhaseComplete
		r := result(state, lesson)
		r.Question = ev.Text
		return r
	}

	// Unreachable given the table above; answered conservatively by
	// re-prompting the current phase.
	return result(state, lesson, Reprompt(state, lesson)...)
}

func handlePreTest(state State, lesson *content.Lesson, text string) Result {
	item := lesson.PreTest[state.PreTestCursor]

	// Fresh backing array: the caller may hold the previous state value.
	responses := make([]string, len(state.PreTestResponses), len(state.PreTestResponses)+1)
	copy(responses, state.PreTestResponses)
	state.PreTestResponses = append(responses, text)

	var msgs []Message
	if item.Scored() {
		if match.Matches(text, item.Target(), item.Options) {
			state.PreTestCorrect++
		}
	} else {
		// Acknowledgment-only items always reply with the mentor answer,
		// whatever the learner typed, and never touch the score.
		msgs = append(msgs, mentor(item.MentorAnswer))
	}

	state.PreTestCursor++
	if state.PreTestCursor == len(lesson.PreTest) {
		state.Phase = PhasePreTestComplete
		msgs = append(msgs,
			mentor(preTestFeedback(state.PreTestCorrect, len(lesson.PreTest))),
			mentor(lesson.PreTestComplete),
		)
		return result(state, lesson, msgs...)
	}

	msgs = append(msgs, preTestQuestion(lesson, state.PreTestCursor))
	return result(state, lesson, msgs...)
}

func enterTopics(state State, lesson *content.Lesson) Result {
	if len(lesson.Topics) == 0 {
		state.Phase = PhasePostTestIntro
		return result(state, lesson, mentor(lesson.PostTestIntro))
	}
	state.Phase = PhaseTopic
	state.TopicCursor = 0
	return result(state, lesson, topicMessages(lesson, 0)...)
}

func advanceTopic(state State, lesson *content.Lesson) Result {
	state.TopicCursor++
	if state.TopicCursor == len(lesson.Topics) {
		state.Phase = PhasePostTestIntro
		return result(state, lesson, mentor(lesson.PostTestIntro))
	}
	state.Phase = PhaseTopic
	return result(state, lesson, topicMessages(lesson, state.TopicCursor)...)
}

func handlePostTest(state State, lesson *content.Lesson, text string) Result {
	item := lesson.PostTest[state.PostTestCursor]

	correct := match.Matches(text, item.Target(), item.Options)
	if correct {
		state.PostTestCorrect++
	}
	msgs := []Message{mentor(postTestItemFeedback(item, correct))}

	state.PostTestCursor++
	if state.PostTestCursor == len(lesson.PostTest) {
		state.Phase = PhaseComplete
		msgs = append(msgs,
			mentor(postTestFeedback(state.PostTestCorrect, len(lesson.PostTest))),
			mentor(lesson.Completion),
		)
		r := result(state, lesson, msgs...)
		r.Completion = &Completion{
			LessonID: lesson.ID,
			Score:    state.PostTestCorrect,
			Total:    len(lesson.PostTest),
		}
		return r
	}

	msgs = append(msgs, postTestQuestion(lesson, state.PostTestCursor))
	return result(state, lesson, msgs...)
}

func handleComplete(state State, lesson *content.Lesson, text string) Result {
	switch ClassifyIntent(text) {
	case IntentAskQuestion:
		state.Phase = PhaseFreeQuestion
		return result(state, lesson, mentor("Of course — what would you like to know? Ask me anything about what we covered."))
	case IntentThanks:
		return result(state, lesson, mentor("You're very welcome — it was a pleasure learning with you! Come back anytime."))
	default:
		return result(state, lesson, mentor("We've wrapped up this lesson. You can ask me a question about it, say thanks, or type 'menu' to head back."))
	}
}

// result assembles a Result with quick replies recomputed for the new state.
func result(state State, lesson *content.Lesson, msgs ...Message) Result {
	return Result{
		State:        state,
		Messages:     msgs,
		QuickReplies: QuickReplies(state, lesson),
		Control:      ControlContinue,
	}
}

func postTestItemFeedback(item content.PostTestItem, correct bool) string {
	if correct {
		return fmt.Sprintf("Correct! %s", item.Explanation)
	}
	return fmt.Sprintf("Not quite — the answer was %q. %s", item.Target(), item.Explanation)
}

func preTestQuestion(lesson *content.Lesson, i int) Message {
	return mentor(lesson.PreTest[i].Question)
}

func postTestQuestion(lesson *content.Lesson, i int) Message {
	item := lesson.PostTest[i]
	text := item.Question
	for _, opt := range item.Options {
		text += "\n" + opt
	}
	return mentor(text)
}

func topicMessages(lesson *content.Lesson, i int) []Message {
	topic := lesson.Topics[i]
	msgs := []Message{mentor(fmt.Sprintf("%s\n\n%s", topic.Title, topic.Body))}
	if topic.DiscussionQuestion != "" {
		msgs = append(msgs, mentor(topic.DiscussionQuestion))
	}
	return msgs
}

func topicExpansion(topic content.Topic) []Message {
	var msgs []Message
	if topic.Analogy != "" {
		msgs = append(msgs, mentor(topic.Analogy))
	}
	if topic.Scenario != "" {
		msgs = append(msgs, mentor(topic.Scenario))
	}
	if len(msgs) == 0 {
		msgs = append(msgs, mentor("That's everything I have on this one — let's keep moving."))
	}
	return msgs
}

// QuickReplies computes the suggested responses for the current phase. Quick
// replies are derived, never persisted: phase plus content is enough to
// rebuild them after a resume.
func QuickReplies(state State, lesson *content.Lesson) []string {
	switch state.Phase {
	case PhaseIntroduction:
		return []string{"Let's go!"}
	case PhasePreTestIntro:
		return []string{"Ready!"}
	case PhasePreTest:
		if state.PreTestCursor < len(lesson.PreTest) {
			return append([]string(nil), lesson.PreTest[state.PreTestCursor].Options...)
		}
	case PhasePreTestComplete:
		return []string{"Let's learn!"}
	case PhaseTopic:
		if state.TopicCursor < len(lesson.Topics) && lesson.Topics[state.TopicCursor].HasExpansion() {
			return []string{"Learn more", "Got it, next!"}
		}
		return []string{"Got it, next!"}
	case PhaseTopicExpanded:
		return []string{"Got it, next!"}
	case PhasePostTestIntro:
		return []string{"I'm ready!"}
	case PhasePostTest:
		if state.PostTestCursor < len(lesson.PostTest) {
			return append([]string(nil), lesson.PostTest[state.PostTestCursor].Options...)
		}
	case PhaseComplete:
		return []string{"Ask a question", "Thanks!", "Menu"}
	case PhaseFreeQuestion:
		return []string{"Menu"}
	}
	return nil
}

// Reprompt re-emits the current phase's prompt without changing state. Used
// for idempotent Start on a live attempt and as the safe answer to events no
// phase claims.
func Reprompt(state State, lesson *content.Lesson) []Message {
	switch state.Phase {
	case PhaseIntroduction:
		return []Message{mentor(lesson.Introduction)}
	case PhasePreTestIntro:
		return []Message{mentor(lesson.PreTestIntro)}
	case PhasePreTest:
		if state.PreTestCursor < len(lesson.PreTest) {
			return []Message{preTestQuestion(lesson, state.PreTestCursor)}
		}
	case PhasePreTestComplete:
		return []Message{mentor(lesson.PreTestComplete)}
	case PhaseTopic:
		if state.TopicCursor < len(lesson.Topics) {
			return topicMessages(lesson, state.TopicCursor)
		}
	case PhaseTopicExpanded:
		if state.TopicCursor < len(lesson.Topics) {
			return topicExpansion(lesson.Topics[state.TopicCursor])
		}
	case PhasePostTestIntro:
		return []Message{mentor(lesson.PostTestIntro)}
	case PhasePostTest:
		if state.PostTestCursor < len(lesson.PostTest) {
			return []Message{postTestQuestion(lesson, state.PostTestCursor)}
		}
	case PhaseComplete:
		return []Message{mentor("We've wrapped up this lesson. You can ask me a question about it, say thanks, or type 'menu' to head back.")}
	case PhaseFreeQuestion:
		return []Message{mentor("What would you like to know?")}
	}
	return nil
}
