// Package chat implements the lesson conversation engine: a finite state
// machine that walks a learner through introduction, pre-test, topics,
// post-test, completion, and free-form Q&A, scoring answers and deciding
// phase transitions. The engine is pure — it never touches storage, timers,
// or the network — so every reachable state is reproducible from a State
// value plus lesson content.
package chat

import (
	"fmt"

	"github.com/google/uuid"

	"finmentor/internal/content"
)

// Phase is a named stage in the fixed lesson conversation sequence.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseIntroduction
	PhasePreTestIntro
	PhasePreTest
	PhasePreTestComplete
	PhaseTopic
	PhaseTopicExpanded
	PhasePostTestIntro
	PhasePostTest
	PhaseComplete
	PhaseFreeQuestion
)

// phaseNames are the stable wire names used in persisted state. Renaming one
// breaks resume for existing saves.
var phaseNames = map[Phase]string{
	PhaseNotStarted:      "not_started",
	PhaseIntroduction:    "introduction",
	PhasePreTestIntro:    "pre_test_intro",
	PhasePreTest:         "pre_test",
	PhasePreTestComplete: "pre_test_complete",
	PhaseTopic:           "topic",
	PhaseTopicExpanded:   "topic_expanded",
	PhasePostTestIntro:   "post_test_intro",
	PhasePostTest:        "post_test",
	PhaseComplete:        "complete",
	PhaseFreeQuestion:    "free_question",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText encodes the phase under its stable wire name.
func (p Phase) MarshalText() ([]byte, error) {
	s, ok := phaseNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(s), nil
}

// UnmarshalText decodes a stable wire name back to a Phase.
func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(text))
}

// State is the complete mutable state of one lesson attempt. Together with
// the immutable lesson content it fully determines the conversation's future;
// there is no hidden state anywhere else.
type State struct {
	Phase Phase `json:"phase"`

	PreTestCursor    int      `json:"pre_test_cursor"`
	PreTestCorrect   int      `json:"pre_test_correct"`
	PreTestResponses []string `json:"pre_test_responses,omitempty"`

	TopicCursor int `json:"topic_cursor"`

	PostTestCursor  int `json:"post_test_cursor"`
	PostTestCorrect int `json:"post_test_correct"`
}

// NewState returns the initial state of a fresh attempt.
func NewState() State {
	return State{Phase: PhaseNotStarted}
}

// Started reports whether the attempt has received its Start event.
func (s State) Started() bool {
	return s.Phase != PhaseNotStarted
}

// FitsLesson reports whether a restored snapshot is consistent with the
// lesson content it will replay against. Lesson content can change between
// saves; a snapshot whose cursors point past the current sequences cannot be
// resumed without walking off the end of them.
func (s State) FitsLesson(lesson *content.Lesson) bool {
	if s.PreTestCursor < 0 || s.PreTestCursor > len(lesson.PreTest) ||
		s.TopicCursor < 0 || s.TopicCursor > len(lesson.Topics) ||
		s.PostTestCursor < 0 || s.PostTestCursor > len(lesson.PostTest) {
		return false
	}
	if s.PreTestCorrect < 0 || s.PreTestCorrect > s.PreTestCursor ||
		s.PostTestCorrect < 0 || s.PostTestCorrect > s.PostTestCursor {
		return false
	}
	if len(s.PreTestResponses) > len(lesson.PreTest) {
		return false
	}
	switch s.Phase {
	case PhasePreTest:
		return s.PreTestCursor < len(lesson.PreTest)
	case PhaseTopic, PhaseTopicExpanded:
		return s.TopicCursor < len(lesson.Topics)
	case PhasePostTest:
		return s.PostTestCursor < len(lesson.PostTest)
	case PhaseComplete, PhaseFreeQuestion:
		return s.PostTestCursor == len(lesson.PostTest)
	}
	return true
}

// Role identifies a message sender.
type Role string

const (
	RoleLearner Role = "learner"
	RoleMentor  Role = "mentor"
)

// Message is one transcript entry. The transcript is append-only for the
// lifetime of an attempt.
type Message struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// NewMessage creates a message with a fresh unique ID.
func NewMessage(role Role, text string) Message {
	return Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
	}
}

func mentor(text string) Message {
	return NewMessage(RoleMentor, text)
}

// Control tells the caller what to do after a transition.
type Control int

const (
	// ControlContinue keeps the conversation on the current screen.
	ControlContinue Control = iota

	// ControlReturnToMenu exits to the lesson menu. The attempt stays
	// resumable from exactly where it was.
	ControlReturnToMenu
)

// Completion is the one-time signal emitted when an attempt reaches
// PhaseComplete.
type Completion struct {
	LessonID string
	Score    int
	Total    int
}

// EventKind discriminates the two external events the engine reacts to.
type EventKind int

const (
	// EventStart begins (or idempotently re-prompts) the conversation.
	EventStart EventKind = iota

	// EventAnswer carries one raw learner input.
	EventAnswer
)

// Event is the single external stimulus type fed to Transition.
type Event struct {
	Kind EventKind
	Text string
}

// Start returns a start event.
func Start() Event {
	return Event{Kind: EventStart}
}

// Answer returns an answer event carrying the learner's raw input.
func Answer(text string) Event {
	return Event{Kind: EventAnswer, Text: text}
}

// Result is everything a single transition produces: the successor state,
// mentor messages to display, fresh quick replies, a control signal, an
// optional completion emission, and an optional question to route to the
// free-text Q&A collaborator.
type Result struct {
	State        State
	Messages     []Message
	QuickReplies []string
	Control      Control

	// Completion is non-nil exactly once per attempt: on the transition
	// that enters PhaseComplete.
	Completion *Completion

	// Question is non-empty when the caller should pass this text to the
	// Q&A collaborator and append its reply. The engine itself never calls
	// out; this keeps Transition pure.
	Question string
}
