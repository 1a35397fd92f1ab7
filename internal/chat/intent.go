package chat

import "strings"

// Intent is the classified meaning of one raw learner input. Classification
// runs once per input, before any phase logic, so keyword handling lives in
// exactly one place instead of being scattered through the transition table.
type Intent int

const (
	// IntentAnswer is the default: the input is an answer to whatever the
	// current phase asked.
	IntentAnswer Intent = iota

	// IntentMenu requests an exit to the lesson menu. Recognized in every
	// phase, ahead of all other handling.
	IntentMenu

	// IntentLearnMore asks for the current topic's expanded content. Only
	// meaningful in the topic phase; elsewhere it is treated as an answer.
	IntentLearnMore

	// IntentThanks closes out a completed lesson.
	IntentThanks

	// IntentAskQuestion enters the free-form Q&A loop after completion.
	IntentAskQuestion
)

// ClassifyIntent tags a raw input. Matching is case-insensitive substring
// search, mirroring how learners actually type ("back to menu please").
// Menu wins over everything; the remaining intents are only acted on by the
// phases that understand them.
func ClassifyIntent(text string) Intent {
	t := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(t, "menu"):
		return IntentMenu
	case strings.Contains(t, "learn more"):
		return IntentLearnMore
	case strings.Contains(t, "question") || strings.Contains(t, "ask"):
		return IntentAskQuestion
	case strings.Contains(t, "thank") || strings.Contains(t, "done"):
		return IntentThanks
	default:
		return IntentAnswer
	}
}
