package content

import "fmt"

// ErrContentInvalid reports a malformed lesson bundle. It is raised at load
// time, before any conversation state exists; the engine never sees invalid
// content at runtime.
type ErrContentInvalid struct {
	LessonID string
	Reason   string
}

func (e *ErrContentInvalid) Error() string {
	if e.LessonID == "" {
		return fmt.Sprintf("invalid lesson content: %s", e.Reason)
	}
	return fmt.Sprintf("invalid lesson content %q: %s", e.LessonID, e.Reason)
}

func invalid(lessonID, format string, args ...any) error {
	return &ErrContentInvalid{LessonID: lessonID, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the structural invariants of a lesson:
//
//   - the lesson has an ID and a post-test with at least one item
//   - every post-test item has at least two options and a correct answer
//   - every answer index is in range of its options
//   - every pre-test item is exactly one of scored / acknowledgment-only
//
// Returns *ErrContentInvalid describing the first violation found.
func Validate(l *Lesson) error {
	if l.ID == "" {
		return invalid("", "lesson has no ID")
	}

	for i, it := range l.PreTest {
		scored := it.Scored()
		if scored && it.MentorAnswer != "" {
			return invalid(l.ID, "pre-test item %d (%s) has both a correct answer and a mentor answer", i, it.ID)
		}
		if !scored && it.MentorAnswer == "" {
			return invalid(l.ID, "pre-test item %d (%s) has neither a correct answer nor a mentor answer", i, it.ID)
		}
		if it.AnswerIndex != nil {
			if *it.AnswerIndex < 0 || *it.AnswerIndex >= len(it.Options) {
				return invalid(l.ID, "pre-test item %d (%s) answer index %d out of range (%d options)", i, it.ID, *it.AnswerIndex, len(it.Options))
			}
		}
	}

	if len(l.PostTest) == 0 {
		return invalid(l.ID, "post-test is empty; a score would be meaningless")
	}
	for i, it := range l.PostTest {
		if len(it.Options) < 2 {
			return invalid(l.ID, "post-test item %d (%s) has %d options, need at least 2", i, it.ID, len(it.Options))
		}
		if it.Answer == "" && it.AnswerIndex == nil {
			return invalid(l.ID, "post-test item %d (%s) has no correct answer", i, it.ID)
		}
		if it.AnswerIndex != nil {
			if *it.AnswerIndex < 0 || *it.AnswerIndex >= len(it.Options) {
				return invalid(l.ID, "post-test item %d (%s) answer index %d out of range (%d options)", i, it.ID, *it.AnswerIndex, len(it.Options))
			}
		}
	}

	for i, t := range l.Topics {
		if t.Body == "" {
			return invalid(l.ID, "topic %d (%s) has no body text", i, t.ID)
		}
	}

	return nil
}
