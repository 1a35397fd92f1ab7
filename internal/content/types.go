package content

// Lesson is one scripted money-skills lesson: an introduction, a pre-test,
// a sequence of topics, a post-test, and closing text. A Lesson is immutable
// after it passes validation; the conversation engine only ever reads it.
type Lesson struct {
	ID    string
	Title string

	Introduction string

	PreTestIntro    string
	PreTest         []PreTestItem
	PreTestComplete string

	Topics []Topic

	PostTestIntro string
	PostTest      []PostTestItem

	Completion string
}

// PreTestItem is one pre-assessment question. An item is either scored
// (Answer or AnswerIndex set) or acknowledgment-only (MentorAnswer set):
// acknowledgment-only items emit MentorAnswer as feedback regardless of
// what the learner typed and never affect the correctness count.
type PreTestItem struct {
	ID       string
	Question string

	// Options is the multiple-choice list. Empty for free-text items.
	Options []string

	// Answer is the literal correct answer text.
	Answer string

	// AnswerIndex points into Options and takes precedence over Answer.
	AnswerIndex *int

	// MentorAnswer is the canned acknowledgment for open-ended items.
	MentorAnswer string
}

// Scored reports whether this item is correctness-checked.
func (it PreTestItem) Scored() bool {
	return it.Answer != "" || it.AnswerIndex != nil
}

// Target resolves the correct answer to literal text. An AnswerIndex is
// resolved through Options before comparison.
func (it PreTestItem) Target() string {
	if it.AnswerIndex != nil && *it.AnswerIndex >= 0 && *it.AnswerIndex < len(it.Options) {
		return it.Options[*it.AnswerIndex]
	}
	return it.Answer
}

// PostTestItem is one post-assessment question. Post-test items are always
// multiple choice and always scored.
type PostTestItem struct {
	ID          string
	Question    string
	Options     []string
	Answer      string
	AnswerIndex *int
	Explanation string
}

// Target resolves the correct answer to literal text, like PreTestItem.Target.
func (it PostTestItem) Target() string {
	if it.AnswerIndex != nil && *it.AnswerIndex >= 0 && *it.AnswerIndex < len(it.Options) {
		return it.Options[*it.AnswerIndex]
	}
	return it.Answer
}

// Topic is one instructional unit inside a lesson. Analogy and Scenario are
// the optional "learn more" expansion shown when the learner asks for it.
type Topic struct {
	ID       string
	Title    string
	Body     string
	Analogy  string
	Scenario string

	// DiscussionQuestion is posed after the body to keep the learner engaged.
	// It is never scored.
	DiscussionQuestion string
}

// HasExpansion reports whether the topic has "learn more" content.
func (t Topic) HasExpansion() bool {
	return t.Analogy != "" || t.Scenario != ""
}
