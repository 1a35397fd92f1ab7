package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledBundle *jsonschema.Schema
	compileErr     error
)

// LoadBundle parses and validates a JSON lesson bundle, returning the lessons
// in bundle order. The raw bytes are checked against the bundle schema first,
// then each lesson goes through semantic validation, so a non-nil return
// carries only runnable lessons.
func LoadBundle(data []byte) ([]Lesson, error) {
	schema, err := compiledBundleSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bundle schema: %w", err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrContentInvalid{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrContentInvalid{Reason: fmt.Sprintf("bundle schema: %v", err)}
	}

	var bundle bundleJSON
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, &ErrContentInvalid{Reason: fmt.Sprintf("decode bundle: %v", err)}
	}

	lessons := make([]Lesson, 0, len(bundle.Lessons))
	for _, lj := range bundle.Lessons {
		l, err := lj.toLesson()
		if err != nil {
			return nil, err
		}
		if err := Validate(&l); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

func compiledBundleSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(bundleSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson-bundle.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledBundle, compileErr = c.Compile(schemaURL)
	})
	return compiledBundle, compileErr
}

type bundleJSON struct {
	Lessons []lessonJSON `json:"lessons"`
}

type lessonJSON struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Introduction    string             `json:"introduction"`
	PreTestIntro    string             `json:"pre_test_intro"`
	PreTest         []preTestItemJSON  `json:"pre_test"`
	PreTestComplete string             `json:"pre_test_complete"`
	Topics          []topicJSON        `json:"topics"`
	PostTestIntro   string             `json:"post_test_intro"`
	PostTest        []postTestItemJSON `json:"post_test"`
	Completion      string             `json:"completion"`
}

type preTestItemJSON struct {
	ID            string          `json:"id"`
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	MentorAnswer  string          `json:"mentor_answer"`
}

type postTestItemJSON struct {
	ID            string          `json:"id"`
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
}

type topicJSON struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Body               string `json:"body"`
	Analogy            string `json:"analogy"`
	Scenario           string `json:"scenario"`
	DiscussionQuestion string `json:"discussion_question"`
}

func (lj lessonJSON) toLesson() (Lesson, error) {
	l := Lesson{
		ID:              lj.ID,
		Title:           lj.Title,
		Introduction:    lj.Introduction,
		PreTestIntro:    lj.PreTestIntro,
		PreTestComplete: lj.PreTestComplete,
		PostTestIntro:   lj.PostTestIntro,
		Completion:      lj.Completion,
	}

	for _, ij := range lj.PreTest {
		item := PreTestItem{
			ID:           ij.ID,
			Question:     ij.Question,
			Options:      ij.Options,
			MentorAnswer: ij.MentorAnswer,
		}
		answer, idx, err := decodeCorrectAnswer(ij.CorrectAnswer)
		if err != nil {
			return Lesson{}, invalid(lj.ID, "pre-test item %s: %v", ij.ID, err)
		}
		item.Answer = answer
		item.AnswerIndex = idx
		l.PreTest = append(l.PreTest, item)
	}

	for _, tj := range lj.Topics {
		l.Topics = append(l.Topics, Topic{
			ID:                 tj.ID,
			Title:              tj.Title,
			Body:               tj.Body,
			Analogy:            tj.Analogy,
			Scenario:           tj.Scenario,
			DiscussionQuestion: tj.DiscussionQuestion,
		})
	}

	for _, ij := range lj.PostTest {
		item := PostTestItem{
			ID:          ij.ID,
			Question:    ij.Question,
			Options:     ij.Options,
			Explanation: ij.Explanation,
		}
		answer, idx, err := decodeCorrectAnswer(ij.CorrectAnswer)
		if err != nil {
			return Lesson{}, invalid(lj.ID, "post-test item %s: %v", ij.ID, err)
		}
		item.Answer = answer
		item.AnswerIndex = idx
		l.PostTest = append(l.PostTest, item)
	}

	return l, nil
}

// decodeCorrectAnswer accepts either a literal answer string or an option
// index. The schema guarantees one of the two forms when present.
func decodeCorrectAnswer(raw json.RawMessage) (string, *int, error) {
	if len(raw) == 0 {
		return "", nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil, nil
	}
	var i int
	if err := json.Unmarshal(raw, &i); err == nil {
		return "", &i, nil
	}
	return "", nil, fmt.Errorf("correct_answer must be a string or an integer index")
}
