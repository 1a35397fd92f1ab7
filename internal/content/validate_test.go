package content

import (
	"errors"
	"strings"
	"testing"
)

func validLesson() *Lesson {
	two := 2
	return &Lesson{
		ID:    "sample",
		Title: "Sample",
		PreTest: []PreTestItem{
			{ID: "p1", Question: "Q1", Options: []string{"A", "B"}, Answer: "A"},
			{ID: "p2", Question: "Q2", MentorAnswer: "Thanks!"},
			{ID: "p3", Question: "Q3", Options: []string{"A", "B", "C"}, AnswerIndex: &two},
		},
		Topics: []Topic{
			{ID: "t1", Title: "T1", Body: "Body."},
		},
		PostTest: []PostTestItem{
			{ID: "q1", Question: "Q", Options: []string{"A", "B"}, Answer: "A", Explanation: "E"},
		},
	}
}

func TestValidate_AcceptsWellFormedLesson(t *testing.T) {
	if err := Validate(validLesson()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	outOfRange := 5
	negative := -1

	tests := []struct {
		name   string
		mutate func(*Lesson)
		reason string
	}{
		{
			"missing lesson ID",
			func(l *Lesson) { l.ID = "" },
			"no ID",
		},
		{
			"pre-test item with both answer kinds",
			func(l *Lesson) { l.PreTest[0].MentorAnswer = "also this" },
			"both",
		},
		{
			"pre-test item with neither answer kind",
			func(l *Lesson) { l.PreTest[1].MentorAnswer = "" },
			"neither",
		},
		{
			"pre-test answer index out of range",
			func(l *Lesson) { l.PreTest[2].AnswerIndex = &outOfRange },
			"out of range",
		},
		{
			"empty post-test",
			func(l *Lesson) { l.PostTest = nil },
			"post-test is empty",
		},
		{
			"post-test item with one option",
			func(l *Lesson) { l.PostTest[0].Options = []string{"A"} },
			"need at least 2",
		},
		{
			"post-test item with no answer",
			func(l *Lesson) { l.PostTest[0].Answer = "" },
			"no correct answer",
		},
		{
			"post-test negative answer index",
			func(l *Lesson) {
				l.PostTest[0].Answer = ""
				l.PostTest[0].AnswerIndex = &negative
			},
			"out of range",
		},
		{
			"topic without body",
			func(l *Lesson) { l.Topics[0].Body = "" },
			"no body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLesson()
			tt.mutate(l)

			err := Validate(l)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			var ce *ErrContentInvalid
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want *ErrContentInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q does not mention %q", err, tt.reason)
			}
		})
	}
}

func TestPreTestItem_ScoredAndTarget(t *testing.T) {
	one := 1

	literal := PreTestItem{Options: []string{"A", "B"}, Answer: "B"}
	if !literal.Scored() || literal.Target() != "B" {
		t.Errorf("literal item: Scored=%v Target=%q", literal.Scored(), literal.Target())
	}

	indexed := PreTestItem{Options: []string{"True", "False"}, AnswerIndex: &one}
	if !indexed.Scored() || indexed.Target() != "False" {
		t.Errorf("indexed item: Scored=%v Target=%q", indexed.Scored(), indexed.Target())
	}

	mentorOnly := PreTestItem{MentorAnswer: "Noted!"}
	if mentorOnly.Scored() {
		t.Error("acknowledgment-only item reported as scored")
	}
}
