package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBundle = `{
  "lessons": [
    {
      "id": "budgeting-101",
      "title": "Budgeting Basics",
      "introduction": "Hi there!",
      "pre_test_intro": "Quick warm-up.",
      "pre_test": [
        {
          "id": "p1",
          "question": "Which is a need?\nA. Streaming\nB. Rent\nC. Tickets",
          "options": ["A. Streaming", "B. Rent", "C. Tickets"],
          "correct_answer": "B"
        },
        {
          "id": "p2",
          "question": "True or false: budgets are only for adults.",
          "options": ["True", "False"],
          "correct_answer": 1
        },
        {
          "id": "p3",
          "question": "What would you save for?",
          "mentor_answer": "Great goal!"
        }
      ],
      "pre_test_complete": "Nice warm-up!",
      "topics": [
        {
          "id": "t1",
          "title": "Needs vs Wants",
          "body": "Needs come first.",
          "analogy": "Like fuel before stickers.",
          "discussion_question": "What's one of your needs?"
        }
      ],
      "post_test_intro": "Final check.",
      "post_test": [
        {
          "id": "q1",
          "question": "Which comes first in a budget?",
          "options": ["A. Needs", "B. Wants"],
          "correct_answer": "A",
          "explanation": "Needs are non-negotiable."
        },
        {
          "id": "q2",
          "question": "A budget is a plan for...",
          "options": ["A. Spending only", "B. Money in and out"],
          "correct_answer": 1,
          "explanation": "Both directions count."
        }
      ],
      "completion": "You did it!"
    }
  ]
}`

func TestLoadBundle(t *testing.T) {
	lessons, err := LoadBundle([]byte(sampleBundle))
	require.NoError(t, err)
	require.Len(t, lessons, 1)

	l := lessons[0]
	assert.Equal(t, "budgeting-101", l.ID)
	assert.Equal(t, "Budgeting Basics", l.Title)

	require.Len(t, l.PreTest, 3)
	assert.Equal(t, "B", l.PreTest[0].Answer)
	assert.True(t, l.PreTest[0].Scored())

	require.NotNil(t, l.PreTest[1].AnswerIndex)
	assert.Equal(t, 1, *l.PreTest[1].AnswerIndex)
	assert.Equal(t, "False", l.PreTest[1].Target())

	assert.False(t, l.PreTest[2].Scored())
	assert.Equal(t, "Great goal!", l.PreTest[2].MentorAnswer)

	require.Len(t, l.Topics, 1)
	assert.True(t, l.Topics[0].HasExpansion())

	require.Len(t, l.PostTest, 2)
	assert.Equal(t, "A. Needs", l.PostTest[0].Target())
	assert.Equal(t, "B. Money in and out", l.PostTest[1].Target())
}

func TestLoadBundle_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{"lessons": [`},
		{"lessons not an array", `{"lessons": {}}`},
		{"lesson missing id", `{"lessons":[{"title":"x","post_test":[{"id":"q","question":"?","options":["A","B"],"correct_answer":"A"}]}]}`},
		{"boolean correct_answer", `{"lessons":[{"id":"x","post_test":[{"id":"q","question":"?","options":["A","B"],"correct_answer":true}]}]}`},
		{"empty post-test", `{"lessons":[{"id":"x","post_test":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBundle([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestLoadBundle_SemanticValidationRuns(t *testing.T) {
	// Schema-valid but semantically broken: a pre-test item carrying both
	// a correct answer and a mentor answer.
	const data = `{"lessons":[{
		"id":"x",
		"title":"X",
		"introduction":"Hi.",
		"pre_test":[{"id":"p","question":"?","options":["A","B"],"correct_answer":"A","mentor_answer":"also"}],
		"post_test":[{"id":"q","question":"?","options":["A","B"],"correct_answer":"A"}]
	}]}`

	_, err := LoadBundle([]byte(data))
	require.Error(t, err)
	assert.ErrorContains(t, err, "both")
}
