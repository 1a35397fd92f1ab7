package qa

import (
	"fmt"
	"strings"

	"finmentor/internal/content"
)

// stopwords are skipped when scoring question words against topic text.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"what": true, "why": true, "how": true, "when": true, "who": true,
	"do": true, "does": true, "did": true, "can": true, "could": true,
	"i": true, "you": true, "my": true, "me": true, "it": true, "of": true,
	"to": true, "in": true, "on": true, "for": true, "and": true, "or": true,
	"about": true, "tell": true, "please": true, "more": true,
}

// FallbackAnswer picks the lesson topic sharing the most keywords with the
// question and replays its body. Purely lexical and deterministic; it is the
// answer of last resort when no provider is available.
func FallbackAnswer(lesson *content.Lesson, question string) string {
	topic, ok := bestTopic(lesson, question)
	if !ok {
		return fmt.Sprintf(
			"That's a great question! I don't have a detailed answer handy, but everything we covered in %s is a good place to start. Try asking about one of the topics we went through.",
			lesson.Title,
		)
	}

	answer := fmt.Sprintf("Great question! Here's the part of the lesson that covers it best:\n\n%s\n\n%s",
		topic.Title, topic.Body)
	if topic.Analogy != "" {
		answer += "\n\n" + topic.Analogy
	}
	return answer
}

// bestTopic scores each topic by keyword overlap with the question.
func bestTopic(lesson *content.Lesson, question string) (content.Topic, bool) {
	words := keywords(question)
	if len(words) == 0 {
		return content.Topic{}, false
	}

	best := -1
	bestScore := 0
	for i, t := range lesson.Topics {
		text := strings.ToLower(strings.Join([]string{t.Title, t.Body, t.Analogy, t.Scenario}, " "))
		score := 0
		for w := range words {
			if strings.Contains(text, w) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return content.Topic{}, false
	}
	return lesson.Topics[best], true
}

func keywords(question string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(question)) {
		w = strings.Trim(w, ".,!?'\"()-")
		if len(w) < 3 || stopwords[w] {
			continue
		}
		out[w] = true
	}
	return out
}
