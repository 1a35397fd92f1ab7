// Package qa answers free-form learner questions after a lesson completes.
// It asks the configured LLM provider within a hard deadline and falls back
// to a deterministic content-based answer, so the mentor always replies even
// with no key configured or the provider down.
package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finmentor/internal/content"
	"finmentor/internal/llm"
)

const (
	defaultTimeout = 8 * time.Second
	maxTokens      = 400
)

// Service answers learner questions about a lesson.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewService builds a Service. The provider may be nil, in which case every
// answer comes from the fallback.
func NewService(provider llm.Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{provider: provider, timeout: timeout}
}

// Ask answers a question about the lesson. It never returns an error: any
// provider failure or timeout degrades to the deterministic fallback answer.
func (s *Service) Ask(ctx context.Context, lesson *content.Lesson, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return "I didn't catch a question there — what would you like to know?"
	}

	if s.provider != nil {
		if answer, ok := s.askProvider(ctx, lesson, question); ok {
			return answer
		}
	}
	return FallbackAnswer(lesson, question)
}

func (s *Service) askProvider(ctx context.Context, lesson *content.Lesson, question string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt(lesson),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", false
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", false
	}
	return text, true
}

func systemPrompt(lesson *content.Lesson) string {
	var b strings.Builder
	b.WriteString("You are a warm, encouraging financial-literacy mentor for young learners. ")
	b.WriteString("Answer the learner's question in 2-4 short sentences, using plain language and everyday examples. ")
	b.WriteString("Stay on the subject of personal finance.\n\n")
	fmt.Fprintf(&b, "The learner just finished the lesson %q. Its topics were:\n", lesson.Title)
	for _, t := range lesson.Topics {
		fmt.Fprintf(&b, "- %s: %s\n", t.Title, t.Body)
	}
	return b.String()
}
