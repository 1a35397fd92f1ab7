package lesson

import (
	"strings"

	"charm.land/lipgloss/v2"

	"finmentor/internal/chat"
	"finmentor/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}

	// Bottom chrome: quick replies (one row) + input box + spacing.
	inputView := "  > " + s.input.View()
	quickView := ""
	if v := s.quick.View(); v != "" {
		quickView = "  " + v
	}

	chrome := 2 // input line + blank separator
	if quickView != "" {
		chrome += 2
	}

	transcriptHeight := height - chrome
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	transcript := s.renderTranscript(width, transcriptHeight)

	var b strings.Builder
	b.WriteString(transcript)
	b.WriteString("\n")
	if quickView != "" {
		b.WriteString(quickView)
		b.WriteString("\n\n")
	}
	b.WriteString(inputView)

	return b.String()
}

// renderTranscript lays out the conversation as alternating bubbles and
// returns the window of lines ending s.scroll lines above the bottom.
func (s *LessonScreen) renderTranscript(width, height int) string {
	bubbleWidth := width * 3 / 4
	if bubbleWidth > 72 {
		bubbleWidth = 72
	}
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var blocks []string
	for _, m := range s.transcript() {
		blocks = append(blocks, renderBubble(m, width, bubbleWidth))
	}
	if s.pending != "" {
		blocks = append(blocks,
			renderBubble(chat.Message{Role: chat.RoleLearner, Text: s.pending}, width, bubbleWidth))
		blocks = append(blocks, "  "+theme.Hint.Render("mentor is typing..."))
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")

	// Clamp the scroll so the window stays inside the transcript.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := len(lines) - s.scroll
	start := end - height
	if start < 0 {
		start = 0
	}

	return strings.Join(lines[start:end], "\n")
}

// renderBubble renders one message: mentor bubbles hug the left margin,
// learner bubbles are pushed to the right.
func renderBubble(m chat.Message, width, bubbleWidth int) string {
	text := strings.TrimSpace(m.Text)

	wrapped := lipgloss.NewStyle().
		Width(min(lipgloss.Width(text), bubbleWidth-2)).
		Render(text)

	if m.Role == chat.RoleLearner {
		bubble := theme.LearnerBubble.Render(wrapped)
		return lipgloss.NewStyle().
			Width(width - 2).
			Align(lipgloss.Right).
			Render(bubble)
	}

	label := "  " + theme.BubbleLabel.Render("Mentor")
	bubble := theme.MentorBubble.Render(wrapped)
	return label + "\n" + lipgloss.NewStyle().MarginLeft(2).Render(bubble)
}

func renderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render("Something went wrong:\n\n" + msg + "\n\nPress any key to go back.")
}
