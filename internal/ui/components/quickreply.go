package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"finmentor/internal/ui/theme"
)

// QuickReplies is a horizontal row of suggested replies. The learner cycles
// through them with tab and sends the highlighted one with enter; typing in
// the text box instead is always allowed.
type QuickReplies struct {
	Options  []string
	Selected int // -1 when nothing is highlighted
}

// NewQuickReplies creates a quick-reply row with nothing highlighted.
func NewQuickReplies(options []string) QuickReplies {
	return QuickReplies{Options: options, Selected: -1}
}

// SetOptions replaces the suggestions and clears the highlight.
func (q *QuickReplies) SetOptions(options []string) {
	q.Options = options
	q.Selected = -1
}

// Next moves the highlight forward, wrapping past the end back to "none".
func (q *QuickReplies) Next() {
	if len(q.Options) == 0 {
		return
	}
	q.Selected++
	if q.Selected >= len(q.Options) {
		q.Selected = -1
	}
}

// Value returns the highlighted suggestion, or "" when none is highlighted.
func (q QuickReplies) Value() string {
	if q.Selected < 0 || q.Selected >= len(q.Options) {
		return ""
	}
	return q.Options[q.Selected]
}

// View renders the chips in a single row.
func (q QuickReplies) View() string {
	if len(q.Options) == 0 {
		return ""
	}

	chips := make([]string, 0, len(q.Options))
	for i, opt := range q.Options {
		if i == q.Selected {
			chips = append(chips, theme.ChipActive.Render(opt))
		} else {
			chips = append(chips, theme.ChipInactive.Render(opt))
		}
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("try: ")
	return label + strings.Join(chips, " ")
}
