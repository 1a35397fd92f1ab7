package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestProgressBar_View(t *testing.T) {
	bar := NewProgressBar(0.5, 26).View()
	if !strings.Contains(bar, "50%") {
		t.Errorf("rendered bar %q missing the percent figure", bar)
	}
	if w := lipgloss.Width(bar); w > 26 {
		t.Errorf("rendered width = %d, want <= 26", w)
	}
}

func TestProgressBar_ClampsFill(t *testing.T) {
	over := NewProgressBar(1.5, 20).View()
	full := NewProgressBar(1.0, 20).View()
	if lipgloss.Width(over) < lipgloss.Width(full)-1 {
		t.Errorf("overfull bar rendered shorter than a full one: %q vs %q", over, full)
	}

	// Negative percent must not panic strings.Repeat.
	_ = NewProgressBar(-0.2, 20).View()
}
