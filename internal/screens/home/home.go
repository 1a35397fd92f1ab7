// Package home is the lesson picker: every lesson in the catalog with its
// best score and whether an attempt is waiting to be resumed.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"finmentor/internal/content"
	"finmentor/internal/router"
	"finmentor/internal/screen"
	lessonscreen "finmentor/internal/screens/lesson"
	"finmentor/internal/session"
	"finmentor/internal/store"
	"finmentor/internal/ui/components"
	"finmentor/internal/ui/theme"
)

// Deps are the collaborators the home screen wires into each lesson attempt.
type Deps struct {
	Registry  *content.Registry
	States    store.SavedStateRepo
	Progress  store.ProgressRepo
	Asker     session.Asker
	LearnerID string
}

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	deps Deps

	menu      components.Menu
	progress  map[string]store.Progress
	resumable map[string]bool
	completed int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.refresh()
	return h
}

// refresh reloads progress and saved-attempt markers and rebuilds the menu.
func (h *HomeScreen) refresh() {
	ctx := context.Background()

	h.progress = make(map[string]store.Progress)
	h.resumable = make(map[string]bool)
	h.completed = 0

	if recs, err := h.deps.Progress.List(ctx, h.deps.LearnerID); err == nil {
		for _, p := range recs {
			h.progress[p.LessonID] = p
			h.completed++
		}
	}
	for _, l := range h.deps.Registry.All() {
		if _, err := h.deps.States.Load(ctx, h.deps.LearnerID, l.ID); err == nil {
			h.resumable[l.ID] = true
		}
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if selected > 0 && selected < len(h.menu.Items) {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem
	for _, l := range h.deps.Registry.All() {
		lesson := l
		items = append(items, components.MenuItem{
			Label: h.lessonLabel(lesson),
			Action: func() tea.Cmd {
				orc := session.NewOrchestrator(
					h.deps.LearnerID, &lesson,
					h.deps.States, h.deps.Progress, h.deps.Asker,
				)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lessonscreen.New(orc, &lesson)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	return items
}

// lessonLabel decorates the title with the best score and a resume marker.
func (h *HomeScreen) lessonLabel(l content.Lesson) string {
	label := l.Title
	if p, ok := h.progress[l.ID]; ok {
		label += fmt.Sprintf("  ✓ %d%%", p.Percent())
	}
	if h.resumable[l.ID] {
		label += "  (in progress)"
	}
	return label
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.ScreenRevealedMsg); ok {
		h.refresh()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Pick a lesson"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d of %d lessons completed", h.completed, h.deps.Registry.Len())))

	total := h.deps.Registry.Len()
	if total > 0 {
		bar := components.NewProgressBar(float64(h.completed)/float64(total), min(width-8, 48))
		sections = append(sections, "  "+bar.View())
	}
	sections = append(sections, "")
	sections = append(sections, h.menu.View())
	sections = append(sections, theme.Hint.Render(
		"  Finished lessons can be replayed any time; your best score is kept."))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
