// Package lesson is the conversation screen: the scripted mentor chat for a
// single lesson, with a transcript, quick-reply chips, and a free-text box.
package lesson

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"finmentor/internal/chat"
	"finmentor/internal/content"
	"finmentor/internal/router"
	"finmentor/internal/screen"
	"finmentor/internal/session"
	"finmentor/internal/ui/components"
	"finmentor/internal/ui/layout"
)

// LessonScreen implements screen.Screen for an active lesson conversation.
type LessonScreen struct {
	orc    *session.Orchestrator
	lesson *content.Lesson

	input   components.TextInput
	quick   components.QuickReplies
	pending string // learner text awaiting the mentor's reply
	scroll  int    // lines scrolled up from the bottom of the transcript
	errMsg  string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

type startedMsg struct {
	Err error
}

type repliedMsg struct {
	Res session.SubmitResult
	Err error
}

// New creates the conversation screen for one lesson attempt.
func New(orc *session.Orchestrator, l *content.Lesson) *LessonScreen {
	return &LessonScreen{
		orc:    orc,
		lesson: l,
		input:  components.NewTextInput("Type a reply...", 200),
		quick:  components.NewQuickReplies(nil),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startConversation(),
		s.input.Init(),
	)
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Suggestions"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.quick.SetOptions(s.orc.QuickReplies())
		s.scroll = 0
		return s, nil

	case repliedMsg:
		s.pending = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.quick.SetOptions(s.orc.QuickReplies())
		s.scroll = 0
		if msg.Res.ReturnToMenu {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "esc":
		return s, s.leave()

	case "ctrl+c":
		orc := s.orc
		return s, func() tea.Msg {
			_ = orc.Flush(context.Background())
			return tea.Quit()
		}

	case "tab":
		s.quick.Next()
		return s, nil

	case "pgup":
		s.scroll += 5
		return s, nil

	case "pgdown":
		s.scroll -= 5
		if s.scroll < 0 {
			s.scroll = 0
		}
		return s, nil

	case "enter":
		if s.pending != "" {
			// One reply in flight at a time.
			return s, nil
		}
		text := s.input.Value()
		if text == "" {
			text = s.quick.Value()
		}
		if text == "" {
			return s, nil
		}
		s.input.Clear()
		s.quick.SetOptions(nil)
		s.pending = text
		s.scroll = 0
		return s, s.send(text)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// startConversation begins or resumes the attempt off the UI goroutine.
func (s *LessonScreen) startConversation() tea.Cmd {
	orc := s.orc
	return func() tea.Msg {
		if orc.HasStarted() {
			return startedMsg{}
		}
		_, err := orc.Start(context.Background())
		return startedMsg{Err: err}
	}
}

// typingDelay staggers the mentor's reply so it reads like typing. The state
// is already committed by Submit when the delay runs.
const typingDelay = 400 * time.Millisecond

// send feeds the learner's text through the engine. Free questions may call
// out to the LLM provider, so this runs as a command, not in Update.
func (s *LessonScreen) send(text string) tea.Cmd {
	orc := s.orc
	return func() tea.Msg {
		res, err := orc.Submit(context.Background(), text)
		if err == nil {
			time.Sleep(typingDelay)
		}
		return repliedMsg{Res: res, Err: err}
	}
}

// leave flushes the pending save and pops back to the home screen.
func (s *LessonScreen) leave() tea.Cmd {
	orc := s.orc
	return func() tea.Msg {
		_ = orc.Flush(context.Background())
		return router.PopScreenMsg{}
	}
}

// transcript returns the messages to render, resume notice included.
func (s *LessonScreen) transcript() []chat.Message {
	return s.orc.Transcript()
}
