// Package session orchestrates one lesson conversation: it feeds learner
// input to the chat engine, maintains the visible transcript, persists the
// attempt with debounced saves, records completions, and routes free-form
// questions to the Q&A collaborator.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"finmentor/internal/chat"
	"finmentor/internal/content"
	"finmentor/internal/store"
)

// DefaultSaveDebounce is the quiet window between the last learner input and
// the persisted save. Rapid answers collapse into a single write.
const DefaultSaveDebounce = 2 * time.Second

// saveTimeout bounds the background debounced save, which has no caller
// context to inherit.
const saveTimeout = 5 * time.Second

// Asker answers a free-form learner question about a lesson.
type Asker interface {
	Ask(ctx context.Context, lesson *content.Lesson, question string) string
}

// SubmitResult tells the caller what happened with one learner input.
type SubmitResult struct {
	// Messages are the new transcript entries this input produced,
	// learner message included.
	Messages []chat.Message

	// ReturnToMenu is set when the learner asked to exit. The attempt has
	// been saved and stays resumable.
	ReturnToMenu bool

	// Completed is non-nil on the input that finished the post-test.
	Completed *chat.Completion
}

// Orchestrator drives one learner's attempt at one lesson.
type Orchestrator struct {
	learnerID string
	lesson    *content.Lesson
	states    store.SavedStateRepo
	progress  store.ProgressRepo
	asker     Asker

	mu         sync.Mutex
	state      chat.State
	transcript []chat.Message
	resumed    bool
	saveErr    error

	saver *debouncer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSaveDebounce overrides the save quiet window.
func WithSaveDebounce(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.saver = newDebouncer(d, o.backgroundSave)
	}
}

// NewOrchestrator builds an orchestrator for (learnerID, lesson). The asker
// may be nil; free questions then get a short apology instead of an answer.
func NewOrchestrator(learnerID string, lesson *content.Lesson, states store.SavedStateRepo, progress store.ProgressRepo, asker Asker, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		learnerID:  learnerID,
		lesson:     lesson,
		states:     states,
		progress:   progress,
		asker:      asker,
		state:      chat.NewState(),
	}
	o.saver = newDebouncer(DefaultSaveDebounce, o.backgroundSave)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start begins or resumes the attempt. A saved attempt is restored exactly
// (state and transcript) with a resume notice appended; otherwise the
// conversation opens with the lesson introduction.
func (o *Orchestrator) Start(ctx context.Context) ([]chat.Message, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Started() {
		// Idempotent: a second Start re-prompts without rewinding.
		msgs := chat.Reprompt(o.state, o.lesson)
		o.transcript = append(o.transcript, msgs...)
		o.scheduleSave()
		return msgs, nil
	}

	// A save that no longer fits the lesson content (the bundle changed
	// since it was written) is discarded rather than resumed: replaying it
	// would index past the current sequences.
	saved, err := o.states.Load(ctx, o.learnerID, o.lesson.ID)
	switch {
	case err == nil && saved.State.Started() && saved.State.FitsLesson(o.lesson):
		o.state = saved.State
		o.transcript = append([]chat.Message(nil), saved.Transcript...)
		o.resumed = true

		notice := chat.NewMessage(chat.RoleMentor,
			"Welcome back! Picking up right where we left off.")
		msgs := append([]chat.Message{notice}, chat.Reprompt(o.state, o.lesson)...)
		o.transcript = append(o.transcript, msgs...)
		o.scheduleSave()
		return msgs, nil

	case err != nil && !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("load attempt: %w", err)
	}

	r := chat.Transition(o.state, o.lesson, chat.Start())
	o.state = r.State
	o.transcript = append(o.transcript, r.Messages...)
	o.scheduleSave()
	return r.Messages, nil
}

// Submit feeds one learner input through the engine.
func (o *Orchestrator) Submit(ctx context.Context, text string) (SubmitResult, error) {
	o.mu.Lock()

	if !o.state.Started() {
		o.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("attempt not started")
	}

	learnerMsg := chat.NewMessage(chat.RoleLearner, text)
	o.transcript = append(o.transcript, learnerMsg)
	res := SubmitResult{Messages: []chat.Message{learnerMsg}}

	r := chat.Transition(o.state, o.lesson, chat.Answer(text))
	o.state = r.State
	o.transcript = append(o.transcript, r.Messages...)
	res.Messages = append(res.Messages, r.Messages...)

	if r.Completion != nil {
		res.Completed = r.Completion
		// Completions are recorded immediately, never debounced: the
		// learner earned the result even if they quit this instant.
		if err := o.progress.Record(ctx, o.learnerID, r.Completion.LessonID, r.Completion.Score, r.Completion.Total); err != nil {
			o.saveErr = err
		}
	}

	if r.Control == chat.ControlReturnToMenu {
		res.ReturnToMenu = true
		o.saver.Stop()
		err := o.saveLocked(ctx)
		o.mu.Unlock()
		return res, err
	}

	if r.Question == "" {
		o.scheduleSave()
		o.mu.Unlock()
		return res, nil
	}

	// The provider call can take seconds; the transcript and quick-reply
	// accessors must stay readable while it runs, so release the lock. The
	// transition above already committed the state.
	o.mu.Unlock()
	answer := o.answerQuestion(ctx, r.Question)

	o.mu.Lock()
	o.transcript = append(o.transcript, answer)
	o.scheduleSave()
	o.mu.Unlock()

	res.Messages = append(res.Messages, answer)
	return res, nil
}

func (o *Orchestrator) answerQuestion(ctx context.Context, question string) chat.Message {
	if o.asker == nil {
		return chat.NewMessage(chat.RoleMentor,
			"I can't look that up right now, but the topics we just covered are a great place to start.")
	}
	return chat.NewMessage(chat.RoleMentor, o.asker.Ask(ctx, o.lesson, question))
}

// Reset abandons the in-memory attempt: state and transcript are cleared and
// any pending save is cancelled. The persisted copy is left in place — a
// learner may back out and return without meaning to discard the attempt, so
// the next Start resumes it. Only DeleteProgress removes stored data.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.saver.Stop()
	o.state = chat.NewState()
	o.transcript = nil
	o.resumed = false
	o.saveErr = nil
}

// DeleteProgress is the explicit "clear progress" action: it deletes the
// persisted attempt and the recorded best result for this lesson, and resets
// the in-memory state so the next Start opens fresh.
func (o *Orchestrator) DeleteProgress(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.saver.Stop()
	if err := o.states.Delete(ctx, o.learnerID, o.lesson.ID); err != nil {
		return fmt.Errorf("clear attempt: %w", err)
	}
	if err := o.progress.Delete(ctx, o.learnerID, o.lesson.ID); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	o.state = chat.NewState()
	o.transcript = nil
	o.resumed = false
	o.saveErr = nil
	return nil
}

// Flush saves immediately, cancelling any pending debounced save. Call on
// quit.
func (o *Orchestrator) Flush(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.saver.Stop()
	return o.saveLocked(ctx)
}

// Transcript returns a copy of the visible conversation.
func (o *Orchestrator) Transcript() []chat.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]chat.Message(nil), o.transcript...)
}

// QuickReplies returns the suggested responses for the current phase.
func (o *Orchestrator) QuickReplies() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return chat.QuickReplies(o.state, o.lesson)
}

// Phase returns the current conversation phase.
func (o *Orchestrator) Phase() chat.Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Phase
}

// HasStarted reports whether the attempt is underway.
func (o *Orchestrator) HasStarted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Started()
}

// Resumed reports whether this attempt was restored from a save.
func (o *Orchestrator) Resumed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resumed
}

// LastSaveError returns the most recent persistence failure, if any. The
// conversation keeps going through save failures; the next save retries.
func (o *Orchestrator) LastSaveError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.saveErr
}

// scheduleSave arms the debounced save. Callers must hold o.mu.
func (o *Orchestrator) scheduleSave() {
	o.saver.Trigger()
}

// backgroundSave runs when the debounce window closes.
func (o *Orchestrator) backgroundSave() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	o.mu.Lock()
	defer o.mu.Unlock()
	_ = o.saveLocked(ctx)
}

// saveLocked persists the attempt. Callers must hold o.mu. Failures are
// remembered but not fatal.
func (o *Orchestrator) saveLocked(ctx context.Context) error {
	err := o.states.Save(ctx, store.SavedState{
		LearnerID:  o.learnerID,
		LessonID:   o.lesson.ID,
		State:      o.state,
		Transcript: o.transcript,
	})
	o.saveErr = err
	return err
}
