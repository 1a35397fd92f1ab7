package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/mod/semver"

	"finmentor/internal/chat"
)

// SchemaVersion is stamped on every saved attempt. Loads reject saves written
// by a newer major version, where the state layout may have changed in ways
// this build cannot interpret; same-major saves load normally.
const SchemaVersion = "v1.0.0"

// ErrNotFound is returned when no resumable attempt exists for a key. A save
// rejected for version incompatibility surfaces the same way: the caller
// starts fresh either way.
var ErrNotFound = errors.New("saved state not found")

// SavedState is one persisted lesson attempt: the engine state plus the full
// visible transcript, stored together so a resume reproduces the screen
// exactly.
type SavedState struct {
	LearnerID  string
	LessonID   string
	State      chat.State
	Transcript []chat.Message
	UpdatedAt  time.Time
}

// SavedStateRepo persists lesson attempts keyed by (learner, lesson).
type SavedStateRepo interface {
	// Save replaces the attempt row for (LearnerID, LessonID).
	Save(ctx context.Context, ss SavedState) error

	// Load returns the attempt for the key, or ErrNotFound.
	Load(ctx context.Context, learnerID, lessonID string) (SavedState, error)

	// Delete removes the attempt for the key. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, learnerID, lessonID string) error
}

type savedStateRepo struct {
	db *sql.DB
}

func (r *savedStateRepo) Save(ctx context.Context, ss SavedState) error {
	stateJSON, err := json.Marshal(ss.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	transcriptJSON, err := json.Marshal(ss.Transcript)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	updatedAt := ss.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO saved_states (learner_id, lesson_id, schema_version, state, transcript, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (learner_id, lesson_id) DO UPDATE SET
			schema_version = excluded.schema_version,
			state          = excluded.state,
			transcript     = excluded.transcript,
			updated_at     = excluded.updated_at`,
		ss.LearnerID, ss.LessonID, SchemaVersion, string(stateJSON), string(transcriptJSON), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("save attempt %s/%s: %w", ss.LearnerID, ss.LessonID, err)
	}
	return nil
}

func (r *savedStateRepo) Load(ctx context.Context, learnerID, lessonID string) (SavedState, error) {
	var (
		version        string
		stateJSON      string
		transcriptJSON string
		updatedAt      time.Time
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT schema_version, state, transcript, updated_at
		FROM saved_states
		WHERE learner_id = ? AND lesson_id = ?`,
		learnerID, lessonID,
	).Scan(&version, &stateJSON, &transcriptJSON, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedState{}, ErrNotFound
	}
	if err != nil {
		return SavedState{}, fmt.Errorf("load attempt %s/%s: %w", learnerID, lessonID, err)
	}

	if !compatibleVersion(version) {
		return SavedState{}, ErrNotFound
	}

	ss := SavedState{
		LearnerID: learnerID,
		LessonID:  lessonID,
		UpdatedAt: updatedAt,
	}
	if err := json.Unmarshal([]byte(stateJSON), &ss.State); err != nil {
		return SavedState{}, fmt.Errorf("decode state %s/%s: %w", learnerID, lessonID, err)
	}
	if err := json.Unmarshal([]byte(transcriptJSON), &ss.Transcript); err != nil {
		return SavedState{}, fmt.Errorf("decode transcript %s/%s: %w", learnerID, lessonID, err)
	}
	return ss, nil
}

func (r *savedStateRepo) Delete(ctx context.Context, learnerID, lessonID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_states WHERE learner_id = ? AND lesson_id = ?`,
		learnerID, lessonID,
	)
	if err != nil {
		return fmt.Errorf("delete attempt %s/%s: %w", learnerID, lessonID, err)
	}
	return nil
}

// compatibleVersion reports whether a save written at version v can be loaded
// by this build. Unparseable versions are treated as incompatible.
func compatibleVersion(v string) bool {
	if !semver.IsValid(v) {
		return false
	}
	return semver.Major(v) == semver.Major(SchemaVersion)
}
