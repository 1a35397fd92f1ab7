package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Progress is a learner's best completed result for one lesson. It survives
// attempt resets; only an explicit delete removes it.
type Progress struct {
	LearnerID   string
	LessonID    string
	BestScore   int
	BestTotal   int
	Attempts    int
	CompletedAt time.Time
}

// Percent returns the best score as an integer percentage.
func (p Progress) Percent() int {
	if p.BestTotal == 0 {
		return 0
	}
	return p.BestScore * 100 / p.BestTotal
}

// ProgressRepo persists per-lesson completion records.
type ProgressRepo interface {
	// Record notes a completed attempt. The stored row keeps the best
	// score across completions and counts every completion.
	Record(ctx context.Context, learnerID, lessonID string, score, total int) error

	// Get returns the progress row for the key, or ErrNotFound.
	Get(ctx context.Context, learnerID, lessonID string) (Progress, error)

	// List returns all progress rows for a learner, lesson ID ascending.
	List(ctx context.Context, learnerID string) ([]Progress, error)

	// Delete removes the progress row for the key. Deleting a missing row
	// is not an error.
	Delete(ctx context.Context, learnerID, lessonID string) error
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Record(ctx context.Context, learnerID, lessonID string, score, total int) error {
	now := time.Now().UTC()

	// Best-of upsert: the score pair is replaced only when the new
	// percentage beats the stored one; the attempt counter always advances.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (learner_id, lesson_id, best_score, best_total, attempts, completed_at)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT (learner_id, lesson_id) DO UPDATE SET
			best_score   = CASE WHEN excluded.best_score * progress.best_total > progress.best_score * excluded.best_total
			               THEN excluded.best_score ELSE progress.best_score END,
			best_total   = CASE WHEN excluded.best_score * progress.best_total > progress.best_score * excluded.best_total
			               THEN excluded.best_total ELSE progress.best_total END,
			attempts     = progress.attempts + 1,
			completed_at = excluded.completed_at`,
		learnerID, lessonID, score, total, now,
	)
	if err != nil {
		return fmt.Errorf("record progress %s/%s: %w", learnerID, lessonID, err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, learnerID, lessonID string) (Progress, error) {
	p := Progress{LearnerID: learnerID, LessonID: lessonID}
	err := r.db.QueryRowContext(ctx, `
		SELECT best_score, best_total, attempts, completed_at
		FROM progress
		WHERE learner_id = ? AND lesson_id = ?`,
		learnerID, lessonID,
	).Scan(&p.BestScore, &p.BestTotal, &p.Attempts, &p.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Progress{}, ErrNotFound
	}
	if err != nil {
		return Progress{}, fmt.Errorf("get progress %s/%s: %w", learnerID, lessonID, err)
	}
	return p, nil
}

func (r *progressRepo) List(ctx context.Context, learnerID string) ([]Progress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT lesson_id, best_score, best_total, attempts, completed_at
		FROM progress
		WHERE learner_id = ?
		ORDER BY lesson_id`,
		learnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list progress %s: %w", learnerID, err)
	}
	defer rows.Close()

	var out []Progress
	for rows.Next() {
		p := Progress{LearnerID: learnerID}
		if err := rows.Scan(&p.LessonID, &p.BestScore, &p.BestTotal, &p.Attempts, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *progressRepo) Delete(ctx context.Context, learnerID, lessonID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM progress WHERE learner_id = ? AND lesson_id = ?`,
		learnerID, lessonID,
	)
	if err != nil {
		return fmt.Errorf("delete progress %s/%s: %w", learnerID, lessonID, err)
	}
	return nil
}
