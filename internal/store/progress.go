package store

import (
	"context"
	"fmt"
	"time"

	"github.com/econplay/econquiz/ent"
	"github.com/econplay/econquiz/ent/progress"
)

// ProgressRecord is the persisted summary of the most recently completed
// session: mode, level and the ordered correctness flags (per question,
// or per sub-question for case studies). Exactly one record exists at a
// time; each completion overwrites it. The session core never reads it
// back; it feeds the home-screen hint and the stats command only.
type ProgressRecord struct {
	Mode    string
	Level   int
	Results []bool
	SavedAt time.Time
}

// Correct returns the number of true flags.
func (r ProgressRecord) Correct() int {
	n := 0
	for _, ok := range r.Results {
		if ok {
			n++
		}
	}
	return n
}

// Total returns the number of recorded flags.
func (r ProgressRecord) Total() int {
	return len(r.Results)
}

// ProgressRepo manages the single progress row.
type ProgressRepo interface {
	// Save overwrites the progress record.
	Save(ctx context.Context, rec ProgressRecord) error

	// Latest returns the stored record, or nil if none exists.
	Latest(ctx context.Context) (*ProgressRecord, error)

	// Clear deletes the stored record.
	Clear(ctx context.Context) error
}

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Save(ctx context.Context, rec ProgressRecord) error {
	if rec.Results == nil {
		rec.Results = []bool{}
	}
	savedAt := rec.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	existing, err := r.client.Progress.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress: %w", err)
	}

	if existing == nil {
		_, err = r.client.Progress.Create().
			SetMode(rec.Mode).
			SetLevel(rec.Level).
			SetResults(rec.Results).
			SetSavedAt(savedAt).
			Save(ctx)
	} else {
		_, err = r.client.Progress.UpdateOne(existing).
			SetMode(rec.Mode).
			SetLevel(rec.Level).
			SetResults(rec.Results).
			SetSavedAt(savedAt).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Latest(ctx context.Context) (*ProgressRecord, error) {
	p, err := r.client.Progress.Query().
		Order(ent.Desc(progress.FieldSavedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return &ProgressRecord{
		Mode:    p.Mode,
		Level:   p.Level,
		Results: p.Results,
		SavedAt: p.SavedAt,
	}, nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Progress.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
