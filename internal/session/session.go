// Package session drives one quiz play-through: question selection,
// the submission state machine, and the summary report.
package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/econplay/econquiz/internal/bank"
)

// Session is one complete play-through from mode/level selection to the
// final report. The Controller is its single owner and only mutator;
// starting a new session replaces the value outright, and abandoning
// one is simply dropping it.
type Session struct {
	ID        string
	Mode      bank.Mode
	Level     int
	StartedAt time.Time
	EndedAt   time.Time

	// Questions is the selector-produced run order, fixed at start.
	Questions []bank.Question

	// Outcomes holds one record per answered question, appended
	// atomically: len(Outcomes) <= len(Questions) at every point, with
	// equality exactly at completion.
	Outcomes []Outcome
}

// Outcome records everything kept for one question position: the
// submission, its grade, and the time spent since the previous record.
// For case questions the per-sub-question records live in Subs, Elapsed
// covers the whole question, and the top-level answer fields stay zero.
type Outcome struct {
	Answer  string
	Correct bool
	Matched []string
	Elapsed time.Duration
	Subs    []SubOutcome
}

// SubOutcome is the atomic record of one case-study sub-answer.
type SubOutcome struct {
	Answer  string
	Correct bool
	Matched []string
}

// New builds a session over the bank's pool for mode, filtered and
// shuffled by SelectQuestions. A nil rng seeds from the wall clock.
// A missing mode is an empty pool: the session holds zero questions
// and completes the moment a controller takes it.
func New(b *bank.Bank, mode bank.Mode, level int, rng *rand.Rand) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Mode:      mode,
		Level:     level,
		StartedAt: time.Now(),
		Questions: SelectQuestions(b.Pool(mode), level, rng),
	}
}

// CorrectnessFlags flattens the outcomes into the ordered flag list
// persisted with the progress record. Case outcomes expand to one flag
// per sub-answer.
func (s *Session) CorrectnessFlags() []bool {
	flags := make([]bool, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if len(o.Subs) > 0 {
			for _, sub := range o.Subs {
				flags = append(flags, sub.Correct)
			}
			continue
		}
		flags = append(flags, o.Correct)
	}
	return flags
}
