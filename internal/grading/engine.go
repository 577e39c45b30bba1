// Package grading scores submitted answers against bank questions.
// Each mode has its own strategy; all strategies absorb malformed input
// and grade it incorrect rather than returning an error.
package grading

import "github.com/econplay/econquiz/internal/bank"

// Result is the outcome of grading one submission. Matched holds the
// keywords (keyword modes) or reference tokens (case sub-questions)
// found in the submission, in the reference order.
type Result struct {
	Correct bool
	Matched []string
}

// Strategy grades one submission for a single question shape.
type Strategy interface {
	Grade(q *bank.Question, submitted string) Result
}

// Grader dispatches on the question's mode discriminant.
type Grader struct {
	strategies map[bank.Mode]Strategy
}

// New returns a grader with the standard strategy per mode.
func New() *Grader {
	return &Grader{strategies: map[bank.Mode]Strategy{
		bank.ModeDiagram:     keywordStrategy{},
		bank.ModeEssay:       keywordStrategy{},
		bank.ModeCalculation: numericStrategy{},
		bank.ModeFlash:       exactStrategy{},
		bank.ModeCase:        caseStrategy{},
	}}
}

// Grade scores a top-level submission. An unknown mode grades incorrect
// with no matches; it never panics.
func (g *Grader) Grade(q *bank.Question, submitted string) Result {
	s, ok := g.strategies[q.Mode]
	if !ok {
		return Result{}
	}
	return s.Grade(q, submitted)
}
