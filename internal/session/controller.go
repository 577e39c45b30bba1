package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/grading"
	"github.com/econplay/econquiz/internal/store"
)

// phase is the controller's position in the state machine.
type phase int

const (
	phaseQuestion phase = iota // awaiting a top-level answer
	phaseSub                   // awaiting a case sub-answer
	phaseDone
)

// ErrInvalidState reports a submission the state machine cannot accept:
// answering a completed session, a sub-answer outside a case question,
// or a top-level answer while a case question is open. This is a caller
// contract violation and is surfaced immediately.
type ErrInvalidState struct {
	Op    string
	State string
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("%s: session is %s", e.Op, e.State)
}

// Controller owns one Session and drives it through the state machine.
// It is strictly single-threaded: the UI event loop is the only caller.
type Controller struct {
	session  *Session
	grader   *grading.Grader
	progress store.ProgressRepo // nil disables persistence

	phase    phase
	idx      int
	subIdx   int
	subBuf   []SubOutcome
	lastMark time.Time
	now      func() time.Time
}

// NewController takes ownership of s. A session with no questions
// completes immediately and still writes its progress record.
func NewController(s *Session, g *grading.Grader, progress store.ProgressRepo) *Controller {
	c := &Controller{
		session:  s,
		grader:   g,
		progress: progress,
		now:      time.Now,
		lastMark: s.StartedAt,
	}
	if len(s.Questions) == 0 {
		c.complete()
	}
	return c
}

// Session returns the controlled session. Callers must treat it as
// read-only; the controller is the sole mutator.
func (c *Controller) Session() *Session { return c.session }

// Completed reports whether the session has reached its terminal state.
func (c *Controller) Completed() bool { return c.phase == phaseDone }

// Current returns the active question with its position, or ok=false
// once the session has completed.
func (c *Controller) Current() (q *bank.Question, index, total int, ok bool) {
	total = len(c.session.Questions)
	if c.phase == phaseDone {
		return nil, 0, total, false
	}
	return &c.session.Questions[c.idx], c.idx, total, true
}

// CurrentSub returns the active case sub-question, or ok=false when the
// controller is not inside a case question's sub-sequence.
func (c *Controller) CurrentSub() (sq bank.SubQuestion, index, total int, ok bool) {
	if c.phase != phaseSub {
		return bank.SubQuestion{}, 0, 0, false
	}
	subs := c.session.Questions[c.idx].SubQuestions
	return subs[c.subIdx], c.subIdx, len(subs), true
}

// Submit grades a top-level answer, records the outcome and advances.
// For a case question nothing is recorded: the session moves into its
// sub-question sequence and the returned result carries no grade.
func (c *Controller) Submit(answer string) (grading.Result, error) {
	switch c.phase {
	case phaseDone:
		return grading.Result{}, &ErrInvalidState{Op: "submit answer", State: "already completed"}
	case phaseSub:
		return grading.Result{}, &ErrInvalidState{Op: "submit answer", State: "awaiting a sub-answer"}
	}

	q := &c.session.Questions[c.idx]
	res := c.grader.Grade(q, answer)

	if q.Mode == bank.ModeCase && len(q.SubQuestions) > 0 {
		c.phase = phaseSub
		c.subIdx = 0
		c.subBuf = nil
		return res, nil
	}

	c.session.Outcomes = append(c.session.Outcomes, Outcome{
		Answer:  answer,
		Correct: res.Correct,
		Matched: res.Matched,
		Elapsed: c.mark(),
	})
	c.advance()
	return res, nil
}

// SubmitSub grades one case sub-answer by token overlap. After the last
// sub-question, the buffered sub-records and a single elapsed entry for
// the whole case question are appended as one outcome.
func (c *Controller) SubmitSub(answer string) (grading.Result, error) {
	if c.phase != phaseSub {
		state := "awaiting a question"
		if c.phase == phaseDone {
			state = "already completed"
		}
		return grading.Result{}, &ErrInvalidState{Op: "submit sub-answer", State: state}
	}

	q := &c.session.Questions[c.idx]
	res := grading.GradeSub(q.SubQuestions[c.subIdx], answer)
	c.subBuf = append(c.subBuf, SubOutcome{
		Answer:  answer,
		Correct: res.Correct,
		Matched: res.Matched,
	})

	if c.subIdx+1 < len(q.SubQuestions) {
		c.subIdx++
		return res, nil
	}

	c.session.Outcomes = append(c.session.Outcomes, Outcome{
		Subs:    c.subBuf,
		Elapsed: c.mark(),
	})
	c.subBuf = nil
	c.advance()
	return res, nil
}

// Report summarizes the session as it stands.
func (c *Controller) Report() Report {
	return Summarize(c.session)
}

// mark returns the time elapsed since the last recorded outcome and
// resets the mark.
func (c *Controller) mark() time.Duration {
	now := c.now()
	d := now.Sub(c.lastMark)
	c.lastMark = now
	return d
}

// advance moves to the next question, or completes the session after
// the last one.
func (c *Controller) advance() {
	if c.idx+1 < len(c.session.Questions) {
		c.idx++
		c.phase = phaseQuestion
		return
	}
	c.complete()
}

// complete finalizes the session and overwrites the stored progress
// record. A persistence failure never fails the session.
func (c *Controller) complete() {
	c.phase = phaseDone
	c.session.EndedAt = c.now()
	if c.progress == nil {
		return
	}
	rec := store.ProgressRecord{
		Mode:    string(c.session.Mode),
		Level:   c.session.Level,
		Results: c.session.CorrectnessFlags(),
		SavedAt: c.session.EndedAt,
	}
	if err := c.progress.Save(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save progress: %v\n", err)
	}
}
