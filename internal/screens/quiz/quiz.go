package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/grading"
	"github.com/econplay/econquiz/internal/router"
	"github.com/econplay/econquiz/internal/screen"
	"github.com/econplay/econquiz/internal/screens/summary"
	sess "github.com/econplay/econquiz/internal/session"
	"github.com/econplay/econquiz/internal/store"
	"github.com/econplay/econquiz/internal/ui/components"
	"github.com/econplay/econquiz/internal/ui/layout"
)

// feedback captures one graded answer for the between-questions panel.
type feedback struct {
	question bank.Question
	sub      *bank.SubQuestion // set when a case part was graded
	answer   string
	result   grading.Result
}

// QuizScreen drives one quiz play-through. All quiz state lives in the
// session controller; the screen only holds presentation state.
type QuizScreen struct {
	ctrl   *sess.Controller
	course string

	// retained for the play-again factory
	bank     *bank.Bank
	mode     bank.Mode
	level    int
	progress store.ProgressRepo

	input       components.TextInput
	showing     *feedback
	confirmQuit bool
	elapsed     time.Duration
	finished    bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New assembles a fresh session for the given mode and level and wraps
// it in a quiz screen.
func New(b *bank.Bank, mode bank.Mode, level int, progress store.ProgressRepo) *QuizScreen {
	s := sess.New(b, mode, level, nil)
	q := &QuizScreen{
		ctrl:     sess.NewController(s, grading.New(), progress),
		course:   b.Course,
		bank:     b,
		mode:     mode,
		level:    level,
		progress: progress,
	}
	q.input = q.freshInput()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	// An empty pool completes at construction; skip straight to the
	// summary so the player still gets a report.
	if q.ctrl.Completed() {
		q.finished = true
		return q.toSummary()
	}
	return tea.Batch(q.input.Init(), tickCmd())
}

func (q *QuizScreen) Title() string {
	return q.mode.Label()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case q.showing != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case q.atCaseIntro():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if q.finished || q.ctrl.Completed() {
			return q, nil
		}
		q.elapsed = time.Since(q.ctrl.Session().StartedAt)
		return q, tickCmd()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	// Cursor blink and friends.
	if q.inputActive() {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.finished {
		return q, nil
	}

	key := msg.String()

	if q.confirmQuit {
		switch key {
		case "y", "Y":
			q.confirmQuit = false
			q.finished = true
			return q, q.toSummary()
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return q, nil
	}

	// Feedback panel: any key moves on.
	if q.showing != nil {
		q.showing = nil
		if q.ctrl.Completed() {
			q.finished = true
			return q, q.toSummary()
		}
		q.input = q.freshInput()
		return q, q.input.Init()
	}

	switch key {
	case "esc":
		q.confirmQuit = true
		return q, nil
	case "enter":
		return q.submit()
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

// submit grades whatever the player is currently being asked. An empty
// answer is allowed; it simply grades as incorrect.
func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	if sq, _, _, inSub := q.ctrl.CurrentSub(); inSub {
		cur, _, _, _ := q.ctrl.Current()
		question := *cur
		answer := q.input.Value()
		res, err := q.ctrl.SubmitSub(answer)
		if err != nil {
			return q, nil
		}
		q.showing = &feedback{question: question, sub: &sq, answer: answer, result: res}
		return q, nil
	}

	cur, _, _, ok := q.ctrl.Current()
	if !ok {
		return q, nil
	}
	question := *cur

	// The case intro takes no answer: enter opens the sub-questions.
	if question.Mode == bank.ModeCase && len(question.SubQuestions) > 0 {
		if _, err := q.ctrl.Submit(""); err != nil {
			return q, nil
		}
		q.input = q.freshInput()
		return q, q.input.Init()
	}

	answer := q.input.Value()
	res, err := q.ctrl.Submit(answer)
	if err != nil {
		return q, nil
	}
	q.showing = &feedback{question: question, answer: answer, result: res}
	return q, nil
}

// toSummary replaces this screen with the summary over the session as
// it stands, complete or not.
func (q *QuizScreen) toSummary() tea.Cmd {
	report := q.ctrl.Report()
	b, mode, level, progress := q.bank, q.mode, q.level, q.progress
	replay := func() screen.Screen {
		return New(b, mode, level, progress)
	}
	s := summary.New(report, q.course, replay)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

// freshInput builds a text input suited to whatever is being asked.
func (q *QuizScreen) freshInput() components.TextInput {
	if _, _, _, inSub := q.ctrl.CurrentSub(); inSub {
		return components.NewTextInput("Answer this part...", false, 160)
	}

	cur, _, _, ok := q.ctrl.Current()
	if !ok {
		return components.NewTextInput("", false, 0)
	}
	switch cur.Mode {
	case bank.ModeCalculation:
		return components.NewTextInput("Type the number...", true, 24)
	case bank.ModeFlash:
		return components.NewTextInput("Type the term...", false, 48)
	default:
		return components.NewTextInput("Type your answer...", false, 200)
	}
}

func (q *QuizScreen) inputActive() bool {
	return !q.finished && !q.confirmQuit && q.showing == nil && !q.atCaseIntro()
}

// atCaseIntro reports whether the player is looking at a case study's
// scenario page rather than one of its parts.
func (q *QuizScreen) atCaseIntro() bool {
	if _, _, _, inSub := q.ctrl.CurrentSub(); inSub {
		return false
	}
	cur, _, _, ok := q.ctrl.Current()
	return ok && cur.Mode == bank.ModeCase && len(cur.SubQuestions) > 0
}
