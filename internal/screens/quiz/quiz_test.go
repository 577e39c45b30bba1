package quiz

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/router"
	"github.com/econplay/econquiz/internal/screens/summary"
	"github.com/econplay/econquiz/internal/store"
)

const flashBank = `course: Test Economics
modes:
  flash:
    - level: 1
      topic: National accounts
      prompt: The total value of final goods and services produced in a year
      answer: GDP
`

const caseBank = `course: Test Economics
modes:
  case:
    - level: 1
      topic: Measuring output
      prompt: The national accounts puzzle
      background: An economy reports nominal GDP of 550 billion while the deflator climbs to 110.
      columns: ["Year", "Nominal GDP", "Deflator"]
      table:
        - ["2023", "520", "100"]
        - ["2024", "550", "110"]
      subquestions:
        - prompt: What is real GDP in 2024?
          answer: real GDP is 500 billion
        - prompt: Did real output rise or fall?
          answer: output fell slightly
`

const calcBank = `course: Test Economics
modes:
  calculation:
    - level: 1
      topic: Revenue
      prompt: Compute total revenue.
      inputs:
        price: 15
        quantity: 200
      expected: 3000
`

// fakeProgress records saves in memory.
type fakeProgress struct {
	saved []store.ProgressRecord
}

func (f *fakeProgress) Save(_ context.Context, rec store.ProgressRecord) error {
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeProgress) Latest(_ context.Context) (*store.ProgressRecord, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	rec := f.saved[len(f.saved)-1]
	return &rec, nil
}

func (f *fakeProgress) Clear(_ context.Context) error {
	f.saved = nil
	return nil
}

func loadBank(t *testing.T, yaml string) *bank.Bank {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := bank.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	return b
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeString(q *QuizScreen, s string) {
	for _, r := range s {
		q.Update(keyPress(r))
	}
}

// expectSummaryTransition runs cmd and asserts it replaces the quiz
// with a summary screen.
func expectSummaryTransition(t *testing.T, cmd tea.Cmd) *summary.SummaryScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	sum, ok := replaceMsg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected a summary screen, got %T", replaceMsg.Screen)
	}
	return sum
}

func TestFlashRunToSummary(t *testing.T) {
	b := loadBank(t, flashBank)
	progress := &fakeProgress{}
	q := New(b, bank.ModeFlash, 1, progress)
	q.Init()

	view := q.View(80, 24)
	if !strings.Contains(view, "Define:") {
		t.Error("flash view should show the Define: prompt")
	}
	if !strings.Contains(view, "final goods and services") {
		t.Error("flash view should show the question prompt")
	}

	typeString(q, "gdp")
	_, cmd := q.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("feedback should wait for a key, not emit a command")
	}

	view = q.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Errorf("expected Correct! feedback, got:\n%s", view)
	}

	// Grading happens at submit time, so the progress row exists
	// before the summary is shown.
	if len(progress.saved) != 1 {
		t.Fatalf("saved %d progress records, want 1", len(progress.saved))
	}
	if progress.saved[0].Correct() != 1 {
		t.Errorf("saved Correct = %d, want 1", progress.saved[0].Correct())
	}

	_, cmd = q.Update(keyPress(' '))
	expectSummaryTransition(t, cmd)
}

func TestWrongFlashAnswerRevealsTerm(t *testing.T) {
	b := loadBank(t, flashBank)
	q := New(b, bank.ModeFlash, 1, &fakeProgress{})
	q.Init()

	typeString(q, "inflation")
	q.Update(specialKey(tea.KeyEnter))

	view := q.View(80, 24)
	if !strings.Contains(view, "Not quite") {
		t.Error("expected Not quite feedback")
	}
	if !strings.Contains(view, `"GDP"`) {
		t.Errorf("expected the answer reveal, got:\n%s", view)
	}
}

func TestCalculationRunAcceptsFormattedNumber(t *testing.T) {
	b := loadBank(t, calcBank)
	q := New(b, bank.ModeCalculation, 1, &fakeProgress{})
	q.Init()

	view := q.View(80, 24)
	if !strings.Contains(view, "price:") || !strings.Contains(view, "quantity:") {
		t.Errorf("calculation view should list the given inputs, got:\n%s", view)
	}

	typeString(q, "3,000")
	q.Update(specialKey(tea.KeyEnter))

	view = q.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Errorf("expected a formatted number to grade correct, got:\n%s", view)
	}
}

func TestCaseFlow(t *testing.T) {
	b := loadBank(t, caseBank)
	progress := &fakeProgress{}
	q := New(b, bank.ModeCase, 1, progress)
	q.Init()

	view := q.View(80, 24)
	if !strings.Contains(view, "nominal GDP of 550 billion") {
		t.Error("case intro should show the background")
	}
	if !strings.Contains(view, "Nominal GDP") {
		t.Error("case intro should render the data table")
	}
	if !strings.Contains(view, "press Enter to begin") {
		t.Error("case intro should prompt to begin")
	}

	// Enter opens part 1; the intro itself records nothing.
	_, cmd := q.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected the input focus command when the case opens")
	}
	view = q.View(80, 24)
	if !strings.Contains(view, "Part 1 of 2") {
		t.Errorf("expected part 1 view, got:\n%s", view)
	}

	typeString(q, "500 billion")
	q.Update(specialKey(tea.KeyEnter))
	view = q.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("overlapping sub-answer should grade correct")
	}
	if !strings.Contains(view, "Shared ground:") {
		t.Errorf("sub feedback should show shared tokens, got:\n%s", view)
	}

	q.Update(keyPress(' '))
	view = q.View(80, 24)
	if !strings.Contains(view, "Part 2 of 2") {
		t.Errorf("expected part 2 view, got:\n%s", view)
	}

	typeString(q, "it fell")
	q.Update(specialKey(tea.KeyEnter))
	q.View(80, 24)

	_, cmd = q.Update(keyPress(' '))
	sum := expectSummaryTransition(t, cmd)
	if sum == nil {
		t.Fatal("expected a summary screen")
	}

	if len(progress.saved) != 1 {
		t.Fatalf("saved %d progress records, want 1", len(progress.saved))
	}
	if progress.saved[0].Total() != 2 {
		t.Errorf("case progress Total = %d, want 2 (one flag per part)", progress.saved[0].Total())
	}
}

func TestEscShowsQuitConfirmAndResumes(t *testing.T) {
	b := loadBank(t, flashBank)
	q := New(b, bank.ModeFlash, 1, &fakeProgress{})
	q.Init()

	q.Update(specialKey(tea.KeyEscape))
	view := q.View(80, 24)
	if !strings.Contains(view, "End quiz early?") {
		t.Error("esc should show the quit confirmation")
	}

	q.Update(keyPress('n'))
	view = q.View(80, 24)
	if strings.Contains(view, "End quiz early?") {
		t.Error("n should dismiss the quit confirmation")
	}
	if !strings.Contains(view, "Define:") {
		t.Error("the question should be back after resuming")
	}
}

func TestEarlyQuitSkipsSaveAndShowsPartialSummary(t *testing.T) {
	b := loadBank(t, flashBank)
	progress := &fakeProgress{}
	q := New(b, bank.ModeFlash, 1, progress)
	q.Init()

	q.Update(specialKey(tea.KeyEscape))
	_, cmd := q.Update(keyPress('y'))
	expectSummaryTransition(t, cmd)

	if len(progress.saved) != 0 {
		t.Errorf("an abandoned quiz saved %d records, want 0", len(progress.saved))
	}
}

func TestEmptyPoolGoesStraightToSummary(t *testing.T) {
	b := loadBank(t, flashBank)
	progress := &fakeProgress{}
	// The bank has no essay questions at all.
	q := New(b, bank.ModeEssay, 1, progress)

	cmd := q.Init()
	expectSummaryTransition(t, cmd)

	// An empty session still writes its progress row.
	if len(progress.saved) != 1 {
		t.Fatalf("saved %d progress records, want 1", len(progress.saved))
	}
	if progress.saved[0].Total() != 0 {
		t.Errorf("empty session Total = %d, want 0", progress.saved[0].Total())
	}
}

func TestKeyHintsFollowState(t *testing.T) {
	b := loadBank(t, flashBank)
	q := New(b, bank.ModeFlash, 1, &fakeProgress{})
	q.Init()

	hints := q.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Enter" {
		t.Errorf("question hints = %v, want Enter first", hints)
	}

	q.Update(specialKey(tea.KeyEscape))
	hints = q.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Y" {
		t.Errorf("quit-confirm hints = %v, want Y first", hints)
	}
}
