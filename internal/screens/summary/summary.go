package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/router"
	"github.com/econplay/econquiz/internal/screen"
	"github.com/econplay/econquiz/internal/session"
	"github.com/econplay/econquiz/internal/ui/components"
	"github.com/econplay/econquiz/internal/ui/layout"
	"github.com/econplay/econquiz/internal/ui/theme"
)

const (
	actionReplay = iota
	actionHome
)

// SummaryScreen displays the score and revision pointers for a
// finished quiz.
type SummaryScreen struct {
	report  session.Report
	course  string
	buttons []components.Button
	sel     int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. replay builds a fresh quiz screen with
// the same mode and level when the player goes again.
func New(report session.Report, course string, replay func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		report: report,
		course: course,
	}
	s.buttons = []components.Button{
		components.NewButton("Play again", true, func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: replay()}
			}
		}),
		components.NewButton("Home", false, func() tea.Cmd {
			return func() tea.Msg {
				return router.PopToRootMsg{}
			}
		}),
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.focusButton(actionReplay)
	case "right", "l":
		s.focusButton(actionHome)
	case "tab":
		s.focusButton((s.sel + 1) % len(s.buttons))
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		var cmd tea.Cmd
		s.buttons[s.sel], cmd = s.buttons[s.sel].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SummaryScreen) focusButton(i int) {
	s.sel = i
	for j := range s.buttons {
		s.buttons[j].Active = j == i
	}
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · Level %d", r.Mode.Label(), r.Level)))
	b.WriteString("\n\n")

	if r.Attempted == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Nothing was answered this time."))
		b.WriteString("\n\n")
	} else {
		mins := int(r.TotalTime.Minutes())
		secs := int(r.TotalTime.Seconds()) % 60
		accuracy := float64(r.CorrectCount) / float64(r.Attempted) * 100

		stats := fmt.Sprintf("Answered: %d      Correct: %d      Accuracy: %.0f%%      Time: %d:%02d",
			r.Attempted, r.CorrectCount, accuracy, mins, secs)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(stats))
		b.WriteString("\n\n")

		if r.AllCorrect {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Full marks — nothing left to revise here."))
			b.WriteString("\n\n")
		}
	}

	if len(r.Suggestions) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Where to focus")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, sug := range r.Suggestions {
			line := fmt.Sprintf("  %s %s",
				lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(sug.Topic+":"),
				lipgloss.NewStyle().Foreground(theme.Text).Render(sug.Detail))
			wrapped := lipgloss.NewStyle().Width(min(width-8, 72)).Render(line)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, wrapped))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	row := s.buttons[actionReplay].View() + "   " + s.buttons[actionHome].View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
