package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/router"
	"github.com/econplay/econquiz/internal/screen"
	"github.com/econplay/econquiz/internal/screens/quiz"
	"github.com/econplay/econquiz/internal/store"
	"github.com/econplay/econquiz/internal/ui/components"
	"github.com/econplay/econquiz/internal/ui/layout"
	"github.com/econplay/econquiz/internal/ui/theme"
)

type stage int

const (
	stageMode stage = iota
	stageLevel
)

// SetupScreen walks the player through mode and level choice before
// starting a quiz.
type SetupScreen struct {
	bank     *bank.Bank
	progress store.ProgressRepo

	stage     stage
	modePick  components.Picker
	levelPick components.Picker
	modes     []bank.Mode
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen over the given bank.
func New(b *bank.Bank, progress store.ProgressRepo) *SetupScreen {
	modes := bank.Modes()
	options := make([]string, len(modes))
	hints := make([]string, len(modes))
	for i, m := range modes {
		options[i] = m.Label()
		hints[i] = fmt.Sprintf("%d questions", b.Count(m))
	}

	pick := components.NewPicker("What do you want to practice?", options)
	pick.Hints = hints

	return &SetupScreen{
		bank:     b,
		progress: progress,
		modePick: pick,
		modes:    modes,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		if s.stage == stageLevel {
			s.stage = stageMode
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		if s.stage == stageMode {
			s.stage = stageLevel
			s.levelPick = newLevelPicker(s.bank.MaxLevel())
			return s, nil
		}
		mode := s.modes[s.modePick.Selected]
		level := s.levelPick.Selected + 1
		q := quiz.New(s.bank, mode, level, s.progress)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: q} }
	}

	if s.stage == stageMode {
		s.modePick, _ = s.modePick.Update(msg)
	} else {
		s.levelPick, _ = s.levelPick.Update(msg)
	}
	return s, nil
}

func newLevelPicker(maxLevel int) components.Picker {
	options := make([]string, maxLevel)
	hints := make([]string, maxLevel)
	for i := range options {
		options[i] = fmt.Sprintf("Level %d", i+1)
		hints[i] = levelHint(i + 1)
	}
	pick := components.NewPicker("How hard should it get?", options)
	pick.Hints = hints
	// Default to the top level; easier levels are for targeted revision.
	pick.Selected = maxLevel - 1
	return pick
}

func levelHint(level int) string {
	switch level {
	case 1:
		return "core ideas"
	case 2:
		return "adds applied questions"
	case 3:
		return "adds exam stretch"
	}
	return ""
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if s.stage == stageMode {
		body = s.modePick.View()
	} else {
		chosen := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(s.modePick.Choice()) + "\n\n"
		body = chosen + s.levelPick.View() + "\n" +
			theme.Hint.Render("each level includes every easier question")
	}

	card := components.Card(body, cw)

	content := strings.Join([]string{
		theme.Title.Width(cw).Render("Set up your quiz"),
		card,
	}, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
