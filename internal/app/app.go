package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/router"
	"github.com/econplay/econquiz/internal/screen"
	"github.com/econplay/econquiz/internal/screens/home"
	"github.com/econplay/econquiz/internal/screens/quiz"
	"github.com/econplay/econquiz/internal/screens/welcome"
	"github.com/econplay/econquiz/internal/store"
	"github.com/econplay/econquiz/internal/ui/layout"
)

// Options configures one app run.
type Options struct {
	Bank     *bank.Bank
	Progress store.ProgressRepo

	// Mode, when valid, skips the menu and starts a quiz directly.
	Mode  bank.Mode
	Level int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	course string
	width  int
	height int
}

// newAppModel builds the screen stack for the given options: either the
// welcome-to-home flow or, for direct play, the quiz itself.
func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.Mode.Valid() {
		initial = quiz.New(opts.Bank, opts.Mode, opts.Level, opts.Progress)
	} else {
		initial = welcome.New(func() screen.Screen {
			return home.New(opts.Bank, opts.Progress)
		})
	}

	return AppModel{
		router: router.New(initial),
		course: opts.Bank.Course,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Only ctrl+c is global; esc belongs to the screens.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.course, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its key hints, falling back to
// generic navigation hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
