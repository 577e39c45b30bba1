package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/router"
	"github.com/econplay/econquiz/internal/screen"
	"github.com/econplay/econquiz/internal/screens/help"
	"github.com/econplay/econquiz/internal/screens/setup"
	"github.com/econplay/econquiz/internal/store"
	"github.com/econplay/econquiz/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	bank       *bank.Bank
	menu       components.Menu
	menuLabels []string
	last       *store.ProgressRecord
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The last saved quiz result, when one
// exists, is shown in the stats bar; a load failure just leaves the
// bar empty.
func New(b *bank.Bank, progress store.ProgressRepo) *HomeScreen {
	var last *store.ProgressRecord
	if progress != nil {
		last, _ = progress.Latest(context.Background())
	}

	menuLabels := []string{"START QUIZ", "HOW SCORING WORKS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: b.Size() == 0, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(b, progress)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: help.New()}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		bank:       b,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		last:       last,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.bank, h.last, cw, compact))
	sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, disabledIndexes(h.menu.Items), cw))

	content := strings.Join(sections, "\n\n")

	return components.BoardFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func disabledIndexes(items []components.MenuItem) map[int]bool {
	out := make(map[int]bool)
	for i, item := range items {
		if item.Disabled {
			out[i] = true
		}
	}
	return out
}
