// Package help renders a static explainer for the five question modes
// and how each one is scored.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/router"
	"github.com/econplay/econquiz/internal/screen"
	"github.com/econplay/econquiz/internal/ui/layout"
	"github.com/econplay/econquiz/internal/ui/theme"
)

type section struct {
	heading string
	body    string
}

var sections = []section{
	{
		heading: "Diagram practice",
		body: "Describe what the diagram shows and what happens when it shifts.\n" +
			"Scored by key ideas: mention at least half of the expected terms\n" +
			"and the answer counts as correct. Capitalisation never matters.",
	},
	{
		heading: "Calculations",
		body: "Work the numbers and type the result. Currency signs, commas and\n" +
			"percent signs are fine. Anything within 1% of the expected value\n" +
			"is accepted, so don't fret over rounding.",
	},
	{
		heading: "Essay drills",
		body: "Outline your argument in a few sentences. Scored like diagrams:\n" +
			"cover at least half of the expected key ideas. The feedback lists\n" +
			"what you missed even when you pass.",
	},
	{
		heading: "Case studies",
		body: "Read the scenario, then answer each part in your own words. A part\n" +
			"counts when your answer shares at least one meaningful word with\n" +
			"the reference answer.",
	},
	{
		heading: "Flashcards",
		body: "Type the exact term. Spacing and capitalisation are forgiven,\n" +
			"spelling is not.",
	},
}

// HelpScreen is a static page; any dismissing key pops it.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates the help screen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "How Scoring Works"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	headingStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var parts []string
	for _, sec := range sections {
		parts = append(parts, headingStyle.Render(sec.heading)+"\n"+bodyStyle.Render(sec.body))
	}

	footnote := theme.Hint.Render("Every level includes the easier questions below it.")
	content := strings.Join(parts, "\n\n") + "\n\n" + footnote

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
