package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/ui/theme"
)

// Picker is a single-choice option list. Unlike Menu it carries no
// actions; the parent reads Selected when the user confirms.
type Picker struct {
	Prompt   string
	Options  []string
	Hints    []string // optional per-option hint, same length as Options
	Selected int
}

// NewPicker creates a picker over the given options.
func NewPicker(prompt string, options []string) Picker {
	return Picker{
		Prompt:  prompt,
		Options: options,
	}
}

// Update handles keyboard navigation. Digit keys jump straight to an
// option.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(p.Options) {
				p.Selected = i
			}
		}
	}

	return p, nil
}

// View renders the picker.
func (p Picker) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(p.Prompt) + "\n\n"

	for i, opt := range p.Options {
		line := fmt.Sprintf("  %d)  %s", i+1, opt)
		if i == p.Selected {
			line = fmt.Sprintf("▸ %d)  %s", i+1, opt)
			s += theme.Selected.Render(line)
		} else {
			s += theme.Unselected.Render(line)
		}
		if i < len(p.Hints) && p.Hints[i] != "" {
			s += "  " + theme.Hint.Render(p.Hints[i])
		}
		s += "\n"
	}

	return s
}

// Choice returns the currently selected option text.
func (p Picker) Choice() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}
