package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/store"
	"github.com/econplay/econquiz/internal/ui/components"
	"github.com/econplay/econquiz/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const homeTitleFull = `███████╗ ██████╗ ██████╗ ███╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗
██╔════╝██╔════╝██╔═══██╗████╗  ██║██╔═══██╗██║   ██║██║╚══███╔╝
█████╗  ██║     ██║   ██║██╔██╗ ██║██║   ██║██║   ██║██║  ███╔╝
██╔══╝  ██║     ██║   ██║██║╚██╗██║██║▄▄ ██║██║   ██║██║ ███╔╝
███████╗╚██████╗╚██████╔╝██║ ╚████║╚██████╔╝╚██████╔╝██║███████╗
╚══════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝ ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const homeTitleCompact = "E · C · O · N · Q · U · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := homeTitleFull
	if compact || cw < 64 {
		art = homeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the bank summary and last saved result in a
// bordered box matching content width.
func renderStatsBar(b *bank.Bank, last *store.ProgressRecord, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	lastStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			countStyle.Render(fmt.Sprintf("Q%d", b.Size())),
			levelStyle.Render(fmt.Sprintf("L%d", b.MaxLevel())),
			lastResultText(last, true, lastStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("%d QUESTIONS", b.Size())),
			levelStyle.Render(fmt.Sprintf("LEVELS 1-%d", b.MaxLevel())),
			lastResultText(last, false, lastStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func lastResultText(last *store.ProgressRecord, compact bool, active, dim lipgloss.Style) string {
	if last == nil || last.Total() == 0 {
		if compact {
			return dim.Render("—")
		}
		return dim.Render("NO QUIZZES YET")
	}
	if compact {
		return active.Render(fmt.Sprintf("%d/%d", last.Correct(), last.Total()))
	}
	label := strings.ToUpper(bank.Mode(last.Mode).Label())
	return active.Render(fmt.Sprintf("LAST: %s %d/%d", label, last.Correct(), last.Total()))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenuButtons renders each menu item as a fixed-width button.
func renderMenuButtons(items []string, selected int, disabled map[int]bool, cw int) string {
	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
			continue
		}
		buttons = append(buttons, components.OptionButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
