package quiz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/bank"
	sess "github.com/econplay/econquiz/internal/session"
	"github.com/econplay/econquiz/internal/ui/components"
	"github.com/econplay/econquiz/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch {
	case q.finished:
		return ""
	case q.confirmQuit:
		return renderQuitConfirm(width)
	case q.showing != nil:
		return q.renderFeedback(width)
	}
	return q.renderQuestion(width)
}

// renderQuestion renders the active question with the status line on top.
func (q *QuizScreen) renderQuestion(width int) string {
	cur, idx, total, ok := q.ctrl.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(q.renderStatusLine(idx, total, width))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(idx)/float64(total), false, min(width-8, 60))
	b.WriteString(centered(bar.View(), width))
	b.WriteString("\n\n")

	if sq, subIdx, subTotal, inSub := q.ctrl.CurrentSub(); inSub {
		b.WriteString(q.renderCasePart(cur, sq, subIdx, subTotal, width))
	} else {
		switch cur.Mode {
		case bank.ModeDiagram:
			b.WriteString(q.renderDiagram(cur, width))
		case bank.ModeCalculation:
			b.WriteString(q.renderCalculation(cur, width))
		case bank.ModeEssay:
			b.WriteString(q.renderEssay(cur, width))
		case bank.ModeCase:
			b.WriteString(q.renderCaseIntro(cur, width))
		case bank.ModeFlash:
			b.WriteString(q.renderFlash(cur, width))
		}
	}

	return b.String()
}

// renderStatusLine shows topic, position, running score and elapsed time.
func (q *QuizScreen) renderStatusLine(idx, total, width int) string {
	cur, _, _, _ := q.ctrl.Current()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + cur.Topic)

	correct := 0
	for _, f := range q.ctrl.Session().CorrectnessFlags() {
		if f {
			correct++
		}
	}

	mins := int(q.elapsed.Minutes())
	secs := int(q.elapsed.Seconds()) % 60

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %d:%02d",
			idx+1, total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			correct,
			mins, secs,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (q *QuizScreen) renderDiagram(cur *bank.Question, width int) string {
	var b strings.Builder

	if cur.Context != "" {
		b.WriteString(dimParagraph(cur.Context, width))
		b.WriteString("\n\n")
	}

	if cur.Diagram != "" {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Secondary).
			Padding(0, 2).
			Render(cur.Diagram)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
		b.WriteString("\n\n")
	}

	b.WriteString(promptBlock(cur.Prompt, width))
	b.WriteString("\n\n")
	b.WriteString(q.answerLine(width))
	return b.String()
}

func (q *QuizScreen) renderCalculation(cur *bank.Question, width int) string {
	var b strings.Builder

	b.WriteString(promptBlock(cur.Prompt, width))
	b.WriteString("\n\n")

	if len(cur.Inputs) > 0 {
		keys := make([]string, 0, len(cur.Inputs))
		for k := range cur.Inputs {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var rows []string
		for _, k := range keys {
			rows = append(rows, fmt.Sprintf("%s  %s",
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(k+":"),
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(formatNumber(cur.Inputs[k])),
			))
		}
		given := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2).
			Render(strings.Join(rows, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, given))
		b.WriteString("\n\n")
	}

	b.WriteString(q.answerLine(width))
	b.WriteString("\n")
	b.WriteString(centeredHint("answers within 1% are accepted", width))
	return b.String()
}

func (q *QuizScreen) renderEssay(cur *bank.Question, width int) string {
	var b strings.Builder

	if cur.Context != "" {
		b.WriteString(dimParagraph(cur.Context, width))
		b.WriteString("\n\n")
	}

	b.WriteString(promptBlock(cur.Prompt, width))
	b.WriteString("\n\n")
	b.WriteString(q.answerLine(width))
	b.WriteString("\n")
	b.WriteString(centeredHint("a few sentences are enough", width))
	return b.String()
}

func (q *QuizScreen) renderCaseIntro(cur *bank.Question, width int) string {
	var b strings.Builder

	b.WriteString(promptBlock(cur.Prompt, width))
	b.WriteString("\n\n")
	b.WriteString(dimParagraph(cur.Background, width))
	b.WriteString("\n\n")

	if len(cur.Columns) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTable(cur.Columns, cur.Table)))
		b.WriteString("\n\n")
	}

	parts := "part"
	if len(cur.SubQuestions) != 1 {
		parts = "parts"
	}
	b.WriteString(centeredHint(fmt.Sprintf("%d %s to answer — press Enter to begin", len(cur.SubQuestions), parts), width))
	return b.String()
}

func (q *QuizScreen) renderCasePart(cur *bank.Question, sq bank.SubQuestion, subIdx, subTotal, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Part %d of %d", subIdx+1, subTotal)))
	b.WriteString("\n\n")

	if len(cur.Columns) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTable(cur.Columns, cur.Table)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptBlock(sq.Prompt, width))
	b.WriteString("\n\n")
	b.WriteString(q.answerLine(width))
	return b.String()
}

func (q *QuizScreen) renderFlash(cur *bank.Question, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Define:"))
	b.WriteString("\n\n")
	b.WriteString(promptBlock(cur.Prompt, width))
	b.WriteString("\n\n")
	b.WriteString(q.answerLine(width))
	return b.String()
}

// renderFeedback renders the graded answer panel.
func (q *QuizScreen) renderFeedback(width int) string {
	fb := q.showing

	var b strings.Builder
	b.WriteString("\n\n")

	if fb.result.Correct {
		b.WriteString(centered(theme.Correct.Render("Correct!"), width))
	} else {
		b.WriteString(centered(theme.Incorrect.Render("Not quite"), width))
	}
	b.WriteString("\n\n")

	switch {
	case fb.sub != nil:
		if len(fb.result.Matched) > 0 {
			b.WriteString(centered(
				lipgloss.NewStyle().Foreground(theme.Text).Render("Shared ground: "+strings.Join(fb.result.Matched, ", ")), width))
			b.WriteString("\n")
		} else {
			b.WriteString(centered(
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("Reference answer: "+fb.sub.Answer), width))
			b.WriteString("\n")
		}

	case fb.question.Mode == bank.ModeDiagram || fb.question.Mode == bank.ModeEssay:
		if len(fb.result.Matched) > 0 {
			b.WriteString(centered(
				lipgloss.NewStyle().Foreground(theme.Text).Render("You covered: "+strings.Join(fb.result.Matched, ", ")), width))
			b.WriteString("\n")
		}
		if missing := sess.MissingKeywords(fb.question.Keywords, fb.result.Matched); len(missing) > 0 {
			b.WriteString(centered(
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("Worth mentioning: "+strings.Join(missing, ", ")), width))
			b.WriteString("\n")
		}

	case fb.question.Mode == bank.ModeCalculation:
		if !fb.result.Correct {
			b.WriteString(centered(
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					fmt.Sprintf("Expected: %s (within 1%%)", formatNumber(fb.question.Expected))), width))
			b.WriteString("\n")
		}

	case fb.question.Mode == bank.ModeFlash:
		if !fb.result.Correct {
			b.WriteString(centered(
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					fmt.Sprintf("The answer: %q", fb.question.Answer)), width))
			b.WriteString("\n")
		}
	}

	if fb.sub == nil && fb.question.Explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(fb.question.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centeredHint("press any key to continue", width))
	return b.String()
}

// renderQuitConfirm renders the early-exit dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End quiz early?"), width))
	b.WriteString("\n")
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers so far will be scored; unanswered questions won't count."), width))
	b.WriteString("\n\n")

	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Yes, show my score"), width))
	b.WriteString("\n")
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going"), width))

	return b.String()
}

// renderTable lays out a case study's data table with aligned columns.
func renderTable(columns []string, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	pad := func(s string, w int) string {
		if d := w - lipgloss.Width(s); d > 0 {
			return s + strings.Repeat(" ", d)
		}
		return s
	}

	var lines []string
	var header []string
	for i, c := range columns {
		header = append(header, pad(c, widths[i]))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(strings.Join(header, "   ")))

	for _, row := range rows {
		var cells []string
		for i, cell := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			cells = append(cells, pad(cell, w))
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(cells, "   ")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (q *QuizScreen) answerLine(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + q.input.View())
}

func promptBlock(prompt string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt)
}

func dimParagraph(text string, width int) string {
	para := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.TextDim).
		Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, para)
}

func centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func centeredHint(text string, width int) string {
	return centered(theme.Hint.Render(text), width)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
