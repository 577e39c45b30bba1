package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/grading"
)

// Report aggregates a session for the summary screen. For case-study
// sessions Attempted and CorrectCount are on the sub-question basis, so
// the two always share a denominator.
type Report struct {
	Mode         bank.Mode
	Level        int
	Attempted    int
	CorrectCount int
	TotalTime    time.Duration
	AllCorrect   bool
	Suggestions  []Suggestion
}

// Suggestion points at one thing worth revising.
type Suggestion struct {
	Topic  string
	Detail string
}

// Summarize aggregates a session's outcomes into its report.
// Suggestions are generated per mode: missing keywords for diagram and
// essay questions (even when the answer passed), wrong or unreadable
// numbers for calculations, sub-answers with no reference overlap for
// case studies, and the expected answer for missed flashcards. A report
// with no suggestions carries the distinct AllCorrect status.
func Summarize(s *Session) Report {
	r := Report{Mode: s.Mode, Level: s.Level}

	for i := range s.Outcomes {
		o := &s.Outcomes[i]
		q := &s.Questions[i]
		r.TotalTime += o.Elapsed

		switch q.Mode {
		case bank.ModeCase:
			for j := range o.Subs {
				r.Attempted++
				if len(o.Subs[j].Matched) > 0 {
					r.CorrectCount++
					continue
				}
				r.Suggestions = append(r.Suggestions, Suggestion{
					Topic:  q.Topic,
					Detail: fmt.Sprintf("part %d (%s) had no overlap with the reference answer", j+1, snippet(q.SubQuestions[j].Prompt, 40)),
				})
			}

		case bank.ModeDiagram, bank.ModeEssay:
			r.Attempted++
			if o.Correct {
				r.CorrectCount++
			}
			if missing := MissingKeywords(q.Keywords, o.Matched); len(missing) > 0 {
				r.Suggestions = append(r.Suggestions, Suggestion{
					Topic:  q.Topic,
					Detail: "missing key ideas: " + strings.Join(missing, ", "),
				})
			}

		case bank.ModeCalculation:
			r.Attempted++
			if o.Correct {
				r.CorrectCount++
				break
			}
			expected := formatNumber(q.Expected)
			detail := fmt.Sprintf("answered %s; expected %s (within 1%%)", strings.TrimSpace(o.Answer), expected)
			if _, ok := grading.ParseNumber(o.Answer); !ok {
				detail = fmt.Sprintf("could not read %q as a number; expected %s", o.Answer, expected)
			}
			r.Suggestions = append(r.Suggestions, Suggestion{Topic: q.Topic, Detail: detail})

		case bank.ModeFlash:
			r.Attempted++
			if o.Correct {
				r.CorrectCount++
				break
			}
			r.Suggestions = append(r.Suggestions, Suggestion{
				Topic:  q.Topic,
				Detail: fmt.Sprintf("the answer was %q", q.Answer),
			})

		default:
			r.Attempted++
			if o.Correct {
				r.CorrectCount++
			}
		}
	}

	r.AllCorrect = len(r.Suggestions) == 0
	return r
}

// MissingKeywords returns the required keywords absent from matched, in
// the required list's original order.
func MissingKeywords(required, matched []string) []string {
	have := make(map[string]struct{}, len(matched))
	for _, m := range matched {
		have[m] = struct{}{}
	}
	var missing []string
	for _, kw := range required {
		if _, ok := have[kw]; !ok {
			missing = append(missing, kw)
		}
	}
	return missing
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// snippet shortens s to at most max runes for one-line display.
func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max])) + "..."
}
