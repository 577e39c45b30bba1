package grading

import (
	"strings"
	"unicode"

	"github.com/econplay/econquiz/internal/bank"
)

// keywordStrategy covers diagram and essay questions: each required
// keyword is tested for case-insensitive substring containment, and the
// answer passes when at least half the keywords (rounded up) appear.
type keywordStrategy struct{}

func (keywordStrategy) Grade(q *bank.Question, submitted string) Result {
	text := strings.ToLower(strings.TrimSpace(submitted))
	if text == "" {
		return Result{}
	}
	var matched []string
	for _, kw := range q.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	need := (len(q.Keywords) + 1) / 2
	return Result{Correct: len(matched) >= need, Matched: matched}
}

// exactStrategy covers flashcards: trimmed, case-folded equality.
type exactStrategy struct{}

func (exactStrategy) Grade(q *bank.Question, submitted string) Result {
	sub := strings.TrimSpace(submitted)
	if sub == "" {
		return Result{}
	}
	return Result{Correct: strings.EqualFold(sub, strings.TrimSpace(q.Answer))}
}

// caseStrategy covers the top-level case-study prompt, which carries no
// expected answer of its own. Sub-questions go through GradeSub.
type caseStrategy struct{}

func (caseStrategy) Grade(*bank.Question, string) Result { return Result{} }

// GradeSub scores one case-study sub-answer by token overlap: a single
// shared word with the reference answer passes, a looser bar than the
// keyword modes apply.
func GradeSub(sq bank.SubQuestion, submitted string) Result {
	subTokens := tokenize(submitted)
	if len(subTokens) == 0 {
		return Result{}
	}
	have := make(map[string]struct{}, len(subTokens))
	for _, tok := range subTokens {
		have[tok] = struct{}{}
	}
	var matched []string
	seen := make(map[string]struct{})
	for _, tok := range tokenize(sq.Answer) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := have[tok]; ok {
			matched = append(matched, tok)
		}
	}
	return Result{Correct: len(matched) > 0, Matched: matched}
}

// tokenize lower-cases s and splits it on runs of non-word characters.
// Word characters are letters, digits and underscore.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
