package grading

import (
	"strconv"
	"testing"

	"github.com/econplay/econquiz/internal/bank"
)

func essayQuestion(keywords ...string) *bank.Question {
	return &bank.Question{
		Mode:     bank.ModeEssay,
		Level:    1,
		Topic:    "Opportunity cost",
		Prompt:   "Explain opportunity cost.",
		Keywords: keywords,
	}
}

func TestKeywordGrading(t *testing.T) {
	g := New()
	q := essayQuestion("opportunity cost", "next best", "scarcity", "choice")

	cases := []struct {
		name        string
		submitted   string
		wantCorrect bool
		wantMatched []string
	}{
		{
			name:        "two of four keywords passes",
			submitted:   "The opportunity cost is the next best alternative.",
			wantCorrect: true,
			wantMatched: []string{"opportunity cost", "next best"},
		},
		{
			name:        "one of four keywords fails",
			submitted:   "Something about scarcity only.",
			wantCorrect: false,
			wantMatched: []string{"scarcity"},
		},
		{
			name:        "matching is case-insensitive",
			submitted:   "SCARCITY forces CHOICE",
			wantCorrect: true,
			wantMatched: []string{"scarcity", "choice"},
		},
		{
			name:        "empty submission fails with no matches",
			submitted:   "   ",
			wantCorrect: false,
		},
		{
			name:        "matches keep keyword order",
			submitted:   "choice, scarcity, next best, opportunity cost",
			wantCorrect: true,
			wantMatched: []string{"opportunity cost", "next best", "scarcity", "choice"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := g.Grade(q, tc.submitted)
			if res.Correct != tc.wantCorrect {
				t.Errorf("Correct = %v, want %v", res.Correct, tc.wantCorrect)
			}
			if len(res.Matched) != len(tc.wantMatched) {
				t.Fatalf("Matched = %v, want %v", res.Matched, tc.wantMatched)
			}
			for i := range tc.wantMatched {
				if res.Matched[i] != tc.wantMatched[i] {
					t.Errorf("Matched[%d] = %q, want %q", i, res.Matched[i], tc.wantMatched[i])
				}
			}
		})
	}
}

func TestKeywordGradingOddCountRoundsUp(t *testing.T) {
	g := New()
	q := essayQuestion("supply", "demand", "price")

	// ceil(3/2) = 2: one match fails, two pass.
	if res := g.Grade(q, "only supply here"); res.Correct {
		t.Error("one of three keywords should fail")
	}
	if res := g.Grade(q, "supply and demand"); !res.Correct {
		t.Error("two of three keywords should pass")
	}
}

func TestKeywordGradingMonotonic(t *testing.T) {
	g := New()
	q := essayQuestion("supply", "demand", "price", "equilibrium")

	text := "demand shifts right"
	base := g.Grade(q, text)
	for _, extra := range []string{"supply", "price", "equilibrium"} {
		text += " " + extra
		res := g.Grade(q, text)
		if len(res.Matched) < len(base.Matched) {
			t.Fatalf("adding %q shrank matches from %v to %v", extra, base.Matched, res.Matched)
		}
		if base.Correct && !res.Correct {
			t.Fatalf("adding %q flipped a correct answer", extra)
		}
		base = res
	}
}

func TestNumericGrading(t *testing.T) {
	g := New()
	q := &bank.Question{Mode: bank.ModeCalculation, Expected: 100}

	cases := []struct {
		submitted string
		want      bool
	}{
		{"100", true},
		{"101", true}, // exactly on the 1% band
		{"99", true},
		{"102", false}, // just outside
		{"98.9", false},
		{" 100.5 ", true},
		{"1,00", true}, // separators stripped before parsing
		{"$100", true},
		{"not a number", false},
		{"", false},
		{"12three", false},
	}

	for _, tc := range cases {
		if got := g.Grade(q, tc.submitted).Correct; got != tc.want {
			t.Errorf("Grade(100, %q) = %v, want %v", tc.submitted, got, tc.want)
		}
	}
}

func TestNumericGradingZeroExpectsExact(t *testing.T) {
	g := New()
	q := &bank.Question{Mode: bank.ModeCalculation, Expected: 0}

	if !g.Grade(q, "0").Correct {
		t.Error("exact zero should pass")
	}
	if g.Grade(q, "0.001").Correct {
		t.Error("zero expected leaves no tolerance")
	}
}

func TestNumericSelfMatch(t *testing.T) {
	g := New()
	for _, expected := range []float64{0.8, 3000, 112.5, 8, 200, -42.5} {
		q := &bank.Question{Mode: bank.ModeCalculation, Expected: expected}
		text := strconv.FormatFloat(expected, 'f', -1, 64)
		if !g.Grade(q, text).Correct {
			t.Errorf("self-match failed for %s", text)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"  -3.5 ", -3.5, true},
		{"1,250", 1250, true},
		{"$99.99", 99.99, true},
		{"8%", 8, true},
		{"£1,000", 1000, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFlashGrading(t *testing.T) {
	g := New()
	q := &bank.Question{Mode: bank.ModeFlash, Answer: "Demand"}

	cases := []struct {
		submitted string
		want      bool
	}{
		{"Demand", true},
		{" demand ", true},
		{"DEMAND", true},
		{"demands", false},
		{"supply", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := g.Grade(q, tc.submitted).Correct; got != tc.want {
			t.Errorf("Grade(flash, %q) = %v, want %v", tc.submitted, got, tc.want)
		}
	}
}

func TestCaseTopLevelNeverGrades(t *testing.T) {
	g := New()
	q := &bank.Question{Mode: bank.ModeCase, Background: "b"}

	res := g.Grade(q, "anything at all")
	if res.Correct || res.Matched != nil {
		t.Errorf("top-level case grade = %+v, want empty", res)
	}
}

func TestUnknownModeGradesIncorrect(t *testing.T) {
	g := New()
	q := &bank.Question{Mode: bank.Mode("trivia")}
	if res := g.Grade(q, "x"); res.Correct {
		t.Error("unknown mode must not grade correct")
	}
}

func TestGradeSub(t *testing.T) {
	sq := bank.SubQuestion{
		Prompt: "Which market structure best describes this market?",
		Answer: "Monopolistic competition with many sellers",
	}

	cases := []struct {
		name        string
		submitted   string
		wantCorrect bool
		wantMatched []string
	}{
		{
			name:        "single shared token passes",
			submitted:   "probably some kind of competition",
			wantCorrect: true,
			wantMatched: []string{"competition"},
		},
		{
			name:        "case and punctuation ignored",
			submitted:   "MONOPOLISTIC-COMPETITION!",
			wantCorrect: true,
			wantMatched: []string{"monopolistic", "competition"},
		},
		{
			name:        "no overlap fails",
			submitted:   "oligopoly",
			wantCorrect: false,
		},
		{
			name:        "empty submission fails",
			submitted:   "",
			wantCorrect: false,
		},
		{
			name:        "punctuation-only submission fails",
			submitted:   "?!, --",
			wantCorrect: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := GradeSub(sq, tc.submitted)
			if res.Correct != tc.wantCorrect {
				t.Errorf("Correct = %v, want %v", res.Correct, tc.wantCorrect)
			}
			if len(res.Matched) != len(tc.wantMatched) {
				t.Fatalf("Matched = %v, want %v", res.Matched, tc.wantMatched)
			}
			for i := range tc.wantMatched {
				if res.Matched[i] != tc.wantMatched[i] {
					t.Errorf("Matched[%d] = %q, want %q", i, res.Matched[i], tc.wantMatched[i])
				}
			}
		})
	}
}

func TestGradeSubSelfOverlap(t *testing.T) {
	sq := bank.SubQuestion{Answer: "Inflation raised prices faster than output grew"}
	res := GradeSub(sq, sq.Answer)
	if !res.Correct {
		t.Fatal("reference answer must match itself")
	}
	if len(res.Matched) != 7 {
		t.Errorf("matched %d tokens, want all 7: %v", len(res.Matched), res.Matched)
	}
}

func TestGradeSubDedupesReferenceTokens(t *testing.T) {
	sq := bank.SubQuestion{Answer: "supply supply supply demand"}
	res := GradeSub(sq, "the supply side")
	if len(res.Matched) != 1 || res.Matched[0] != "supply" {
		t.Errorf("Matched = %v, want [supply]", res.Matched)
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Real GDP fell, slightly.", []string{"real", "gdp", "fell", "slightly"}},
		{"price-elasticity of demand", []string{"price", "elasticity", "of", "demand"}},
		{"snake_case stays", []string{"snake_case", "stays"}},
		{"", nil},
		{"?!", nil},
	}
	for _, tc := range cases {
		got := tokenize(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("tokenize(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}
