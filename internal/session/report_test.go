package session

import (
	"strings"
	"testing"
	"time"

	"github.com/econplay/econquiz/internal/bank"
)

func TestSummarizeEssay(t *testing.T) {
	s := &Session{
		Mode:  bank.ModeEssay,
		Level: 2,
		Questions: []bank.Question{
			{Mode: bank.ModeEssay, Topic: "Minimum wages", Keywords: []string{"unemployment", "surplus", "supply", "demand"}},
			{Mode: bank.ModeEssay, Topic: "Opportunity cost", Keywords: []string{"scarcity", "choice"}},
		},
		Outcomes: []Outcome{
			{Answer: "a", Correct: true, Matched: []string{"unemployment", "surplus"}, Elapsed: 40 * time.Second},
			{Answer: "b", Correct: true, Matched: []string{"scarcity", "choice"}, Elapsed: 20 * time.Second},
		},
	}

	r := Summarize(s)
	if r.Attempted != 2 || r.CorrectCount != 2 {
		t.Errorf("got %d/%d, want 2/2", r.CorrectCount, r.Attempted)
	}
	if r.TotalTime != time.Minute {
		t.Errorf("total time = %v, want 1m", r.TotalTime)
	}

	// The first answer passed but still missed two keywords, so the
	// report is not all-correct.
	if r.AllCorrect {
		t.Error("missing keywords should suppress the all-correct status")
	}
	if len(r.Suggestions) != 1 {
		t.Fatalf("suggestions = %+v, want exactly 1", r.Suggestions)
	}
	sg := r.Suggestions[0]
	if sg.Topic != "Minimum wages" {
		t.Errorf("suggestion topic = %q", sg.Topic)
	}
	if !strings.Contains(sg.Detail, "supply, demand") {
		t.Errorf("suggestion %q should list the missing keywords in order", sg.Detail)
	}
}

func TestSummarizeAllCorrect(t *testing.T) {
	s := &Session{
		Mode: bank.ModeFlash,
		Questions: []bank.Question{
			{Mode: bank.ModeFlash, Topic: "Prices", Answer: "Inflation"},
		},
		Outcomes: []Outcome{
			{Answer: "inflation", Correct: true, Elapsed: 5 * time.Second},
		},
	}

	r := Summarize(s)
	if !r.AllCorrect {
		t.Error("a clean session should report the all-correct status")
	}
	if len(r.Suggestions) != 0 {
		t.Errorf("suggestions = %+v, want none", r.Suggestions)
	}
}

func TestSummarizeCalculation(t *testing.T) {
	s := &Session{
		Mode: bank.ModeCalculation,
		Questions: []bank.Question{
			{Mode: bank.ModeCalculation, Topic: "GDP deflator", Expected: 112.5},
			{Mode: bank.ModeCalculation, Topic: "Total revenue", Expected: 3000},
			{Mode: bank.ModeCalculation, Topic: "The multiplier", Expected: 200},
		},
		Outcomes: []Outcome{
			{Answer: "112.5", Correct: true},
			{Answer: "about three thousand", Correct: false},
			{Answer: "150", Correct: false},
		},
	}

	r := Summarize(s)
	if r.Attempted != 3 || r.CorrectCount != 1 {
		t.Errorf("got %d/%d, want 1/3", r.CorrectCount, r.Attempted)
	}
	if len(r.Suggestions) != 2 {
		t.Fatalf("suggestions = %+v, want 2", r.Suggestions)
	}

	// Unreadable and out-of-tolerance answers are worded differently.
	if !strings.Contains(r.Suggestions[0].Detail, "could not read") {
		t.Errorf("unparsable answer suggestion = %q", r.Suggestions[0].Detail)
	}
	if !strings.Contains(r.Suggestions[0].Detail, "3000") {
		t.Errorf("suggestion %q should name the expected value", r.Suggestions[0].Detail)
	}
	if !strings.Contains(r.Suggestions[1].Detail, "answered 150") {
		t.Errorf("out-of-tolerance suggestion = %q", r.Suggestions[1].Detail)
	}
}

func TestSummarizeCaseCountsSubAnswers(t *testing.T) {
	s := &Session{
		Mode:  bank.ModeCase,
		Level: 1,
		Questions: []bank.Question{{
			Mode:  bank.ModeCase,
			Topic: "Market entry",
			SubQuestions: []bank.SubQuestion{
				{Prompt: "What happens to profit?", Answer: "profit falls"},
				{Prompt: "Name the structure.", Answer: "monopolistic competition"},
				{Prompt: "Why does entry continue?", Answer: "profit attracts entrants"},
			},
		}},
		Outcomes: []Outcome{{
			Elapsed: 90 * time.Second,
			Subs: []SubOutcome{
				{Answer: "profit falls to zero", Correct: true, Matched: []string{"profit", "falls"}},
				{Answer: "oligopoly", Correct: false},
				{Answer: "new profit", Correct: true, Matched: []string{"profit"}},
			},
		}},
	}

	r := Summarize(s)
	if r.Attempted != 3 {
		t.Errorf("attempted = %d, want 3 (one per sub-answer)", r.Attempted)
	}
	if r.CorrectCount != 2 {
		t.Errorf("correct = %d, want 2 (non-empty match lists)", r.CorrectCount)
	}
	if len(r.Suggestions) != 1 {
		t.Fatalf("suggestions = %+v, want 1", r.Suggestions)
	}
	if !strings.Contains(r.Suggestions[0].Detail, "part 2") {
		t.Errorf("suggestion %q should name the failed part", r.Suggestions[0].Detail)
	}
	if r.TotalTime != 90*time.Second {
		t.Errorf("total time = %v, want 90s", r.TotalTime)
	}
}

func TestSummarizeFlashNamesAnswer(t *testing.T) {
	s := &Session{
		Mode: bank.ModeFlash,
		Questions: []bank.Question{
			{Mode: bank.ModeFlash, Topic: "National accounts", Answer: "GDP"},
		},
		Outcomes: []Outcome{
			{Answer: "GNP", Correct: false},
		},
	}

	r := Summarize(s)
	if len(r.Suggestions) != 1 {
		t.Fatalf("suggestions = %+v, want 1", r.Suggestions)
	}
	if !strings.Contains(r.Suggestions[0].Detail, `"GDP"`) {
		t.Errorf("suggestion %q should reveal the expected answer", r.Suggestions[0].Detail)
	}
}

func TestSummarizeEmptySession(t *testing.T) {
	r := Summarize(&Session{Mode: bank.ModeDiagram, Level: 1})
	if r.Attempted != 0 || r.CorrectCount != 0 {
		t.Errorf("empty session report = %d/%d", r.CorrectCount, r.Attempted)
	}
	if !r.AllCorrect {
		t.Error("an empty session has nothing to revise")
	}
}

func TestSummarizeEndToEnd(t *testing.T) {
	// Drive a real controller through a mixed run and summarize it.
	s := caseSession()
	c, _ := newTestController(s)

	if _, err := c.Submit(""); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitSub("real GDP is 520"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitSub("nothing relevant"); err != nil {
		t.Fatal(err)
	}

	r := c.Report()
	if r.Mode != bank.ModeCase || r.Level != 2 {
		t.Errorf("report identifies %s level %d", r.Mode, r.Level)
	}
	if r.Attempted != 2 || r.CorrectCount != 1 {
		t.Errorf("got %d/%d, want 1/2", r.CorrectCount, r.Attempted)
	}
	if r.TotalTime <= 0 {
		t.Error("report should carry the recorded time")
	}
}

func TestMissingKeywords(t *testing.T) {
	required := []string{"supply", "left", "rise", "equilibrium"}

	cases := []struct {
		name    string
		matched []string
		want    []string
	}{
		{"none matched", nil, required},
		{"some matched", []string{"supply", "rise"}, []string{"left", "equilibrium"}},
		{"all matched", required, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MissingKeywords(required, tc.matched)
			if len(got) != len(tc.want) {
				t.Fatalf("MissingKeywords = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("missing[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}
