package grading

import (
	"math"
	"strconv"
	"strings"

	"github.com/econplay/econquiz/internal/bank"
)

// Calculation answers pass within a 1% relative tolerance of the
// expected value. An expected value of zero demands an exact match.
const relTolerance = 0.01

// numericStrategy covers calculation questions.
type numericStrategy struct{}

func (numericStrategy) Grade(q *bank.Question, submitted string) Result {
	v, ok := ParseNumber(submitted)
	if !ok {
		return Result{}
	}
	return Result{Correct: withinTolerance(v, q.Expected)}
}

func withinTolerance(got, expected float64) bool {
	return math.Abs(got-expected) <= math.Abs(expected)*relTolerance
}

// ParseNumber reads a float from free-form user input, tolerating
// thousands separators, common currency marks and a percent sign.
// The second return is false when no number can be read.
func ParseNumber(s string) (float64, bool) {
	s = strings.NewReplacer(",", "", "$", "", "£", "", "€", "", "%", "").Replace(s)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
