// Package bank defines the question bank: immutable question records
// grouped by mode, loaded from YAML files and validated against an
// embedded JSON schema. A bank is read-only once loaded.
package bank

// Mode selects the question shape and the grading rule applied to it.
type Mode string

const (
	ModeDiagram     Mode = "diagram"
	ModeCalculation Mode = "calculation"
	ModeEssay       Mode = "essay"
	ModeCase        Mode = "case"
	ModeFlash       Mode = "flash"
)

// Modes returns all modes in stable menu order.
func Modes() []Mode {
	return []Mode{ModeDiagram, ModeCalculation, ModeEssay, ModeCase, ModeFlash}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeDiagram, ModeCalculation, ModeEssay, ModeCase, ModeFlash:
		return true
	}
	return false
}

// Label returns the human-facing name used in menus and reports.
func (m Mode) Label() string {
	switch m {
	case ModeDiagram:
		return "Diagram practice"
	case ModeCalculation:
		return "Calculations"
	case ModeEssay:
		return "Essay drills"
	case ModeCase:
		return "Case studies"
	case ModeFlash:
		return "Flashcards"
	}
	return string(m)
}

// SubQuestion is one part of a case-study question. The reference answer
// is the token source for overlap grading, never shown verbatim as the
// only acceptable answer.
type SubQuestion struct {
	Prompt string `yaml:"prompt"`
	Answer string `yaml:"answer"`
}

// Question is a single bank entry. Mode is the discriminant; the
// remaining fields are populated per mode and zero elsewhere:
//
//	diagram:     Context, Prompt, Keywords, Diagram, Explanation
//	essay:       Context, Prompt, Keywords, Explanation
//	calculation: Prompt, Inputs, Expected, Explanation
//	case:        Context, Background, Columns/Table, SubQuestions
//	flash:       Prompt, Answer
//
// Questions are value types; the selector copies slices of them freely
// and nothing mutates a question after load.
type Question struct {
	Mode  Mode   `yaml:"-"`
	Level int    `yaml:"level"`
	Topic string `yaml:"topic"`

	Prompt      string `yaml:"prompt"`
	Context     string `yaml:"context,omitempty"`
	Explanation string `yaml:"explanation,omitempty"`

	// Keyword modes (diagram, essay).
	Keywords []string `yaml:"keywords,omitempty"`
	Diagram  string   `yaml:"diagram,omitempty"`

	// Calculation.
	Inputs   map[string]float64 `yaml:"inputs,omitempty"`
	Expected float64            `yaml:"expected,omitempty"`

	// Flash.
	Answer string `yaml:"answer,omitempty"`

	// Case study.
	Background   string        `yaml:"background,omitempty"`
	Columns      []string      `yaml:"columns,omitempty"`
	Table        [][]string    `yaml:"table,omitempty"`
	SubQuestions []SubQuestion `yaml:"subquestions,omitempty"`
}

// Bank groups questions by mode. Pool order within a mode is the file
// order banks were loaded in; sessions shuffle a copy, never the bank.
type Bank struct {
	Course    string
	questions map[Mode][]Question
}

// New returns an empty bank with the given course title.
func New(course string) *Bank {
	return &Bank{Course: course, questions: make(map[Mode][]Question)}
}

// Pool returns the questions for mode, or nil when the mode is absent.
// An absent mode is an empty pool, not an error.
func (b *Bank) Pool(mode Mode) []Question {
	if b == nil {
		return nil
	}
	return b.questions[mode]
}

// Count returns the number of questions stored for mode.
func (b *Bank) Count(mode Mode) int {
	return len(b.Pool(mode))
}

// Size returns the total number of questions across all modes.
func (b *Bank) Size() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, qs := range b.questions {
		n += len(qs)
	}
	return n
}

// MaxLevel returns the highest difficulty level present anywhere in the
// bank, or 1 for an empty bank. The setup screen offers levels 1..MaxLevel.
func (b *Bank) MaxLevel() int {
	max := 1
	if b == nil {
		return max
	}
	for _, qs := range b.questions {
		for _, q := range qs {
			if q.Level > max {
				max = q.Level
			}
		}
	}
	return max
}

// add appends questions under mode, stamping the discriminant.
func (b *Bank) add(mode Mode, qs []Question) {
	for _, q := range qs {
		q.Mode = mode
		b.questions[mode] = append(b.questions[mode], q)
	}
}
