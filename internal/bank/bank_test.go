package bank

import "testing"

func TestModeValid(t *testing.T) {
	cases := []struct {
		mode Mode
		want bool
	}{
		{ModeDiagram, true},
		{ModeCalculation, true},
		{ModeEssay, true},
		{ModeCase, true},
		{ModeFlash, true},
		{Mode("trivia"), false},
		{Mode(""), false},
	}
	for _, tc := range cases {
		if got := tc.mode.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.mode, got, tc.want)
		}
	}
}

func TestModesOrderStable(t *testing.T) {
	want := []Mode{ModeDiagram, ModeCalculation, ModeEssay, ModeCase, ModeFlash}
	got := Modes()
	if len(got) != len(want) {
		t.Fatalf("Modes() returned %d modes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Modes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestModeLabel(t *testing.T) {
	for _, m := range Modes() {
		if m.Label() == string(m) {
			t.Errorf("Label(%q) has no display name", m)
		}
	}
	if got := Mode("weird").Label(); got != "weird" {
		t.Errorf("Label falls back to raw mode, got %q", got)
	}
}

func TestBankPoolMissingMode(t *testing.T) {
	b := New("Test course")
	if pool := b.Pool(ModeEssay); pool != nil {
		t.Errorf("Pool on empty bank = %v, want nil", pool)
	}
	if n := b.Count(ModeEssay); n != 0 {
		t.Errorf("Count on empty bank = %d, want 0", n)
	}
}

func TestBankAddStampsMode(t *testing.T) {
	b := New("Test course")
	b.add(ModeFlash, []Question{
		{Level: 1, Topic: "a", Prompt: "p", Answer: "x"},
		{Level: 2, Topic: "b", Prompt: "q", Answer: "y"},
	})
	pool := b.Pool(ModeFlash)
	if len(pool) != 2 {
		t.Fatalf("Pool length = %d, want 2", len(pool))
	}
	for i, q := range pool {
		if q.Mode != ModeFlash {
			t.Errorf("question %d mode = %q, want %q", i, q.Mode, ModeFlash)
		}
	}
}

func TestBankSizeAndMaxLevel(t *testing.T) {
	b := New("Test course")
	if got := b.MaxLevel(); got != 1 {
		t.Errorf("MaxLevel on empty bank = %d, want 1", got)
	}
	b.add(ModeFlash, []Question{{Level: 1}, {Level: 3}})
	b.add(ModeEssay, []Question{{Level: 2}})
	if got := b.Size(); got != 3 {
		t.Errorf("Size = %d, want 3", got)
	}
	if got := b.MaxLevel(); got != 3 {
		t.Errorf("MaxLevel = %d, want 3", got)
	}
}

func TestNilBankIsEmpty(t *testing.T) {
	var b *Bank
	if b.Pool(ModeFlash) != nil || b.Size() != 0 || b.MaxLevel() != 1 {
		t.Error("nil bank should behave as empty")
	}
}
