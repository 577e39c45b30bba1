package bank

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultBankFS embed.FS

// ErrInvalidBank reports a bank file that failed schema validation or
// could not be decoded.
type ErrInvalidBank struct {
	Path string
	Err  error
}

func (e *ErrInvalidBank) Error() string {
	return fmt.Sprintf("invalid bank file %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidBank) Unwrap() error { return e.Err }

// bankFile is the on-disk YAML shape of one bank file.
type bankFile struct {
	Course string                `yaml:"course"`
	Modes  map[string][]Question `yaml:"modes"`
}

// Default returns the bank embedded in the binary. It always contains
// every mode, so the app is playable with no external files.
func Default() (*Bank, error) {
	entries, err := defaultBankFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded bank: %w", err)
	}
	b := New("")
	for _, e := range entries {
		data, err := defaultBankFS.ReadFile("data/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read embedded bank %s: %w", e.Name(), err)
		}
		if err := b.mergeData(data); err != nil {
			return nil, fmt.Errorf("embedded bank %s: %w", e.Name(), err)
		}
	}
	return b, nil
}

// LoadFile loads a single bank file.
func LoadFile(path string) (*Bank, error) {
	b := New("")
	if err := b.MergeFile(path); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadDir merges every *.yaml and *.yml file under dir, in name order,
// into one bank. An empty directory yields an empty bank.
func LoadDir(dir string) (*Bank, error) {
	b := New("")
	if err := b.MergeDir(dir); err != nil {
		return nil, err
	}
	return b, nil
}

// MergeDir merges every bank file under dir into b.
func (b *Bank) MergeDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read bank dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := b.MergeFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// MergeFile validates and merges one bank file into b. Questions append
// after any already loaded for the same mode; the first file to name a
// course title wins.
func (b *Bank) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bank file: %w", err)
	}
	if err := b.mergeData(data); err != nil {
		return &ErrInvalidBank{Path: path, Err: err}
	}
	return nil
}

func (b *Bank) mergeData(data []byte) error {
	if err := Validate(data); err != nil {
		return err
	}
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if b.Course == "" {
		b.Course = f.Course
	}
	// Stable mode order keeps cross-file appends deterministic.
	for _, mode := range Modes() {
		qs, ok := f.Modes[string(mode)]
		if !ok {
			continue
		}
		b.add(mode, qs)
	}
	return nil
}
