package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/kira-suspicion/internal/engine"
)

// LoadTuning reads YAML overrides from path on top of engine.DefaultTuning.
// An empty path returns the defaults.
func LoadTuning(path string) (engine.Tuning, error) {
	if path == "" {
		return engine.DefaultTuning(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return engine.Tuning{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	t, err := DecodeTuning(f)
	if err != nil {
		return engine.Tuning{}, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return t, nil
}

// DecodeTuning decodes YAML overrides from r. Fields left out keep their
// default; an entry under deltas replaces that label's whole delta.
func DecodeTuning(r io.Reader) (engine.Tuning, error) {
	t := engine.DefaultTuning()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return engine.Tuning{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return engine.Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}
