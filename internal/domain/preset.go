package domain

import (
	"fmt"
	"strings"
)

// PresetID selects one of the built-in portfolio presets.
type PresetID string

const (
	PresetNone      PresetID = ""
	PresetShortTerm PresetID = "short_term"
	PresetLongTerm  PresetID = "long_term"
)

// ParsePresetID resolves a preset identifier. Hyphens and case are ignored.
func ParsePresetID(s string) (PresetID, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch PresetID(n) {
	case PresetNone, PresetShortTerm, PresetLongTerm:
		return PresetID(n), nil
	}
	return PresetNone, fmt.Errorf("%w: unknown preset %q", ErrInvalidInput, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PresetID) UnmarshalText(text []byte) error {
	id, err := ParsePresetID(string(text))
	if err != nil {
		return err
	}
	*p = id
	return nil
}
