package timespec

import (
	"fmt"
	"time"

	"github.com/dyluth/ut/internal/resolver"
)

// Preset names a day relative to today.
type Preset int

const (
	Today Preset = iota
	Tomorrow
	Yesterday
)

var presetCandidates = []resolver.Candidate{
	{Name: "today"},
	{Name: "tomorrow"},
	{Name: "yesterday"},
}

func (p Preset) String() string {
	if p < Today || p > Yesterday {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetCandidates[p].Name
}

// PresetNames returns every preset name.
func PresetNames() []string {
	return resolver.Names(presetCandidates)
}

// ParsePreset resolves a preset from its name or a unique prefix of it.
func ParsePreset(s string) (Preset, error) {
	name, err := resolver.Resolve("preset", s, presetCandidates)
	if err != nil {
		return 0, &ParseError{Kind: ErrInvalidPreset, Input: s, Err: err}
	}
	return Preset(indexOf(presetCandidates, name)), nil
}

// Date returns midnight of the preset's day in now's location.
func (p Preset) Date(now time.Time) time.Time {
	y, m, d := now.Date()
	var shift int
	switch p {
	case Tomorrow:
		shift = 1
	case Yesterday:
		shift = -1
	}
	return time.Date(y, m, d+shift, 0, 0, 0, 0, now.Location())
}
