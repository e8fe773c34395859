package timespec

import (
	"fmt"
	"time"

	"github.com/dyluth/ut/internal/resolver"
)

// Unit is a calendar or clock unit, ordered from coarsest to finest.
type Unit int

const (
	Year Unit = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
)

var unitCandidates = []resolver.Candidate{
	{Name: "year"},
	{Name: "month"},
	{Name: "day"},
	{Name: "hour"},
	{Name: "minute"},
	{Name: "second"},
	{Name: "millisecond", Aliases: []string{"ms"}},
}

func (u Unit) String() string {
	if u < Year || u > Millisecond {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitCandidates[u].Name
}

// UnitNames returns every unit name, coarsest first.
func UnitNames() []string {
	return resolver.Names(unitCandidates)
}

// ParseUnit resolves a unit from its name, a unique prefix of it, or "ms".
func ParseUnit(s string) (Unit, error) {
	name, err := resolver.Resolve("unit", s, unitCandidates)
	if err != nil {
		return 0, &ParseError{Kind: ErrInvalidUnit, Input: s, Err: err}
	}
	return Unit(indexOf(unitCandidates, name)), nil
}

// Truncate zeroes every field of t finer than u, in t's own location.
func (u Unit) Truncate(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, _ := t.Clock()
	loc := t.Location()

	switch u {
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi, 0, 0, loc)
	case Second:
		// offsets are whole seconds, so absolute truncation is exact
		return t.Truncate(time.Second)
	case Millisecond:
		return t.Truncate(time.Millisecond)
	}
	return t
}

func indexOf(candidates []resolver.Candidate, name string) int {
	for i, c := range candidates {
		if c.Name == name {
			return i
		}
	}
	return -1
}
