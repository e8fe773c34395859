package timespec

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var offsetPattern = regexp.MustCompile(`^([-+])?(?:(\d{2})(\d{2})|(\d{1,2})(?::(\d{1,2}))?)$`)

type zoneKind int

const (
	zoneLocal zoneKind = iota
	zoneUTC
	zoneFixed
)

// Zone is the timezone results are computed and displayed in.
type Zone struct {
	kind   zoneKind
	offset int // seconds east of UTC, fixed zones only
}

var (
	Local = Zone{kind: zoneLocal}
	UTC   = Zone{kind: zoneUTC}
)

// FixedZone returns a zone seconds east of UTC.
func FixedZone(seconds int) Zone {
	return Zone{kind: zoneFixed, offset: seconds}
}

// Location returns the zone as a *time.Location.
func (z Zone) Location() *time.Location {
	switch z.kind {
	case zoneUTC:
		return time.UTC
	case zoneFixed:
		return time.FixedZone(formatOffset(z.offset), z.offset)
	default:
		return time.Local
	}
}

func (z Zone) String() string {
	switch z.kind {
	case zoneUTC:
		return "UTC"
	case zoneFixed:
		return formatOffset(z.offset)
	default:
		return "local"
	}
}

// ParseOffset parses a fixed offset: [+-]H, [+-]HH, [+-]HHMM or [+-]H:M.
// Hours must be 0-23 and minutes 0-59.
func ParseOffset(s string) (Zone, error) {
	m := offsetPattern.FindStringSubmatch(s)
	if m == nil {
		return Zone{}, &ParseError{Kind: ErrInvalidOffset, Input: s, Reason: "must be in [+-]HH, [+-]HHMM or [+-]HH:MM format"}
	}

	sign := 1
	if m[1] == "-" {
		sign = -1
	}
	h := atoi(either(m, 2, 4))
	mi := atoi(either(m, 3, 5))

	if h > 23 {
		return Zone{}, &ParseError{Kind: ErrInvalidOffset, Input: s, Reason: "hour must be between 0 and 23"}
	}
	if mi > 59 {
		return Zone{}, &ParseError{Kind: ErrInvalidOffset, Input: s, Reason: "minute must be between 0 and 59"}
	}

	return FixedZone(sign * (h*3600 + mi*60)), nil
}

// ParseZone is ParseOffset that also accepts "local", "utc" and "z".
func ParseZone(s string) (Zone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return Local, nil
	case "utc", "z":
		return UTC, nil
	}
	return ParseOffset(s)
}

// ResolveZone picks the effective zone: UTC when utc is set, otherwise
// offset when non-empty, otherwise local.
func ResolveZone(utc bool, offset string) (Zone, error) {
	if utc {
		return UTC, nil
	}
	if offset != "" {
		return ParseZone(offset)
	}
	return Local, nil
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
