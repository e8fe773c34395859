package timespec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dyluth/ut/internal/resolver"
)

// Precision is the granularity of timestamps read and written.
type Precision int

const (
	PrecisionSecond Precision = iota
	PrecisionMillisecond
)

var precisionCandidates = []resolver.Candidate{
	{Name: "second"},
	{Name: "millisecond", Aliases: []string{"ms"}},
}

func (p Precision) String() string {
	if p < PrecisionSecond || p > PrecisionMillisecond {
		return fmt.Sprintf("Precision(%d)", int(p))
	}
	return precisionCandidates[p].Name
}

// PrecisionNames returns every precision name.
func PrecisionNames() []string {
	return resolver.Names(precisionCandidates)
}

// ParsePrecision resolves a precision from its name, a unique prefix of it, or "ms".
func ParsePrecision(s string) (Precision, error) {
	name, err := resolver.Resolve("precision", s, precisionCandidates)
	if err != nil {
		return 0, &ParseError{Kind: ErrInvalidPrecision, Input: s, Err: err}
	}
	return Precision(indexOf(precisionCandidates, name)), nil
}

// Instants must lie within [MinUnix, MaxUnix] seconds so that their
// timestamp fits an int64 at millisecond precision.
const (
	MinUnix = math.MinInt64 / 1000
	MaxUnix = math.MaxInt64/1000 - 1
)

// InRange reports whether t has a timestamp at every precision.
func InRange(t time.Time) bool {
	s := t.Unix()
	return s >= MinUnix && s <= MaxUnix
}

// Check rejects timestamps whose instant is outside [MinUnix, MaxUnix].
func (p Precision) Check(ts int64) error {
	s := ts
	if p == PrecisionMillisecond {
		s = floorDiv(ts, 1000)
	}
	if s < MinUnix || s > MaxUnix {
		return &ParseError{Kind: ErrInvalidTimestamp, Input: strconv.FormatInt(ts, 10), Reason: "out of range"}
	}
	return nil
}

// Timestamp returns t as a unix timestamp at precision p. t must be InRange.
func (p Precision) Timestamp(t time.Time) int64 {
	if p == PrecisionMillisecond {
		return t.UnixMilli()
	}
	return t.Unix()
}

// Time returns the instant of a unix timestamp at precision p, in loc.
func (p Precision) Time(ts int64, loc *time.Location) time.Time {
	if p == PrecisionMillisecond {
		return time.UnixMilli(ts).In(loc)
	}
	return time.Unix(ts, 0).In(loc)
}

// Layout returns the date-time layout used by Format.
func (p Precision) Layout() string {
	if p == PrecisionMillisecond {
		return "2006-01-02 15:04:05.000"
	}
	return "2006-01-02 15:04:05"
}

// Format renders t with its offset, e.g. "2019-06-24 00:00:00 (-08:00)".
// UTC instants are annotated "(UTC)".
func (p Precision) Format(t time.Time) string {
	zone := t.Format("-07:00")
	if t.Location() == time.UTC {
		zone = "UTC"
	}
	return fmt.Sprintf("%s (%s)", t.Format(p.Layout()), zone)
}

// ParseTimestamp parses a signed decimal unix timestamp.
func ParseTimestamp(s string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: ErrInvalidTimestamp, Input: s, Reason: "must be an integer", Err: err}
	}
	return ts, nil
}
