package timespec

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var deltaPattern = regexp.MustCompile(`^([-+]?\d+)([a-zA-Z]+)$`)

// Delta is a signed amount per unit. A parsed delta sets one field; Sum
// adds deltas field by field, so the total never depends on their order.
type Delta struct {
	Years        int64
	Months       int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// NewDelta returns a delta of value units.
func NewDelta(u Unit, value int64) Delta {
	var d Delta
	switch u {
	case Year:
		d.Years = value
	case Month:
		d.Months = value
	case Day:
		d.Days = value
	case Hour:
		d.Hours = value
	case Minute:
		d.Minutes = value
	case Second:
		d.Seconds = value
	case Millisecond:
		d.Milliseconds = value
	}
	return d
}

// ParseDelta parses VALUEUNIT, e.g. "3day", "-10h", "+1mo".
// VALUE must fit in a signed 32-bit integer.
func ParseDelta(s string) (Delta, error) {
	m := deltaPattern.FindStringSubmatch(s)
	if m == nil {
		return Delta{}, &ParseError{Kind: ErrInvalidDelta, Input: s, Reason: "must be a signed integer followed by a unit, e.g. 3day or -10h"}
	}

	value, err := strconv.ParseInt(m[1], 10, 32)
	if err != nil {
		return Delta{}, &ParseError{Kind: ErrInvalidDelta, Input: s, Reason: fmt.Sprintf("value must be between %d and %d", math.MinInt32, math.MaxInt32), Err: err}
	}

	u, err := ParseUnit(m[2])
	if err != nil {
		return Delta{}, &ParseError{Kind: ErrInvalidDelta, Input: s, Err: err}
	}

	return NewDelta(u, value), nil
}

// ParseDeltas parses every item, stopping at the first error.
func ParseDeltas(items []string) ([]Delta, error) {
	deltas := make([]Delta, 0, len(items))
	for _, item := range items {
		d, err := ParseDelta(item)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, d)
	}
	return deltas, nil
}

// Add returns the field-wise sum of d and o.
func (d Delta) Add(o Delta) Delta {
	return Delta{
		Years:        d.Years + o.Years,
		Months:       d.Months + o.Months,
		Days:         d.Days + o.Days,
		Hours:        d.Hours + o.Hours,
		Minutes:      d.Minutes + o.Minutes,
		Seconds:      d.Seconds + o.Seconds,
		Milliseconds: d.Milliseconds + o.Milliseconds,
	}
}

// Sum totals deltas.
func Sum(deltas ...Delta) Delta {
	var total Delta
	for _, d := range deltas {
		total = total.Add(d)
	}
	return total
}

// IsZero reports whether d moves nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Apply shifts t by d. Days and finer units are added as an exact elapsed
// time first; years and months then move the calendar month, keeping the
// day of month and clock time. If that day does not exist in the target
// month, or that clock time is skipped there by a daylight saving change,
// Apply fails with ErrNonexistentDate. t and the result must be InRange.
func (d Delta) Apply(t time.Time) (time.Time, error) {
	if !InRange(t) {
		return time.Time{}, d.outOfRange()
	}

	seconds := d.Days*86400 + d.Hours*3600 + d.Minutes*60 + d.Seconds + d.Milliseconds/1000
	nanos := (d.Milliseconds % 1000) * int64(time.Millisecond)
	shifted := time.Unix(t.Unix()+seconds, int64(t.Nanosecond())+nanos).In(t.Location())
	if !InRange(shifted) {
		return time.Time{}, d.outOfRange()
	}

	months := d.Years*12 + d.Months
	if months == 0 {
		return shifted, nil
	}

	y, mo, day := shifted.Date()
	h, mi, s := shifted.Clock()

	total := int64(y)*12 + int64(mo-1) + months
	ny := floorDiv(total, 12)
	nm := time.Month(total-ny*12) + 1

	if ny < minDeltaYear || ny > maxDeltaYear {
		return time.Time{}, d.outOfRange()
	}
	if day > daysIn(int(ny), nm) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrNonexistentDate, ny, int(nm), day)
	}

	result := time.Date(int(ny), nm, day, h, mi, s, shifted.Nanosecond(), shifted.Location())
	if result.Hour() != h || result.Minute() != mi {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d in %s",
			ErrNonexistentDate, ny, int(nm), day, h, mi, s, shifted.Location())
	}
	if !InRange(result) {
		return time.Time{}, d.outOfRange()
	}
	return result, nil
}

// Years beyond these are out of range for any instant, see InRange.
const (
	minDeltaYear = -300_000_000
	maxDeltaYear = 300_000_000
)

func (d Delta) outOfRange() error {
	return &ParseError{Kind: ErrInvalidDelta, Input: d.String(), Reason: "result out of range"}
}

// String renders the non-zero fields, e.g. "+1y-10h".
func (d Delta) String() string {
	if d.IsZero() {
		return "0"
	}
	var b strings.Builder
	for _, f := range []struct {
		v    int64
		unit string
	}{
		{d.Years, "y"}, {d.Months, "mo"}, {d.Days, "d"}, {d.Hours, "h"},
		{d.Minutes, "min"}, {d.Seconds, "s"}, {d.Milliseconds, "ms"},
	} {
		if f.v != 0 {
			fmt.Fprintf(&b, "%+d%s", f.v, f.unit)
		}
	}
	return b.String()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
