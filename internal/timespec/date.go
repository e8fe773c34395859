package timespec

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	minYear = 1900
	maxYear = 2999
)

var (
	ymdPattern = regexp.MustCompile(`^(?:(\d{4})(\d{2})(\d{2})|(\d{4})[-/](\d{1,2})[-/](\d{1,2}))$`)
	hmsPattern = regexp.MustCompile(`^(?:(\d{2})(\d{2})(\d{2})|(\d{1,2}):(\d{1,2}):(\d{1,2}))$`)
)

// Date is a calendar day without a location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseYMD parses yyyyMMdd, yyyy-MM-dd or yyyy/MM/dd.
func ParseYMD(s string) (Date, error) {
	m := ymdPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &ParseError{Kind: ErrInvalidDate, Input: s, Reason: "must be in yyyyMMdd or yyyy-MM-dd format"}
	}

	y := atoi(either(m, 1, 4))
	mo := atoi(either(m, 2, 5))
	d := atoi(either(m, 3, 6))

	if y < minYear || y > maxYear {
		return Date{}, &ParseError{Kind: ErrInvalidDate, Input: s, Reason: fmt.Sprintf("year must be between %d and %d", minYear, maxYear)}
	}
	if mo < 1 || mo > 12 {
		return Date{}, &ParseError{Kind: ErrInvalidDate, Input: s, Reason: "month must be between 1 and 12"}
	}
	if d < 1 || d > 31 {
		return Date{}, &ParseError{Kind: ErrInvalidDate, Input: s, Reason: "day must be between 1 and 31"}
	}
	if d > daysIn(y, time.Month(mo)) {
		return Date{}, &ParseError{Kind: ErrInvalidDate, Input: s, Reason: "date does not exist"}
	}

	return Date{Year: y, Month: time.Month(mo), Day: d}, nil
}

// In returns midnight of the date in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ClockTime is a time of day with second resolution.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseHMS parses HHmmss or H:m:s.
func ParseHMS(s string) (ClockTime, error) {
	m := hmsPattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, &ParseError{Kind: ErrInvalidTime, Input: s, Reason: "must be in HHmmss or HH:mm:ss format"}
	}

	h := atoi(either(m, 1, 4))
	mi := atoi(either(m, 2, 5))
	sec := atoi(either(m, 3, 6))

	switch {
	case h > 23:
		return ClockTime{}, &ParseError{Kind: ErrInvalidTime, Input: s, Reason: "hour must be between 0 and 23"}
	case mi > 59:
		return ClockTime{}, &ParseError{Kind: ErrInvalidTime, Input: s, Reason: "minute must be between 0 and 59"}
	case sec > 59:
		return ClockTime{}, &ParseError{Kind: ErrInvalidTime, Input: s, Reason: "second must be between 0 and 59"}
	}

	return ClockTime{Hour: h, Minute: mi, Second: sec}, nil
}

// On returns day's calendar date at the clock time, in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, c.Second, 0, day.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// either returns the first non-empty submatch of two alternative groups.
func either(m []string, i, j int) string {
	if m[i] != "" {
		return m[i]
	}
	return m[j]
}

// atoi is only called on short digit-only submatches.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
