package timespec

import (
	"fmt"
	"time"
)

// BaseRequest describes the instant deltas are applied to.
// Nil fields are unset.
type BaseRequest struct {
	Preset    *Preset
	Date      *Date
	Time      *ClockTime
	Timestamp *int64 // explicit instant, read at Precision
	Truncate  *Unit
	Precision Precision
}

// GenerateRequest is a base instant, the deltas to apply and the output precision.
type GenerateRequest struct {
	BaseRequest
	Deltas []Delta
}

// Resolver turns requests into instants in one zone.
type Resolver struct {
	Clock Clock
	Zone  Zone
}

// NewResolver returns a resolver reading now from clock and working in zone.
func NewResolver(clock Clock, zone Zone) *Resolver {
	return &Resolver{Clock: clock, Zone: zone}
}

func (r *Resolver) now() time.Time {
	clock := r.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return clock.Now().In(r.Zone.Location())
}

// Base resolves the base instant of req.
//
// Without a preset or date the day is today; without a time of day the
// clock is midnight when a day was given and the current time otherwise.
// An explicit timestamp excludes preset, date and time.
func (r *Resolver) Base(req BaseRequest) (time.Time, error) {
	if req.Preset != nil && req.Date != nil {
		return time.Time{}, fmt.Errorf("%w: a preset and a date cannot be combined", ErrConflictingBase)
	}
	if req.Timestamp != nil && (req.Preset != nil || req.Date != nil || req.Time != nil) {
		return time.Time{}, fmt.Errorf("%w: a timestamp cannot be combined with a preset, date or time", ErrConflictingBase)
	}

	var base time.Time
	if req.Timestamp != nil {
		if err := req.Precision.Check(*req.Timestamp); err != nil {
			return time.Time{}, err
		}
		base = req.Precision.Time(*req.Timestamp, r.Zone.Location())
	} else {
		now := r.now()

		day, hasDay := Day.Truncate(now), false
		switch {
		case req.Preset != nil:
			day, hasDay = req.Preset.Date(now), true
		case req.Date != nil:
			day, hasDay = req.Date.In(r.Zone.Location()), true
		}

		switch {
		case req.Time != nil:
			base = req.Time.On(day)
		case hasDay:
			base = day
		default:
			base = now
		}
	}

	if req.Truncate != nil {
		base = req.Truncate.Truncate(base)
	}
	return base, nil
}

// Instant resolves the base of req and applies the total of its deltas.
// The result is InRange.
func (r *Resolver) Instant(req GenerateRequest) (time.Time, error) {
	base, err := r.Base(req.BaseRequest)
	if err != nil {
		return time.Time{}, err
	}
	return Sum(req.Deltas...).Apply(base)
}

// Generate returns the unix timestamp of req at its precision.
func (r *Resolver) Generate(req GenerateRequest) (int64, error) {
	t, err := r.Instant(req)
	if err != nil {
		return 0, err
	}
	return req.Precision.Timestamp(t), nil
}

// Parse renders a unix timestamp at precision p in zone.
func Parse(ts int64, p Precision, zone Zone) string {
	return p.Format(p.Time(ts, zone.Location()))
}
