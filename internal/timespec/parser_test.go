package timespec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2019-06-24 04:34:56.789 at -08:00
var fixedNow = time.Date(2019, 6, 24, 12, 34, 56, 789_000_000, time.UTC)

func newTestResolver(zone Zone) *Resolver {
	return NewResolver(ClockFunc(func() time.Time { return fixedNow }), zone)
}

func ptr[T any](v T) *T {
	return &v
}

func TestResolver_Base(t *testing.T) {
	pst := FixedZone(-8 * 3600)
	loc := pst.Location()

	tests := []struct {
		name string
		req  BaseRequest
		want time.Time
	}{
		{
			name: "now",
			req:  BaseRequest{},
			want: time.Date(2019, 6, 24, 4, 34, 56, 789_000_000, loc),
		},
		{
			name: "today",
			req:  BaseRequest{Preset: ptr(Today)},
			want: time.Date(2019, 6, 24, 0, 0, 0, 0, loc),
		},
		{
			name: "yesterday at a time",
			req:  BaseRequest{Preset: ptr(Yesterday), Time: &ClockTime{11, 22, 33}},
			want: time.Date(2019, 6, 23, 11, 22, 33, 0, loc),
		},
		{
			name: "date",
			req:  BaseRequest{Date: &Date{2019, time.June, 1}},
			want: time.Date(2019, 6, 1, 0, 0, 0, 0, loc),
		},
		{
			name: "date and time",
			req:  BaseRequest{Date: &Date{2019, time.June, 1}, Time: &ClockTime{23, 0, 0}},
			want: time.Date(2019, 6, 1, 23, 0, 0, 0, loc),
		},
		{
			name: "time only is today",
			req:  BaseRequest{Time: &ClockTime{9, 0, 0}},
			want: time.Date(2019, 6, 24, 9, 0, 0, 0, loc),
		},
		{
			name: "timestamp",
			req:  BaseRequest{Timestamp: ptr(int64(1561363200))},
			want: time.Date(2019, 6, 24, 0, 0, 0, 0, loc),
		},
		{
			name: "millisecond timestamp",
			req:  BaseRequest{Timestamp: ptr(int64(1561363200500)), Precision: PrecisionMillisecond},
			want: time.Date(2019, 6, 24, 0, 0, 0, 500_000_000, loc),
		},
		{
			name: "truncate now to hour",
			req:  BaseRequest{Truncate: ptr(Hour)},
			want: time.Date(2019, 6, 24, 4, 0, 0, 0, loc),
		},
		{
			name: "truncate now to second",
			req:  BaseRequest{Truncate: ptr(Second)},
			want: time.Date(2019, 6, 24, 4, 34, 56, 0, loc),
		},
		{
			name: "truncate date to month",
			req:  BaseRequest{Date: &Date{2019, time.June, 24}, Truncate: ptr(Month)},
			want: time.Date(2019, 6, 1, 0, 0, 0, 0, loc),
		},
		{
			name: "truncate timestamp to year",
			req:  BaseRequest{Timestamp: ptr(int64(1561363200)), Truncate: ptr(Year)},
			want: time.Date(2019, 1, 1, 0, 0, 0, 0, loc),
		},
	}

	r := newTestResolver(pst)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Base(tt.req)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			_, offset := got.Zone()
			assert.Equal(t, -8*3600, offset)
		})
	}
}

func TestResolver_BaseConflicts(t *testing.T) {
	r := newTestResolver(UTC)

	tests := []struct {
		name string
		req  BaseRequest
	}{
		{"preset and date", BaseRequest{Preset: ptr(Today), Date: &Date{2019, time.June, 1}}},
		{"timestamp and preset", BaseRequest{Timestamp: ptr(int64(0)), Preset: ptr(Today)}},
		{"timestamp and date", BaseRequest{Timestamp: ptr(int64(0)), Date: &Date{2019, time.June, 1}}},
		{"timestamp and time", BaseRequest{Timestamp: ptr(int64(0)), Time: &ClockTime{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Base(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConflictingBase))
			assert.Equal(t, ErrConflictingBase, KindOf(err))
		})
	}
}

func TestResolver_Generate(t *testing.T) {
	pst := FixedZone(-8 * 3600)

	tests := []struct {
		name string
		zone Zone
		req  GenerateRequest
		want int64
	}{
		{
			name: "now",
			zone: UTC,
			req:  GenerateRequest{},
			want: 1561379696,
		},
		{
			name: "now in milliseconds",
			zone: UTC,
			req:  GenerateRequest{BaseRequest: BaseRequest{Precision: PrecisionMillisecond}},
			want: 1561379696789,
		},
		{
			name: "date at offset",
			zone: pst,
			req:  GenerateRequest{BaseRequest: BaseRequest{Date: &Date{2019, time.June, 24}}},
			want: 1561363200,
		},
		{
			name: "today at offset",
			zone: pst,
			req:  GenerateRequest{BaseRequest: BaseRequest{Preset: ptr(Today)}},
			want: 1561363200,
		},
		{
			name: "today in utc",
			zone: UTC,
			req:  GenerateRequest{BaseRequest: BaseRequest{Preset: ptr(Today)}},
			want: 1561334400,
		},
		{
			name: "tomorrow minus ten hours",
			zone: pst,
			req: GenerateRequest{
				BaseRequest: BaseRequest{Preset: ptr(Tomorrow)},
				Deltas:      []Delta{{Hours: -10}},
			},
			want: 1561363200 + 14*3600,
		},
		{
			name: "date plus a year and a day",
			zone: UTC,
			req: GenerateRequest{
				BaseRequest: BaseRequest{Date: &Date{2019, time.June, 24}},
				Deltas:      []Delta{{Years: 1}, {Days: 1}},
			},
			want: time.Date(2020, 6, 25, 0, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name: "timestamp plus milliseconds",
			zone: UTC,
			req: GenerateRequest{
				BaseRequest: BaseRequest{Timestamp: ptr(int64(1561363200000)), Precision: PrecisionMillisecond},
				Deltas:      []Delta{{Milliseconds: 123}},
			},
			want: 1561363200123,
		},
		{
			name: "truncate before deltas",
			zone: UTC,
			req: GenerateRequest{
				BaseRequest: BaseRequest{Truncate: ptr(Day)},
				Deltas:      []Delta{{Hours: 1}},
			},
			want: 1561334400 + 3600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestResolver(tt.zone).Generate(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_GenerateNonexistentDate(t *testing.T) {
	r := newTestResolver(UTC)
	_, err := r.Generate(GenerateRequest{
		BaseRequest: BaseRequest{Date: &Date{2019, time.January, 31}},
		Deltas:      []Delta{{Months: 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonexistentDate))
}

func TestResolver_MillisecondsMatchSeconds(t *testing.T) {
	r := newTestResolver(FixedZone(9 * 3600))
	base := BaseRequest{Preset: ptr(Yesterday), Time: &ClockTime{11, 22, 33}}

	s, err := r.Generate(GenerateRequest{BaseRequest: base})
	require.NoError(t, err)

	base.Precision = PrecisionMillisecond
	ms, err := r.Generate(GenerateRequest{BaseRequest: base})
	require.NoError(t, err)

	assert.Equal(t, s*1000, ms)
}

func TestResolver_GenerateThenParse(t *testing.T) {
	pst := FixedZone(-8 * 3600)
	r := newTestResolver(pst)

	ts, err := r.Generate(GenerateRequest{BaseRequest: BaseRequest{
		Date: &Date{2019, time.June, 24},
		Time: &ClockTime{11, 22, 33},
	}})
	require.NoError(t, err)
	assert.Equal(t, "2019-06-24 11:22:33 (-08:00)", Parse(ts, PrecisionSecond, pst))
}

func TestResolver_NilClockUsesSystemClock(t *testing.T) {
	r := &Resolver{Zone: UTC}
	before := time.Now().Add(-time.Second)

	got, err := r.Base(BaseRequest{})
	require.NoError(t, err)
	assert.True(t, got.After(before))
}
