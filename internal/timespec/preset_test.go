package timespec

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/dyluth/ut/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input string
		want  Preset
	}{
		{"today", Today},
		{"TODAY", Today},
		{"tod", Today},
		{"tom", Tomorrow},
		{"tomorrow", Tomorrow},
		{"y", Yesterday},
		{"yesterday", Yesterday},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreset(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePreset_Errors(t *testing.T) {
	_, err := ParsePreset("to")
	assert.True(t, errors.Is(err, ErrInvalidPreset))
	assert.ErrorAs(t, err, new(*resolver.AmbiguousError))

	_, err = ParsePreset("now")
	assert.True(t, errors.Is(err, ErrInvalidPreset))
	assert.ErrorAs(t, err, new(*resolver.NotFoundError))
}

func TestPreset_Date(t *testing.T) {
	pst := FixedZone(-8 * 3600).Location()
	now := time.Date(2019, 6, 24, 4, 5, 6, 7, pst)

	assert.Equal(t, time.Date(2019, 6, 24, 0, 0, 0, 0, pst), Today.Date(now))
	assert.Equal(t, time.Date(2019, 6, 25, 0, 0, 0, 0, pst), Tomorrow.Date(now))
	assert.Equal(t, time.Date(2019, 6, 23, 0, 0, 0, 0, pst), Yesterday.Date(now))
	assert.Equal(t, int64(1561363200), Today.Date(now).Unix())
}

func TestPreset_DateCrossesMonthAndYear(t *testing.T) {
	assert.Equal(t,
		time.Date(2019, 2, 28, 0, 0, 0, 0, time.UTC),
		Yesterday.Date(time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Tomorrow.Date(time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestPreset_DateAcrossDaylightSaving(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2019-03-10 is 23 hours long in New York
	now := time.Date(2019, 3, 10, 12, 0, 0, 0, ny)
	today := Today.Date(now)
	tomorrow := Tomorrow.Date(now)

	assert.Equal(t, 0, tomorrow.Hour())
	assert.Equal(t, 11, tomorrow.Day())
	assert.Equal(t, 23*time.Hour, tomorrow.Sub(today))
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"today", "tomorrow", "yesterday"}, PresetNames())
	assert.Equal(t, "tomorrow", Tomorrow.String())
}
