package commands

import (
	"github.com/dyluth/ut/internal/timespec"
	"github.com/spf13/pflag"
)

// parsedValue is a pflag.Value that parses its argument as soon as the flag
// is seen, so bad input fails before any command runs. The last parse error
// is kept for the flag error handler.
type parsedValue[T any] struct {
	typeName string
	parse    func(string) (T, error)

	raw   string
	value T
	set   bool
	err   error
}

var _ pflag.Value = (*parsedValue[timespec.Zone])(nil)

func newParsedValue[T any](typeName string, parse func(string) (T, error)) *parsedValue[T] {
	return &parsedValue[T]{typeName: typeName, parse: parse}
}

func (v *parsedValue[T]) String() string {
	return v.raw
}

func (v *parsedValue[T]) Set(s string) error {
	parsed, err := v.parse(s)
	if err != nil {
		v.err = err
		return err
	}
	v.raw, v.value, v.set, v.err = s, parsed, true, nil
	return nil
}

func (v *parsedValue[T]) Type() string {
	return v.typeName
}

// Ptr returns the parsed value, or nil when the flag was not given.
func (v *parsedValue[T]) Ptr() *T {
	if !v.set {
		return nil
	}
	value := v.value
	return &value
}

// Err returns the error of the last rejected argument.
func (v *parsedValue[T]) Err() error {
	return v.err
}

type flagErrorSource interface {
	Err() error
}

func newZoneValue() *parsedValue[timespec.Zone] {
	return newParsedValue("offset", timespec.ParseZone)
}

func newPrecisionValue() *parsedValue[timespec.Precision] {
	return newParsedValue("precision", timespec.ParsePrecision)
}

func newPresetValue() *parsedValue[timespec.Preset] {
	return newParsedValue("preset", timespec.ParsePreset)
}

func newUnitValue() *parsedValue[timespec.Unit] {
	return newParsedValue("unit", timespec.ParseUnit)
}

func newDateValue() *parsedValue[timespec.Date] {
	return newParsedValue("date", timespec.ParseYMD)
}

func newClockTimeValue() *parsedValue[timespec.ClockTime] {
	return newParsedValue("time", timespec.ParseHMS)
}
