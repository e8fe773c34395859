package commands

import (
	"strings"

	"github.com/dyluth/ut/internal/printer"
	"github.com/dyluth/ut/internal/timespec"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	base     *parsedValue[timespec.Preset]
	ymd      *parsedValue[timespec.Date]
	hms      *parsedValue[timespec.ClockTime]
	truncate *parsedValue[timespec.Unit]
	deltas   []string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{
		base:     newPresetValue(),
		ymd:      newDateValue(),
		hms:      newClockTimeValue(),
		truncate: newUnitValue(),
	}

	generateCmd := &cobra.Command{
		Use:     "generate [TIMESTAMP]",
		Aliases: []string{"g"},
		Short:   "Generate a unix timestamp",
		Long: `Generate a unix timestamp.

The base instant is now, unless one of these is given:
  --base     a preset day: today, tomorrow or yesterday (prefixes allowed)
  --ymd      a date: YYYYMMDD, YYYY-MM-DD or YYYY/MM/DD
  --hms      a time of day: HHMMSS or HH:MM:SS
  TIMESTAMP  an explicit unix timestamp at the current precision

A preset or date alone means midnight of that day; a time alone means
that time today. --truncate then zeroes every field finer than a unit,
and each --delta shifts the result.

Units: year, month, day, hour, minute, second, millisecond (or ms).
Any unique prefix of a unit name is accepted, e.g. 3d, -10h, +1mo, 30min.

Examples:
  # Now
  ut generate

  # Yesterday at 11:22:33
  ut g -b y --hms 11:22:33

  # Start of the current hour, plus 90 minutes
  ut g -t hour -d 90min

  # One year and one day after a timestamp
  ut -u g -d 1y -d 1d 1561363200`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root.env, opts, args)
		},
	}

	flags := generateCmd.Flags()
	flags.VarP(opts.base, "base", "b", "Base day: "+strings.Join(timespec.PresetNames(), ", "))
	flags.Var(opts.ymd, "ymd", "Base date: YYYYMMDD, YYYY-MM-DD or YYYY/MM/DD")
	flags.Var(opts.hms, "hms", "Base time of day: HHMMSS or HH:MM:SS")
	flags.VarP(opts.truncate, "truncate", "t", "Zero every field finer than this unit: "+strings.Join(timespec.UnitNames(), ", "))
	flags.StringArrayVarP(&opts.deltas, "delta", "d", nil, "Shift the result, e.g. 3day, -10h, +1mo (repeatable)")
	generateCmd.MarkFlagsMutuallyExclusive("base", "ymd")

	root.track(opts.base, opts.ymd, opts.hms, opts.truncate)
	return generateCmd
}

func runGenerate(cmd *cobra.Command, env *environment, opts *generateOptions, args []string) error {
	req := timespec.GenerateRequest{
		BaseRequest: timespec.BaseRequest{
			Preset:    opts.base.Ptr(),
			Date:      opts.ymd.Ptr(),
			Time:      opts.hms.Ptr(),
			Truncate:  opts.truncate.Ptr(),
			Precision: env.precision,
		},
	}

	if len(args) == 1 {
		ts, err := timespec.ParseTimestamp(args[0])
		if err != nil {
			return err
		}
		req.Timestamp = &ts
	}

	deltas, err := timespec.ParseDeltas(opts.deltas)
	if err != nil {
		return err
	}
	req.Deltas = deltas

	ts, err := timespec.NewResolver(clock, env.zone).Generate(req)
	if err != nil {
		return err
	}

	env.log.WithFields(logrus.Fields{
		"delta":   timespec.Sum(deltas...),
		"instant": timespec.Parse(ts, req.Precision, env.zone),
	}).Debug("Generated timestamp")

	printer.Result(cmd.OutOrStdout(), ts)
	return nil
}
