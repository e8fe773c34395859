package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dyluth/ut/internal/printer"
	"github.com/dyluth/ut/internal/timespec"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// millisecondThreshold is the magnitude above which a second timestamp is
// more likely a millisecond one (1e11 seconds is past the year 5000).
const millisecondThreshold = 100_000_000_000

func newParseCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "parse [TIMESTAMP]",
		Aliases: []string{"p"},
		Short:   "Parse a unix timestamp into a date-time",
		Long: `Parse a unix timestamp and print it as YYYY-MM-DD HH:MM:SS (ZONE),
with milliseconds at millisecond precision.

Without TIMESTAMP the first word on stdin is read.

Examples:
  ut -u parse 1561363200
  ut -o +09:00 -p ms parse 1560762129123
  ut generate | ut parse
  ut parse -86400`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, root.env, args)
		},
	}
}

func runParse(cmd *cobra.Command, env *environment, args []string) error {
	input, err := readTimestamp(cmd, args)
	if err != nil {
		return err
	}

	ts, err := timespec.ParseTimestamp(input)
	if err != nil {
		return err
	}
	if err := env.precision.Check(ts); err != nil {
		return err
	}

	if env.precision == timespec.PrecisionSecond && (ts >= millisecondThreshold || ts <= -millisecondThreshold) {
		printer.Warning(cmd.ErrOrStderr(), "%d looks like a millisecond timestamp; use -p ms to read it as one", ts)
	}

	result := timespec.Parse(ts, env.precision, env.zone)
	env.log.WithFields(logrus.Fields{
		"timestamp": ts,
		"zone":      env.zone,
		"precision": env.precision,
	}).Debug("Parsed timestamp")

	printer.Result(cmd.OutOrStdout(), result)
	return nil
}

// readTimestamp returns the TIMESTAMP argument, or the first word of stdin
// when stdin is not a terminal.
func readTimestamp(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", missingTimestamp(cmd)
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read timestamp from stdin: %w", err)
	}
	return "", missingTimestamp(cmd)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func missingTimestamp(cmd *cobra.Command) error {
	return printer.Error(
		cmd.ErrOrStderr(),
		"missing timestamp",
		"parse needs a TIMESTAMP argument or a timestamp on stdin.",
		[]string{
			"Pass it as an argument:\n  ut parse 1561363200",
			"Pipe it in:\n  ut generate | ut parse",
		},
	)
}
