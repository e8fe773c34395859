package commands

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dyluth/ut/internal/config"
	"github.com/dyluth/ut/internal/logging"
	"github.com/dyluth/ut/internal/printer"
	"github.com/dyluth/ut/internal/timespec"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// clock supplies "now" to every command; tests replace it
var clock timespec.Clock = timespec.SystemClock{}

// rootOptions holds the global flags and, once PersistentPreRunE has run,
// the environment every subcommand works in.
type rootOptions struct {
	utc        bool
	offset     *parsedValue[timespec.Zone]
	precision  *parsedValue[timespec.Precision]
	configPath string
	verbose    bool

	flagValues []flagErrorSource
	env        *environment
}

// environment is the resolved zone, precision and logger for one run.
type environment struct {
	zone      timespec.Zone
	precision timespec.Precision
	log       *logrus.Logger
}

// newRootCmd builds the command tree. Each call returns independent
// commands with their own flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		offset:    newZoneValue(),
		precision: newPrecisionValue(),
	}

	rootCmd := &cobra.Command{
		Use:   "ut",
		Short: "ut - generate and parse unix timestamps",
		Long: `ut generates unix timestamps from presets, dates, times and deltas,
and parses unix timestamps into readable date-times.

Results are computed in the local timezone unless --utc or --offset is
given, at second precision unless --precision is given. Defaults can be
set in $XDG_CONFIG_HOME/ut/config.yml or with UT_OFFSET and UT_PRECISION.

Examples:
  # Start of today, in milliseconds
  ut -p ms generate -b today

  # Midnight of 2019-06-24 at UTC-8
  ut -o -8 generate --ymd 2019-06-24

  # Ten hours before the start of tomorrow
  ut g -b tomorrow -d -10h

  # Read a timestamp back
  ut -u parse 1561363200`,
		Version: versionString(),
		// Prevent silent success when unknown flags are passed to root command
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is specified, show help
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		// Errors are reported by execute through the printer package
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.utc, "utc", "u", false, "Use UTC instead of the local timezone")
	flags.VarP(opts.offset, "offset", "o", "Use a fixed UTC offset: [+-]HH, [+-]HHMM or [+-]HH:MM")
	flags.VarP(opts.precision, "precision", "p", "Timestamp precision: "+strings.Join(timespec.PrecisionNames(), " or ")+" (ms)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/ut/config.yml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log how results are computed to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("utc", "offset")

	opts.track(opts.offset, opts.precision)
	rootCmd.SetFlagErrorFunc(opts.flagError)

	rootCmd.AddCommand(newGenerateCmd(opts), newParseCmd(opts), newInitCmd(opts))
	return rootCmd
}

// track registers flag values whose parse errors should be reported as-is.
func (o *rootOptions) track(values ...flagErrorSource) {
	o.flagValues = append(o.flagValues, values...)
}

// flagError prefers the typed error of a rejected flag value over the
// flag parser's text, so it can be reported with suggestions.
func (o *rootOptions) flagError(cmd *cobra.Command, err error) error {
	for _, v := range o.flagValues {
		if verr := v.Err(); verr != nil {
			return verr
		}
	}
	return err
}

// resolve builds the environment: config file, then UT_* variables, then flags.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Discover(o.configPath)
	if err != nil {
		return printer.ErrorWithContext(
			cmd.ErrOrStderr(),
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": o.configSource()},
			[]string{
				"Fix or remove the config file",
				fmt.Sprintf("Check %s, %s and %s", config.EnvOffset, config.EnvPrecision, config.EnvLogLevel),
			},
		)
	}

	level := cfg.LogLevel
	if o.verbose {
		level = logrus.DebugLevel.String()
	}
	log := logging.New(level, cmd.ErrOrStderr())

	zone, err := cfg.Zone()
	if err != nil {
		return err
	}
	switch {
	case o.utc:
		zone = timespec.UTC
	case o.offset.set:
		zone = o.offset.value
	}

	precision, err := cfg.PrecisionOrDefault()
	if err != nil {
		return err
	}
	if o.precision.set {
		precision = o.precision.value
	}

	o.env = &environment{zone: zone, precision: precision, log: log}

	log.WithFields(logrus.Fields{
		"config":    cfg.Path,
		"zone":      zone,
		"precision": precision,
	}).Debug("Resolved environment")
	return nil
}

// configSource describes where the config would have been read from.
func (o *rootOptions) configSource() string {
	path, err := o.targetConfigPath()
	if err != nil {
		return "none"
	}
	return path
}

// Execute builds the command tree and runs it against the process arguments.
// This is called by main.main(). Errors have already been printed when it returns.
func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

func execute(rootCmd *cobra.Command, args []string) error {
	rootCmd.SetArgs(negativesAsArgs(rootCmd, args))
	if err := rootCmd.Execute(); err != nil {
		return reportError(rootCmd.ErrOrStderr(), err)
	}
	return nil
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// negativesAsArgs moves bare negative numbers that are not flag values
// behind "--", so "ut parse -1" reads -1 as the TIMESTAMP.
func negativesAsArgs(rootCmd *cobra.Command, args []string) []string {
	var kept, moved []string
	wantValue := false
	for i, arg := range args {
		switch {
		case arg == "--":
			if len(moved) == 0 {
				return args
			}
			kept = append(kept, "--")
			kept = append(kept, moved...)
			return append(kept, args[i+1:]...)
		case wantValue:
			wantValue = false
			kept = append(kept, arg)
		case negativeNumber.MatchString(arg):
			moved = append(moved, arg)
		default:
			wantValue = takesValue(rootCmd, arg)
			kept = append(kept, arg)
		}
	}
	if len(moved) == 0 {
		return args
	}
	kept = append(kept, "--")
	return append(kept, moved...)
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(rootCmd *cobra.Command, arg string) bool {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		return needsValue(lookupFlag(rootCmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) }))
	}

	shorthands, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return false
	}
	for i := 0; i < len(shorthands); i++ {
		f := lookupFlag(rootCmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(shorthands[i : i+1]) })
		if f == nil {
			return false
		}
		if needsValue(f) {
			// "-o" takes the next argument, "-o-8" carries its own
			return i == len(shorthands)-1
		}
	}
	return false
}

func lookupFlag(rootCmd *cobra.Command, lookup func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	if f := lookup(rootCmd.PersistentFlags()); f != nil {
		return f
	}
	for _, c := range rootCmd.Commands() {
		if f := lookup(c.Flags()); f != nil {
			return f
		}
	}
	return nil
}

func needsValue(f *pflag.Flag) bool {
	return f != nil && f.NoOptDefVal == ""
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}
