package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/ut/internal/printer"
	"github.com/dyluth/ut/internal/resolver"
	"github.com/dyluth/ut/internal/timespec"
)

var hints = map[error]string{
	timespec.ErrInvalidDate:      "Dates are YYYYMMDD, YYYY-MM-DD or YYYY/MM/DD, with years from 1900 to 2999",
	timespec.ErrInvalidTime:      "Times are HHMMSS or HH:MM:SS",
	timespec.ErrInvalidDelta:     "Deltas are a signed integer followed by a unit, e.g. 3day, -10h or +1mo",
	timespec.ErrInvalidTimestamp: "Timestamps are integers, e.g. 1561363200 or -86400",
	timespec.ErrInvalidOffset:    "Offsets are [+-]HH, [+-]HHMM or [+-]HH:MM, e.g. -8, +0530 or +09:00",
	timespec.ErrNonexistentDate:  "Month and year deltas keep the day of month; start from a day that exists in the target month",
	timespec.ErrConflictingBase:  "Give at most one of --base and --ymd, and no TIMESTAMP together with --base, --ymd or --hms",
}

// reportError prints err for the user unless that already happened, and
// returns the printed error.
func reportError(w io.Writer, err error) error {
	if printer.IsReported(err) {
		return err
	}

	var ambiguous *resolver.AmbiguousError
	if errors.As(err, &ambiguous) {
		return printer.Error(w, errorTitle(err), resolver.FormatAmbiguousError(ambiguous), nil)
	}

	var notFound *resolver.NotFoundError
	if errors.As(err, &notFound) {
		return printer.Error(w, errorTitle(err), errorDetail(err), []string{
			fmt.Sprintf("Possible %s names: %s", notFound.Kind, strings.Join(notFound.Names, ", ")),
		})
	}

	kind := timespec.KindOf(err)
	if kind == nil {
		return printer.Error(w, err.Error(), "", []string{"Run 'ut --help' for usage."})
	}

	var suggestions []string
	if hint, ok := hints[kind]; ok {
		suggestions = append(suggestions, hint)
	}
	return printer.Error(w, errorTitle(err), errorDetail(err), suggestions)
}

func errorTitle(err error) string {
	if kind := timespec.KindOf(err); kind != nil {
		return kind.Error()
	}
	return "invalid input"
}

// errorDetail is the message of err without the kind already used as its title.
func errorDetail(err error) string {
	msg := err.Error()
	if kind := timespec.KindOf(err); kind != nil {
		msg = strings.TrimPrefix(msg, kind.Error())
		msg = strings.TrimSpace(strings.TrimPrefix(msg, ":"))
	}
	return msg
}
