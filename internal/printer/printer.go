package printer

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color definitions
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// ReportedError is returned once an error has been printed for the user.
// Callers use IsReported to avoid printing it a second time.
type ReportedError struct {
	Title string
}

func (e *ReportedError) Error() string {
	return e.Title
}

// IsReported reports whether err (or anything it wraps) was already printed.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}

// Result prints a command result on its own line
func Result(w io.Writer, a any) {
	fmt.Fprintln(w, a)
}

// Success prints a success message in green with a checkmark prefix
func Success(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Fprintf(w, "✓ %s", msg)
	} else {
		green.Fprint(w, msg)
	}
}

// Warning prints a warning message in yellow with a warning prefix
func Warning(w io.Writer, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	yellow.Fprintf(w, "warning: %s", msg)
}

// Error creates a formatted error message with title, explanation, and suggestions.
// Prints the formatted error to w and returns a *ReportedError for Cobra.
func Error(w io.Writer, title string, explanation string, suggestions []string) error {
	return ErrorWithContext(w, title, explanation, nil, suggestions)
}

// ErrorWithContext creates a formatted error with context details.
// Context keys are printed in sorted order.
func ErrorWithContext(w io.Writer, title string, explanation string, context map[string]string, suggestions []string) error {
	red.Fprintf(w, "%s\n", title)

	if explanation != "" {
		fmt.Fprintf(w, "\n%s\n", explanation)
	}

	if len(context) > 0 {
		keys := make([]string, 0, len(context))
		for key := range context {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintf(w, "\n")
		for _, key := range keys {
			fmt.Fprintf(w, "  %s: %s\n", key, context[key])
		}
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(w, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(w, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(w, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(w, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return &ReportedError{Title: title}
}
