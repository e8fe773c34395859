package resolver

import (
	"fmt"
	"strings"
)

// maxListed caps how many candidates FormatAmbiguousError prints.
const maxListed = 10

// Candidate is a name that user input can resolve to.
// Aliases only match exactly; prefixes are matched against Name.
type Candidate struct {
	Name    string
	Aliases []string
}

// Names returns the canonical names of the candidates in declaration order.
func Names(candidates []Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	return names
}

// Resolve resolves user input to the canonical name of exactly one candidate.
// Matching is case-insensitive.
//
// The function handles three cases:
// 1. Input equals a name or an alias - that candidate wins outright
// 2. Input is a prefix of exactly one name - that candidate is returned
// 3. Input is a prefix of no name, or of several - NotFoundError or AmbiguousError
//
// kind names what is being resolved ("unit", "preset", ...) and is only used in errors.
func Resolve(kind, input string, candidates []Candidate) (string, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "" {
		return "", &NotFoundError{Kind: kind, Input: input, Names: Names(candidates)}
	}

	for _, c := range candidates {
		if c.Name == name {
			return c.Name, nil
		}
		for _, alias := range c.Aliases {
			if alias == name {
				return c.Name, nil
			}
		}
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c.Name, name) {
			matches = append(matches, c.Name)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Kind: kind, Input: input, Names: Names(candidates)}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{Kind: kind, Input: input, Matches: matches}
	}
}

// NotFoundError indicates no candidate matched the input.
type NotFoundError struct {
	Kind  string
	Input string
	Names []string // every possible name, for suggestions
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching '%s'", e.Kind, e.Input)
}

// AmbiguousError indicates multiple candidates matched the input.
type AmbiguousError struct {
	Kind    string
	Input   string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous %s '%s' matches %d names: %s", e.Kind, e.Input, len(e.Matches), strings.Join(e.Matches, ", "))
}

// FormatAmbiguousError creates a user-friendly message for ambiguous input.
// Lists all matching names (up to 10, then "...and N more").
func FormatAmbiguousError(err *AmbiguousError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s' matches %d %s names:\n", err.Input, len(err.Matches), err.Kind)

	displayCount := len(err.Matches)
	if displayCount > maxListed {
		displayCount = maxListed
	}
	for i := 0; i < displayCount; i++ {
		fmt.Fprintf(&b, "  %s\n", err.Matches[i])
	}
	if len(err.Matches) > maxListed {
		fmt.Fprintf(&b, "  ...and %d more\n", len(err.Matches)-maxListed)
	}

	b.WriteString("\nUse a longer prefix to pick one.")
	return b.String()
}
