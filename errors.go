package zulu

import (
	"fmt"
	"strings"
)

// ParseAttempt records one candidate format that failed to match an input,
// along with the reason it was rejected. Attempts are accumulated while
// trying an ordered list of formats and surfaced together once every
// candidate has been exhausted.
type ParseAttempt struct {
	Format string
	Reason string
}

// ParseError is returned when an input string matches none of the attempted
// formats, or when an explicit UTC offset is outside the accepted range. It
// retains the original input and every attempt made so the message can
// enumerate what was tried.
type ParseError struct {
	Input    string
	Reason   string
	Attempts []ParseAttempt
}

func (e *ParseError) Error() string {
	if len(e.Attempts) == 0 {
		if e.Reason != "" {
			return e.Reason
		}
		return fmt.Sprintf("value %q could not be parsed", e.Input)
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = fmt.Sprintf("%q (%s)", a.Format, a.Reason)
	}
	return fmt.Sprintf("value %q does not match any format in %s",
		e.Input, strings.Join(parts, ", "))
}

// ValueError is returned when a structurally well-formed but semantically
// invalid argument is supplied by the caller, such as an unrecognized
// timezone name passed as the default zone. It is deliberately distinct from
// ParseError: a ValueError reflects misuse of the API contract, not a
// data-quality problem in the parsed string.
type ValueError struct {
	Reason string
	Cause  error
}

func (e *ValueError) Error() string {
	if e.Cause != nil {
		return e.Reason + ": " + e.Cause.Error()
	}
	return e.Reason
}

func (e *ValueError) Unwrap() error { return e.Cause }
