package oracle

import (
	"errors"
	"fmt"
)

// ParseError reports an oracle payload that could not be read as the expected shape.
type ParseError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oracle: parse error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("oracle: parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func newParseError(reason, raw string, err error) *ParseError {
	const maxRaw = 512
	if len(raw) > maxRaw {
		raw = raw[:maxRaw] + "..."
	}
	return &ParseError{Reason: reason, Raw: raw, Err: err}
}
