package goal

import (
	"errors"
	"strings"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrSynthesisInFlight = errors.New("a goal is already being created for this user")
	ErrDraftIncomplete   = errors.New("goal draft is incomplete")
	ErrDurationExceeded  = errors.New("goal duration exceeds 6 months")
	ErrDraftInvalid      = errors.New("goal draft is invalid")
	ErrOracleUnavailable = errors.New("could not reach the planning assistant, please try again")
	ErrScopeRequired     = errors.New("user scope is required")
)

// ValidationError carries a non-valid ValidationResult out of Create.
// Err is one of ErrDraftIncomplete, ErrDraftInvalid or ErrDurationExceeded.
type ValidationError struct {
	Result ValidationResult
	Err    error
}

func (e *ValidationError) Error() string {
	detail := e.Result.Reason
	if len(e.Result.Messages) > 0 {
		detail = strings.Join(e.Result.Messages, "; ")
	}
	if detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + detail
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
