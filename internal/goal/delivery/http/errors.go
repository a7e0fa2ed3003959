package http

import (
	"errors"
	"net/http"

	"goal-planner/internal/goal"
	pkgErrors "goal-planner/pkg/errors"
)

var (
	errInvalidDate  = pkgErrors.NewHTTPError(http.StatusBadRequest, "dates must be YYYY-MM-DD")
	errInvalidSlot  = pkgErrors.NewHTTPError(http.StatusBadRequest, "preferred_slot must be HH:MM-HH:MM within one day")
	errInvalidState = pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be ACTIVE, COMPLETED or ABANDONED")
	errEmptyDraft   = pkgErrors.NewHTTPError(http.StatusBadRequest, "describe the goal in initial_value, title or description")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, goal.ErrGoalNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, goal.ErrSynthesisInFlight):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, goal.ErrDraftIncomplete),
		errors.Is(err, goal.ErrDraftInvalid),
		errors.Is(err, goal.ErrDurationExceeded):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, goal.ErrOracleUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, goal.ErrOracleUnavailable.Error())
	case errors.Is(err, goal.ErrScopeRequired):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
