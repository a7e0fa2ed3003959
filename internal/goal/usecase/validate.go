package usecase

import (
	"context"

	"goal-planner/internal/goal"
	"goal-planner/internal/model"
)

// Validate reads the free text of the draft with the oracle when fields are
// missing, then runs the validation rules against today.
func (uc *implUseCase) Validate(ctx context.Context, sc model.Scope, input goal.ValidateInput) (goal.ValidationResult, error) {
	if sc.UserID == "" {
		return goal.ValidationResult{}, goal.ErrScopeRequired
	}

	draft := input.Draft
	if uc.oracle != nil && needsExtraction(draft) {
		extracted, err := uc.extractDraft(ctx, sc.UserID, draft)
		if err != nil {
			return goal.ValidationResult{}, err
		}
		draft = draft.Merge(extracted)
	}

	res := uc.validator.Validate(draft, uc.today())
	uc.metrics.ObserveValidation(string(res.Status))
	uc.l.Infof(ctx, "goal/usecase.Validate: user=%s status=%s missing=%v", sc.UserID, res.Status, res.MissingFields)
	return res, nil
}

// validationError turns a non-valid result into the error Create returns.
func (uc *implUseCase) validationError(res goal.ValidationResult) error {
	err := goal.ErrDraftInvalid
	switch {
	case res.Status == goal.ResultIncomplete:
		err = goal.ErrDraftIncomplete
	case res.StartDate != nil && res.EndDate != nil &&
		res.EndDate.After(res.StartDate.AddDate(0, uc.validator.MaxMonths(), 0)):
		err = goal.ErrDurationExceeded
	}
	return &goal.ValidationError{Result: res, Err: err}
}
