package usecase

import (
	"context"

	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
)

// Detail returns one goal of the user with its schedule items.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (goal.Goal, error) {
	if sc.UserID == "" {
		return goal.Goal{}, goal.ErrScopeRequired
	}

	g, err := uc.repo.GetGoal(ctx, repo.GetGoalOptions{ID: id, UserID: sc.UserID, WithSchedules: true})
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.Detail GetGoal: %v", err)
		return goal.Goal{}, err
	}
	if g.ID == "" {
		return goal.Goal{}, goal.ErrGoalNotFound
	}
	return g, nil
}

// List returns a page of the user's goals, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input goal.ListInput) (goal.ListOutput, error) {
	if sc.UserID == "" {
		return goal.ListOutput{}, goal.ErrScopeRequired
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(input.Offset, 0)

	goals, total, err := uc.repo.ListGoals(ctx, repo.ListGoalsOptions{
		UserID: sc.UserID,
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "goal/usecase.List ListGoals: %v", err)
		return goal.ListOutput{}, err
	}

	return goal.ListOutput{Goals: goals, Total: total, Limit: limit, Offset: offset}, nil
}
