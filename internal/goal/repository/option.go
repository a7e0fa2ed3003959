package repository

import (
	"time"

	"goal-planner/internal/goal"
)

// CreateGoalOptions carries a fully synthesized goal. Empty IDs are generated.
type CreateGoalOptions struct {
	Goal goal.Goal
}

// GetGoalOptions selects one goal. UserID scopes the lookup to its owner.
type GetGoalOptions struct {
	ID     string
	UserID string
	// WithSchedules loads the goal's items as well.
	WithSchedules bool
}

// ListGoalsOptions holds filter and pagination parameters for listing goals.
type ListGoalsOptions struct {
	UserID string
	Status goal.Status
	Limit  int
	Offset int
}

// ListBusyOptions selects the items of a user's active goals overlapping [From, To).
type ListBusyOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}
