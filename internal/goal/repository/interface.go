package repository

import (
	"context"

	"goal-planner/internal/busy"
	"goal-planner/internal/goal"
)

// Repository is the composed interface for the goal domain data store.
type Repository interface {
	GoalRepository
	ScheduleRepository
}

// GoalRepository persists goals together with their schedule items.
type GoalRepository interface {
	// CreateGoalWithSchedules stores the goal and all of its items in one
	// transaction; either everything is written or nothing is.
	CreateGoalWithSchedules(ctx context.Context, opt CreateGoalOptions) (goal.Goal, error)
	// GetGoal returns a zero Goal (ID == "") when nothing matches.
	GetGoal(ctx context.Context, opt GetGoalOptions) (goal.Goal, error)
	ListGoals(ctx context.Context, opt ListGoalsOptions) ([]goal.Goal, int, error)
}

// ScheduleRepository exposes stored schedule items as busy time.
type ScheduleRepository interface {
	ListBusyIntervals(ctx context.Context, opt ListBusyOptions) ([]busy.Block, error)
}
