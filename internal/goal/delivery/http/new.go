package http

import (
	"time"

	"goal-planner/internal/goal"
	"goal-planner/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  goal.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for the goal domain. Dates in requests are
// read in loc.
func New(l log.Logger, uc goal.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
