package goal

import (
	"context"

	"goal-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Validate runs extraction (when the draft has free text) and validation.
	Validate(ctx context.Context, sc model.Scope, input ValidateInput) (ValidationResult, error)

	// Start begins a goal-creation run and streams its progress. The channel is
	// closed after a terminal event. It fails fast with ErrSynthesisInFlight.
	Start(ctx context.Context, sc model.Scope, input CreateInput) (<-chan ProgressEvent, error)
	// Create is Start drained to completion.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	Detail(ctx context.Context, sc model.Scope, id string) (Goal, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
