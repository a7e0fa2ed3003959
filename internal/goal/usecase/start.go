package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"goal-planner/internal/busy"
	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/internal/model"
	"goal-planner/internal/schedule"
	"goal-planner/pkg/gcalendar"
	"goal-planner/pkg/interval"
	"goal-planner/pkg/metrics"
)

const (
	eventBuffer = 16

	outcomeDone       = "done"
	outcomeIncomplete = "incomplete"
	outcomeInvalid    = "invalid"
	outcomeFailed     = "failed"
	outcomeCanceled   = "canceled"
)

// Start reserves the user's creation slot and runs the flow in the
// background. Events arrive in stage order and the channel is closed after
// the terminal one. Nothing is stored unless every day was planned.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope, input goal.CreateInput) (<-chan goal.ProgressEvent, error) {
	if sc.UserID == "" {
		return nil, goal.ErrScopeRequired
	}
	if !uc.acquire(sc.UserID) {
		uc.metrics.SynthesisRejected()
		uc.l.Warnf(ctx, "goal/usecase.Start: user=%s already has a goal in flight", sc.UserID)
		return nil, goal.ErrSynthesisInFlight
	}

	events := make(chan goal.ProgressEvent, eventBuffer)
	uc.metrics.SynthesisStarted()
	go func() {
		defer close(events)
		defer uc.release(sc.UserID)
		defer uc.metrics.SynthesisFinished()

		begin := time.Now()
		outcome := uc.run(ctx, sc, input, events)
		uc.metrics.ObserveSynthesis(outcome, time.Since(begin))
	}()
	return events, nil
}

// Create runs Start to completion. A draft that is not valid comes back as
// a *goal.ValidationError.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input goal.CreateInput) (goal.CreateOutput, error) {
	events, err := uc.Start(ctx, sc, input)
	if err != nil {
		return goal.CreateOutput{}, err
	}

	var last *goal.ProgressEvent
	for ev := range events {
		last = &ev
	}
	if last == nil || !last.Stage.Terminal() {
		if err := ctx.Err(); err != nil {
			return goal.CreateOutput{}, err
		}
		return goal.CreateOutput{}, errors.New("goal creation stopped without a result")
	}

	switch last.Stage {
	case goal.StageDone:
		return goal.CreateOutput{Goal: *last.Goal, TotalDays: len(last.Goal.Schedules)}, nil
	case goal.StageIncomplete, goal.StageInvalid:
		return goal.CreateOutput{}, uc.validationError(*last.Result)
	default:
		return goal.CreateOutput{}, last.Err
	}
}

// run drives one creation flow and returns its metrics outcome.
func (uc *implUseCase) run(ctx context.Context, sc model.Scope, input goal.CreateInput, events chan<- goal.ProgressEvent) string {
	emit := func(ev goal.ProgressEvent) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	fail := func(err error) string {
		if ctx.Err() != nil {
			uc.l.Infof(ctx, "goal/usecase.run: user=%s canceled, result discarded", sc.UserID)
			return outcomeCanceled
		}
		uc.l.Errorf(ctx, "goal/usecase.run: user=%s: %v", sc.UserID, err)
		emit(goal.ProgressEvent{Stage: goal.StageFailed, Err: err})
		return outcomeFailed
	}

	if !emit(goal.ProgressEvent{Stage: goal.StageValidating}) {
		return outcomeCanceled
	}
	res, err := uc.Validate(ctx, sc, goal.ValidateInput{Draft: input.Draft})
	if err != nil {
		return fail(err)
	}
	switch res.Status {
	case goal.ResultIncomplete:
		emit(goal.ProgressEvent{Stage: goal.StageIncomplete, Result: &res})
		return outcomeIncomplete
	case goal.ResultInvalid:
		emit(goal.ProgressEvent{Stage: goal.StageInvalid, Result: &res})
		return outcomeInvalid
	}

	start, end := *res.StartDate, *res.EndDate
	set, err := uc.loadBusy(ctx, sc.UserID, start, end)
	if err != nil {
		return fail(err)
	}

	if !emit(goal.ProgressEvent{Stage: goal.StageGenerating}) {
		return outcomeCanceled
	}
	slot := uc.cfg.Schedule.DefaultSlot
	if input.PreferredSlot != nil {
		slot = *input.PreferredSlot
	}
	items, err := uc.synth.Synthesize(ctx, schedule.Input{
		Title:         res.Title,
		Description:   res.Description,
		Emoji:         res.Emoji,
		StartDate:     start,
		EndDate:       end,
		Busy:          set,
		PreferredSlot: input.PreferredSlot,
	}, func(item goal.ScheduleItem) {
		uc.metrics.ObservePlacement(placement(item, slot))
		emit(goal.ProgressEvent{Stage: goal.StageGenerating, Percent: item.ProgressPercent, Item: &item})
	})
	if err != nil {
		return fail(err)
	}
	if ctx.Err() != nil {
		return fail(ctx.Err())
	}

	if !emit(goal.ProgressEvent{Stage: goal.StageSaving, Percent: 100}) {
		return outcomeCanceled
	}
	created, err := uc.repo.CreateGoalWithSchedules(ctx, repo.CreateGoalOptions{Goal: goal.Goal{
		UserID:      sc.UserID,
		Title:       res.Title,
		Description: res.Description,
		Emoji:       res.Emoji,
		StartDate:   start,
		EndDate:     end,
		Status:      goal.StatusActive,
		Schedules:   items,
	}})
	if err != nil {
		return fail(err)
	}
	uc.l.Infof(ctx, "goal/usecase.run: user=%s created goal=%s days=%d", sc.UserID, created.ID, len(created.Schedules))

	uc.publishCreated(ctx, created)
	uc.exportToCalendar(ctx, created)

	emit(goal.ProgressEvent{Stage: goal.StageDone, Percent: 100, Goal: &created})
	return outcomeDone
}

// loadBusy takes one snapshot of everything that blocks [start, end]:
// stored items, calendar events and the recurring windows.
func (uc *implUseCase) loadBusy(ctx context.Context, userID string, start, end time.Time) (busy.Set, error) {
	dateRange := interval.Interval{Start: start, End: end.AddDate(0, 0, 1)}

	var stored, external []busy.Block
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		blocks, err := uc.repo.ListBusyIntervals(gctx, repo.ListBusyOptions{
			UserID: userID,
			From:   dateRange.Start,
			To:     dateRange.End,
		})
		if err != nil {
			return fmt.Errorf("list busy intervals: %w", err)
		}
		stored = blocks
		return nil
	})
	if uc.calendar != nil {
		g.Go(func() error {
			blocks, err := uc.calendarBusy(gctx, dateRange)
			if err != nil {
				uc.l.Warnf(ctx, "goal/usecase.loadBusy: calendar unavailable (non-fatal): %v", err)
				return nil
			}
			external = blocks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return busy.BuildBusySet(append(stored, external...), uc.cfg.Sleep, uc.cfg.WorkingHours, dateRange), nil
}

func (uc *implUseCase) calendarBusy(ctx context.Context, dateRange interval.Interval) ([]busy.Block, error) {
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    dateRange.Start,
		TimeMax:    dateRange.End,
		Location:   uc.dates.Location(),
	})
	if err != nil {
		return nil, err
	}

	blocks := make([]busy.Block, 0, len(events))
	for _, e := range events {
		if e.Transparent || !e.EndTime.After(e.StartTime) {
			continue
		}
		blocks = append(blocks, busy.Block{
			Interval: interval.Interval{Start: e.StartTime, End: e.EndTime},
			Kind:     busy.KindExistingSchedule,
			Label:    e.Summary,
		})
	}
	return blocks, nil
}

func placement(item goal.ScheduleItem, slot interval.DailySlot) string {
	switch {
	case item.BestEffort:
		return metrics.PlacementBestEffort
	case item.Interval.Start.Equal(slot.On(item.Date).Start):
		return metrics.PlacementPreferred
	default:
		return metrics.PlacementShifted
	}
}
