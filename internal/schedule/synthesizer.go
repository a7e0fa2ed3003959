package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goal-planner/internal/busy"
	"goal-planner/internal/goal"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/interval"
	"goal-planner/pkg/log"
)

// DefaultSlot is used when neither the caller nor the config chooses a slot.
var DefaultSlot = interval.DailySlot{StartMinute: 9 * 60, EndMinute: 10 * 60}

var (
	ErrInvalidRange   = errors.New("schedule: end date before start date")
	ErrInvalidSlot    = errors.New("schedule: preferred slot must not cross midnight")
	ErrContentMissing = errors.New("schedule: content source returned the wrong number of days")
)

type Config struct {
	DefaultSlot interval.DailySlot
	// Step is how far a conflicting slot is moved each try.
	Step time.Duration
}

// Synthesizer turns a validated goal into one schedule item per day.
type Synthesizer struct {
	l           log.Logger
	content     ContentSource
	defaultSlot interval.DailySlot
	step        time.Duration
}

func New(l log.Logger, content ContentSource, cfg Config) *Synthesizer {
	if cfg.DefaultSlot == (interval.DailySlot{}) {
		cfg.DefaultSlot = DefaultSlot
	}
	if cfg.Step <= 0 {
		cfg.Step = interval.DefaultStep
	}
	if content == nil {
		content = TemplateContent{}
	}
	return &Synthesizer{l: l, content: content, defaultSlot: cfg.DefaultSlot, step: cfg.Step}
}

// Input is a validated goal plus the busy snapshot to plan around.
type Input struct {
	Title         string
	Description   string
	Emoji         string
	StartDate     time.Time
	EndDate       time.Time
	Busy          busy.Set
	PreferredSlot *interval.DailySlot
}

// Synthesize builds the plan for every date in [StartDate, EndDate]. onItem,
// when set, is called with each item in day order as soon as it is built.
// Days without a free slot keep the preferred slot and are flagged BestEffort.
func (s *Synthesizer) Synthesize(ctx context.Context, in Input, onItem func(goal.ScheduleItem)) ([]goal.ScheduleItem, error) {
	if in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidRange
	}
	slot := s.defaultSlot
	if in.PreferredSlot != nil {
		slot = *in.PreferredSlot
	}
	if slot.CrossesMidnight() {
		return nil, ErrInvalidSlot
	}

	n := datemath.DaysInclusive(in.StartDate, in.EndDate)
	days := make([]Day, n)
	for i := range days {
		days[i] = Day{Number: i + 1, Date: interval.Day(in.StartDate.AddDate(0, 0, i)).Start}
	}

	contents, err := s.content.Generate(ctx, ContentRequest{
		Title:       in.Title,
		Description: in.Description,
		Emoji:       in.Emoji,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}, days)
	if err != nil {
		return nil, err
	}
	if len(contents) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrContentMissing, len(contents), n)
	}

	progress := AssignProgress(n)
	items := make([]goal.ScheduleItem, 0, n)
	for i, d := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		iv, bestEffort := s.placeSlot(d.Date, slot, in.Busy)
		item := goal.ScheduleItem{
			DayNumber:       d.Number,
			Date:            d.Date,
			Interval:        iv,
			Title:           contents[i].Title,
			Description:     contents[i].Description,
			Emoji:           in.Emoji,
			ProgressPercent: progress[i],
			BestEffort:      bestEffort,
		}
		if bestEffort {
			item.Warning = fmt.Sprintf("no free %s slot on %s, kept %s", slot.Duration(), d.Date.Format(time.DateOnly), slot)
			s.l.Warnf(ctx, "schedule.Synthesize: day %d %s", d.Number, item.Warning)
		}

		items = append(items, item)
		if onItem != nil {
			onItem(item)
		}
	}

	return items, nil
}

// placeSlot anchors slot on date and moves it off busy time: first by
// stepping forward, then by taking the earliest free gap of the day. When
// the whole day is taken the anchored slot is returned with bestEffort set.
func (s *Synthesizer) placeSlot(date time.Time, slot interval.DailySlot, set busy.Set) (interval.Interval, bool) {
	candidate := slot.On(date)
	window := interval.Day(date)
	dayBusy := set.OnDay(date).Intervals()

	iv, err := interval.ShiftToNextFreeSlot(candidate, dayBusy, s.step, window)
	if err == nil {
		return iv, false
	}
	iv, err = interval.FirstFreeSlot(window, candidate.Duration(), dayBusy)
	if err == nil {
		return iv, false
	}
	return candidate, true
}
