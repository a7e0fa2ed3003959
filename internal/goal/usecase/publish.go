package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"goal-planner/internal/goal"
	"goal-planner/pkg/gcalendar"
)

// goalCreatedEvent is published once a goal and its items are stored.
type goalCreatedEvent struct {
	GoalID         string    `json:"goal_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Emoji          string    `json:"emoji"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TotalDays      int       `json:"total_days"`
	BestEffortDays []int     `json:"best_effort_days,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (uc *implUseCase) publishCreated(ctx context.Context, g goal.Goal) {
	ev := goalCreatedEvent{
		GoalID:    g.ID,
		UserID:    g.UserID,
		Title:     g.Title,
		Emoji:     g.Emoji,
		StartDate: g.StartDate.Format(time.DateOnly),
		EndDate:   g.EndDate.Format(time.DateOnly),
		TotalDays: len(g.Schedules),
		CreatedAt: g.CreatedAt,
	}
	for _, it := range g.Schedules {
		if it.BestEffort {
			ev.BestEffortDays = append(ev.BestEffortDays, it.DayNumber)
		}
	}

	if err := uc.publisher.PublishJSON(ctx, uc.cfg.CreatedSubject, ev); err != nil {
		uc.l.Warnf(ctx, "goal/usecase.publishCreated: goal=%s (non-fatal): %v", g.ID, err)
	}
}

// exportToCalendar copies the items of g to the calendar. The first failure
// stops the export; the goal itself is already stored.
func (uc *implUseCase) exportToCalendar(ctx context.Context, g goal.Goal) {
	if uc.calendar == nil || !uc.cfg.ExportEvents {
		return
	}

	exported := 0
	for _, it := range g.Schedules {
		_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     strings.TrimSpace(fmt.Sprintf("%s %s", it.Emoji, it.Title)),
			Description: it.Description,
			StartTime:   it.Interval.Start,
			EndTime:     it.Interval.End,
			Timezone:    uc.dates.Location().String(),
		})
		if err != nil {
			uc.l.Warnf(ctx, "goal/usecase.exportToCalendar: goal=%s stopped at day %d (non-fatal): %v", g.ID, it.DayNumber, err)
			break
		}
		exported++
	}
	uc.l.Infof(ctx, "goal/usecase.exportToCalendar: goal=%s exported %d/%d items", g.ID, exported, len(g.Schedules))
}
