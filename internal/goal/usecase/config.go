package usecase

import (
	"fmt"
	"strings"
	"time"

	"goal-planner/config"
	"goal-planner/internal/busy"
	"goal-planner/internal/schedule"
	"goal-planner/pkg/interval"
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday, "minggu": time.Sunday,
	"monday": time.Monday, "mon": time.Monday, "senin": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "selasa": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "rabu": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "kamis": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "jumat": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "sabtu": time.Saturday,
}

// ConfigFromPlanner converts the planner section of the service config.
// Empty sleep or working-hours windows are left disabled.
func ConfigFromPlanner(p config.PlannerConfig, cal config.GoogleCalendarConfig, subject string) (Config, error) {
	cfg := Config{
		OracleRetries:    p.OracleRetries,
		UseOracleContent: p.UseLLMContent,
		CreatedSubject:   subject,
		CalendarID:       cal.CalendarID,
		ExportEvents:     cal.ExportEvents,
	}

	if p.DefaultSlot != "" {
		slot, err := interval.ParseDailySlot(p.DefaultSlot)
		if err != nil {
			return Config{}, fmt.Errorf("planner.default_slot: %w", err)
		}
		if slot.CrossesMidnight() {
			return Config{}, fmt.Errorf("planner.default_slot: %w", schedule.ErrInvalidSlot)
		}
		cfg.Schedule.DefaultSlot = slot
	}
	if p.SlotStep != "" {
		step, err := time.ParseDuration(p.SlotStep)
		if err != nil || step <= 0 {
			return Config{}, fmt.Errorf("planner.slot_step: invalid duration %q", p.SlotStep)
		}
		cfg.Schedule.Step = step
	}

	if p.SleepWindow != "" {
		sleep, err := interval.ParseDailySlot(p.SleepWindow)
		if err != nil {
			return Config{}, fmt.Errorf("planner.sleep_window: %w", err)
		}
		cfg.Sleep = &sleep
	}
	if p.WorkingHours != "" {
		slot, err := interval.ParseDailySlot(p.WorkingHours)
		if err != nil {
			return Config{}, fmt.Errorf("planner.working_hours: %w", err)
		}
		days, err := parseWeekdays(p.WorkingWeekdays)
		if err != nil {
			return Config{}, err
		}
		cfg.WorkingHours = &busy.WorkingHours{Slot: slot, Weekdays: days}
	}

	return cfg, nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("planner.working_weekdays: unknown weekday %q", name)
		}
		days = append(days, wd)
	}
	return days, nil
}
