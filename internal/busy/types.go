package busy

import (
	"time"

	"goal-planner/pkg/interval"
)

// Kind tags where a busy block came from.
type Kind string

const (
	KindExistingSchedule Kind = "EXISTING_SCHEDULE"
	KindSleep            Kind = "SLEEP"
	KindWorkingHours     Kind = "WORKING_HOURS"
)

// Block is a span during which nothing new may be scheduled.
type Block struct {
	interval.Interval
	Kind Kind `json:"kind"`
	// Label is a human description, e.g. the title of the existing event.
	Label string `json:"label,omitempty"`
}

// WorkingHours is a recurring window applied only on the listed weekdays.
type WorkingHours struct {
	Slot     interval.DailySlot
	Weekdays []time.Weekday
}

func (w WorkingHours) appliesOn(day time.Weekday) bool {
	for _, wd := range w.Weekdays {
		if wd == day {
			return true
		}
	}
	return false
}

// Set is a chronologically sorted snapshot of busy blocks.
type Set []Block
