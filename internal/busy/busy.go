package busy

import (
	"sort"
	"time"

	"goal-planner/pkg/interval"
)

// BuildBusySet flattens existing schedules and the recurring sleep and
// working-hours windows into one sorted set covering dateRange. Recurring
// windows that cross midnight become two blocks split at the day boundary.
// sleep and work are optional.
func BuildBusySet(existing []Block, sleep *interval.DailySlot, work *WorkingHours, dateRange interval.Interval) Set {
	set := make(Set, 0, len(existing))
	for _, b := range existing {
		if !b.End.After(b.Start) || !b.Overlaps(dateRange) {
			continue
		}
		if b.Kind == "" {
			b.Kind = KindExistingSchedule
		}
		set = append(set, b)
	}

	// Start a day early so a window that began the night before the range is kept.
	first := interval.Day(dateRange.Start).Start.AddDate(0, 0, -1)
	for day := first; day.Before(dateRange.End); day = day.AddDate(0, 0, 1) {
		if sleep != nil {
			set = appendWindow(set, sleep.On(day), KindSleep, dateRange)
		}
		if work != nil && work.appliesOn(day.Weekday()) {
			set = appendWindow(set, work.Slot.On(day), KindWorkingHours, dateRange)
		}
	}

	sort.SliceStable(set, func(i, j int) bool {
		if set[i].Start.Equal(set[j].Start) {
			return set[i].End.Before(set[j].End)
		}
		return set[i].Start.Before(set[j].Start)
	})
	return set
}

func appendWindow(set Set, w interval.Interval, kind Kind, dateRange interval.Interval) Set {
	for _, part := range splitAtMidnight(w) {
		if part.Overlaps(dateRange) {
			set = append(set, Block{Interval: part, Kind: kind})
		}
	}
	return set
}

func splitAtMidnight(w interval.Interval) []interval.Interval {
	midnight := interval.Day(w.Start).End
	if !w.End.After(midnight) {
		return []interval.Interval{w}
	}
	return []interval.Interval{
		{Start: w.Start, End: midnight},
		{Start: midnight, End: w.End},
	}
}

// IsFree reports whether iv overlaps no block in set.
func IsFree(iv interval.Interval, set Set) bool {
	for _, b := range set {
		if iv.Overlaps(b.Interval) {
			return false
		}
	}
	return true
}

// OnDay returns the blocks overlapping the calendar day of day.
func (s Set) OnDay(day time.Time) Set {
	d := interval.Day(day)
	var out Set
	for _, b := range s {
		if b.Overlaps(d) {
			out = append(out, b)
		}
	}
	return out
}

// Intervals drops the tags.
func (s Set) Intervals() []interval.Interval {
	out := make([]interval.Interval, len(s))
	for i, b := range s {
		out[i] = b.Interval
	}
	return out
}

// Overlapping returns the blocks that overlap iv.
func (s Set) Overlapping(iv interval.Interval) Set {
	var out Set
	for _, b := range s {
		if iv.Overlaps(b.Interval) {
			out = append(out, b)
		}
	}
	return out
}
