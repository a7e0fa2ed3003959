package busy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/internal/busy"
	"goal-planner/pkg/interval"
)

var jakarta = mustLoad("Asia/Jakarta")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func at(month time.Month, day, hour, min int) time.Time {
	return time.Date(2025, month, day, hour, min, 0, 0, jakarta)
}

func dateRange(fromDay, toDay int) interval.Interval {
	return interval.Interval{Start: at(8, fromDay, 0, 0), End: at(8, toDay+1, 0, 0)}
}

func TestBuildBusySet_SleepCrossingMidnight(t *testing.T) {
	sleep := interval.MustParseDailySlot("22:00-06:00")
	set := busy.BuildBusySet(nil, &sleep, nil, dateRange(4, 4))

	// Night before (00:00-06:00 part), same night (22:00-24:00 part).
	require.Len(t, set, 2)
	assert.Equal(t, interval.Interval{Start: at(8, 4, 0, 0), End: at(8, 4, 6, 0)}, set[0].Interval)
	assert.Equal(t, interval.Interval{Start: at(8, 4, 22, 0), End: at(8, 5, 0, 0)}, set[1].Interval)
	for _, b := range set {
		assert.Equal(t, busy.KindSleep, b.Kind)
	}

	candidate := interval.Interval{Start: at(8, 4, 23, 0), End: at(8, 4, 23, 30)}
	assert.False(t, busy.IsFree(candidate, set))

	early := interval.Interval{Start: at(8, 4, 5, 0), End: at(8, 4, 5, 30)}
	assert.False(t, busy.IsFree(early, set))

	morning := interval.Interval{Start: at(8, 4, 6, 0), End: at(8, 4, 7, 0)}
	assert.True(t, busy.IsFree(morning, set))
}

func TestBuildBusySet_WorkingHoursOnWeekdaysOnly(t *testing.T) {
	work := busy.WorkingHours{
		Slot:     interval.MustParseDailySlot("09:00-17:00"),
		Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}
	// 2025-08-01 is a Friday; the range covers Fri, Sat, Sun, Mon.
	set := busy.BuildBusySet(nil, nil, &work, dateRange(1, 4))

	require.Len(t, set, 2)
	assert.Equal(t, at(8, 1, 9, 0), set[0].Start)
	assert.Equal(t, at(8, 4, 9, 0), set[1].Start)
	assert.Equal(t, busy.KindWorkingHours, set[0].Kind)

	saturday := interval.Interval{Start: at(8, 2, 10, 0), End: at(8, 2, 11, 0)}
	assert.True(t, busy.IsFree(saturday, set))
}

func TestBuildBusySet_ExistingSchedules(t *testing.T) {
	existing := []busy.Block{
		{Interval: interval.Interval{Start: at(8, 3, 9, 0), End: at(8, 3, 10, 0)}, Label: "standup"},
		{Interval: interval.Interval{Start: at(9, 20, 9, 0), End: at(9, 20, 10, 0)}},
		{Interval: interval.Interval{Start: at(8, 2, 9, 0), End: at(8, 2, 9, 0)}},
		{Interval: interval.Interval{Start: at(8, 1, 9, 0), End: at(8, 1, 10, 0)}, Kind: busy.KindExistingSchedule},
	}
	set := busy.BuildBusySet(existing, nil, nil, dateRange(1, 5))

	require.Len(t, set, 2, "out-of-range and empty blocks are dropped")
	assert.Equal(t, at(8, 1, 9, 0), set[0].Start, "sorted by start")
	assert.Equal(t, busy.KindExistingSchedule, set[1].Kind, "kind defaults to existing schedule")
	assert.Equal(t, "standup", set[1].Label)
}

func TestSet_OnDayAndOverlapping(t *testing.T) {
	sleep := interval.MustParseDailySlot("22:00-06:00")
	set := busy.BuildBusySet(nil, &sleep, nil, dateRange(1, 3))

	day2 := set.OnDay(at(8, 2, 12, 0))
	require.Len(t, day2, 2)
	assert.Equal(t, at(8, 2, 0, 0), day2[0].Start)
	assert.Equal(t, at(8, 2, 22, 0), day2[1].Start)

	hits := set.Overlapping(interval.Interval{Start: at(8, 2, 21, 0), End: at(8, 3, 1, 0)})
	assert.Len(t, hits, 2)
	assert.Len(t, set.Intervals(), len(set))
}
