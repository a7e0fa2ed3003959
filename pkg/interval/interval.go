package interval

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DefaultStep is the granularity used when shifting a candidate past busy time.
const DefaultStep = time.Hour

var (
	ErrInvalidInterval = errors.New("interval end must be after start")
	ErrNoSlotFound     = errors.New("no free slot found in search window")
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// New returns [start, end) or ErrInvalidInterval when end is not after start.
func New(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether the two half-open intervals share any instant.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Within reports whether i lies entirely inside outer.
func (i Interval) Within(outer Interval) bool {
	return !i.Start.Before(outer.Start) && !i.End.After(outer.End)
}

// Shift moves both bounds by d.
func (i Interval) Shift(d time.Duration) Interval {
	return Interval{Start: i.Start.Add(d), End: i.End.Add(d)}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// Overlaps is the free-function form of Interval.Overlaps.
func Overlaps(a, b Interval) bool {
	return a.Overlaps(b)
}

// IsFree reports whether candidate overlaps none of busy.
func IsFree(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}

// ShiftToNextFreeSlot advances candidate by step until it overlaps nothing in busy.
// The candidate keeps its duration and must stay inside window; otherwise
// ErrNoSlotFound is returned. A non-positive step falls back to DefaultStep.
func ShiftToNextFreeSlot(candidate Interval, busy []Interval, step time.Duration, window Interval) (Interval, error) {
	if step <= 0 {
		step = DefaultStep
	}
	for c := candidate; !c.End.After(window.End); c = c.Shift(step) {
		if c.Start.Before(window.Start) {
			continue
		}
		if IsFree(c, busy) {
			return c, nil
		}
	}
	return Interval{}, fmt.Errorf("%w: candidate %s within %s", ErrNoSlotFound, candidate, window)
}

// FirstFreeSlot returns the earliest interval of length d inside window that
// overlaps nothing in busy. Start points tried are the window start and the
// end of every busy interval, in chronological order.
func FirstFreeSlot(window Interval, d time.Duration, busy []Interval) (Interval, error) {
	if d <= 0 {
		return Interval{}, ErrInvalidInterval
	}

	starts := []time.Time{window.Start}
	for _, b := range busy {
		if b.End.After(window.Start) && b.End.Before(window.End) {
			starts = append(starts, b.End)
		}
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	for _, s := range starts {
		c := Interval{Start: s, End: s.Add(d)}
		if c.End.After(window.End) {
			break
		}
		if IsFree(c, busy) {
			return c, nil
		}
	}
	return Interval{}, fmt.Errorf("%w: %s slot within %s", ErrNoSlotFound, d, window)
}
