package interval

import (
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// DailySlot is a time-of-day range, in minutes after midnight.
// End <= Start means the slot runs past midnight into the next day.
type DailySlot struct {
	StartMinute int
	EndMinute   int
}

// ParseDailySlot parses "HH:MM-HH:MM".
func ParseDailySlot(s string) (DailySlot, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return DailySlot{}, fmt.Errorf("invalid daily slot %q: want HH:MM-HH:MM", s)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return DailySlot{}, fmt.Errorf("invalid daily slot %q: %w", s, err)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return DailySlot{}, fmt.Errorf("invalid daily slot %q: %w", s, err)
	}
	if start == end {
		return DailySlot{}, fmt.Errorf("invalid daily slot %q: empty range", s)
	}
	return DailySlot{StartMinute: start, EndMinute: end}, nil
}

// MustParseDailySlot is ParseDailySlot for constants; it panics on bad input.
func MustParseDailySlot(s string) DailySlot {
	slot, err := ParseDailySlot(s)
	if err != nil {
		panic(err)
	}
	return slot
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (s DailySlot) CrossesMidnight() bool {
	return s.EndMinute <= s.StartMinute
}

func (s DailySlot) Duration() time.Duration {
	m := s.EndMinute - s.StartMinute
	if s.CrossesMidnight() {
		m += minutesPerDay
	}
	return time.Duration(m) * time.Minute
}

// On anchors the slot on the calendar day of day, in day's location.
// A slot that crosses midnight ends on the following day.
func (s DailySlot) On(day time.Time) Interval {
	y, m, d := day.Date()
	loc := day.Location()
	start := time.Date(y, m, d, s.StartMinute/60, s.StartMinute%60, 0, 0, loc)
	endDay := d
	if s.CrossesMidnight() {
		endDay++
	}
	end := time.Date(y, m, endDay, s.EndMinute/60, s.EndMinute%60, 0, 0, loc)
	return Interval{Start: start, End: end}
}

func (s DailySlot) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.StartMinute/60, s.StartMinute%60, s.EndMinute/60, s.EndMinute%60)
}

// Day returns [midnight, next midnight) for the calendar day of t.
func Day(t time.Time) Interval {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return Interval{Start: start, End: time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())}
}
