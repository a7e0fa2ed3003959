package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative date phrases in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Jakarta"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	inDurationRe  = regexp.MustCompile(`^(?:in|dalam)\s+(\S+)\s+(days?|weeks?|months?|hari|minggu|pekan|bulan)$`)
	laterRe       = regexp.MustCompile(`^(\S+)\s+(hari|minggu|pekan|bulan)\s+lagi$`)
	nextWeekdayRe = regexp.MustCompile(`^next\s+(\w+)$`)
	idWeekdayRe   = regexp.MustCompile(`^(?:hari\s+)?(\w+)\s+depan$`)
)

// ResolveRelativePhrase maps a relative phrase to the start of a concrete day,
// anchored on ref. Anything outside the known vocabulary yields ErrUnresolvedDate.
func (p *Parser) ResolveRelativePhrase(phrase string, ref time.Time) (time.Time, error) {
	relative := normalize(phrase)
	base := p.StartOfDay(ref)

	switch relative {
	case "today", "hari ini", "sekarang":
		return base, nil
	case "tomorrow", "besok", "besok hari":
		return base.AddDate(0, 0, 1), nil
	case "day after tomorrow", "lusa":
		return base.AddDate(0, 0, 2), nil
	case "yesterday", "kemarin":
		return base.AddDate(0, 0, -1), nil
	case "next week", "minggu depan", "pekan depan":
		return base.AddDate(0, 0, 7), nil
	case "next month", "bulan depan":
		return base.AddDate(0, 1, 0), nil
	}

	if m := inDurationRe.FindStringSubmatch(relative); m != nil {
		return p.addAmount(base, m[1], m[2], phrase)
	}
	if m := laterRe.FindStringSubmatch(relative); m != nil {
		return p.addAmount(base, m[1], m[2], phrase)
	}
	if m := nextWeekdayRe.FindStringSubmatch(relative); m != nil {
		if wd, ok := weekdaysEN[m[1]]; ok {
			return nextWeekday(base, wd), nil
		}
	}
	if m := idWeekdayRe.FindStringSubmatch(relative); m != nil {
		if wd, ok := weekdaysID[m[1]]; ok {
			return nextWeekday(base, wd), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnresolvedDate, phrase)
}

func (p *Parser) addAmount(base time.Time, amount, unit, phrase string) (time.Time, error) {
	n, ok := parseNumeral(amount)
	if !ok || n <= 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnresolvedDate, phrase)
	}
	u, _ := parseUnit(unit)
	return Duration{Value: n, Unit: u}.AddTo(base), nil
}

func nextWeekday(base time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// ParseDate parses a YYYY-MM-DD date in the parser's timezone.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnresolvedDate, s)
	}
	return t, nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

var weekdaysEN = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var weekdaysID = map[string]time.Weekday{
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"sabtu":  time.Saturday,
	"minggu": time.Sunday,
}

var numeralWords = map[string]int{
	"satu": 1, "dua": 2, "tiga": 3, "empat": 4, "lima": 5, "enam": 6,
	"tujuh": 7, "delapan": 8, "sembilan": 9, "sepuluh": 10, "sebelas": 11, "dua belas": 12,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

func parseNumeral(s string) (int, bool) {
	s = normalize(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := numeralWords[s]
	return n, ok
}

func parseUnit(s string) (Unit, Lang) {
	switch normalize(s) {
	case "hari":
		return UnitDays, LangID
	case "minggu", "pekan":
		return UnitWeeks, LangID
	case "bulan":
		return UnitMonths, LangID
	case "week", "weeks":
		return UnitWeeks, LangEN
	case "month", "months":
		return UnitMonths, LangEN
	default:
		return UnitDays, LangEN
	}
}
