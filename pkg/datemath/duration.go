package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Classify buckets the span from start to end. Whole calendar months win
// ("27 Aug → 27 Sep" is 1 month), then whole weeks, then days.
func Classify(start, end time.Time) Duration {
	if months := WholeMonths(start, end); months > 0 && sameDay(start.AddDate(0, months, 0), end) {
		return Duration{Value: months, Unit: UnitMonths}
	}

	days := DaysBetween(start, end)
	if days > 0 && days%7 == 0 {
		return Duration{Value: days / 7, Unit: UnitWeeks}
	}
	return Duration{Value: days, Unit: UnitDays}
}

// WholeMonths counts complete calendar months from start to end by comparing
// year, month and day components.
func WholeMonths(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	months := (ey-sy)*12 + int(em-sm)
	if ed < sd {
		months--
	}
	return months
}

// DaysBetween counts calendar days from start to end, ignoring time of day and DST.
func DaysBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	a := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// DaysInclusive is the number of calendar dates in [start, end].
func DaysInclusive(start, end time.Time) int {
	return DaysBetween(start, end) + 1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

const numeralPattern = `\d+|dua belas|sebelas|sepuluh|sembilan|delapan|tujuh|enam|lima|empat|tiga|dua|satu|twelve|eleven|ten|nine|eight|seven|six|five|four|three|two|one`

var durationPhraseRe = regexp.MustCompile(`(?i)\b(` + numeralPattern + `)\s+(hari|minggu|pekan|bulan|days?|weeks?|months?)\b`)

// FindDurationPhrase returns the first duration phrase in text, e.g. "3 bulan"
// in "selama 3 bulan". Relative offsets such as "in 3 days" or "3 hari lagi"
// describe a date, not a span, and are skipped.
func FindDurationPhrase(text string) (Phrase, bool) {
	for _, loc := range durationPhraseRe.FindAllStringSubmatchIndex(text, -1) {
		before := strings.ToLower(strings.TrimRight(text[:loc[0]], " "))
		if strings.HasSuffix(before, " in") || before == "in" || strings.HasSuffix(before, "dalam") {
			continue
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimLeft(text[loc[1]:], " ")), "lagi") {
			continue
		}

		n, ok := parseNumeral(text[loc[2]:loc[3]])
		if !ok || n <= 0 {
			continue
		}
		unit, lang := parseUnit(text[loc[4]:loc[5]])
		return Phrase{
			Duration: Duration{Value: n, Unit: unit},
			Lang:     lang,
			Start:    loc[0],
			End:      loc[1],
		}, true
	}
	return Phrase{}, false
}

// ReconcileTitleDuration rewrites the duration phrase in title to match actual.
// Titles without a phrase are returned unchanged. Applying it twice is the same
// as applying it once.
func ReconcileTitleDuration(title string, actual Duration) string {
	if actual.Value <= 0 {
		return title
	}
	p, ok := FindDurationPhrase(title)
	if !ok {
		return title
	}
	return title[:p.Start] + FormatDuration(actual, p.Lang) + title[p.End:]
}

// FormatDuration renders d as "<n> <unit>" in the given language.
func FormatDuration(d Duration, lang Lang) string {
	if lang == LangID {
		unit := map[Unit]string{UnitDays: "hari", UnitWeeks: "minggu", UnitMonths: "bulan"}[d.Unit]
		return fmt.Sprintf("%d %s", d.Value, unit)
	}
	unit := map[Unit]string{UnitDays: "day", UnitWeeks: "week", UnitMonths: "month"}[d.Unit]
	if d.Value != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", d.Value, unit)
}

var startPhraseRe = regexp.MustCompile(`(?i)\b(?:mulai|dimulai|starting|start|from|dari)\s+(hari ini|besok|lusa|minggu depan|pekan depan|bulan depan|today|tomorrow|next week|next month|next \w+|\w+ depan|in \S+ \w+|dalam \S+ \w+|\S+ \w+ lagi)`)

// FindStartPhrase returns the relative phrase following a start keyword,
// e.g. "besok" in "mulai besok".
func FindStartPhrase(text string) (string, bool) {
	m := startPhraseRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
