package datemath_test

import (
	"testing"
	"time"

	"goal-planner/pkg/datemath"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       datemath.Duration
	}{
		{"one calendar month", date(2025, 8, 27), date(2025, 9, 27), datemath.Duration{Value: 1, Unit: datemath.UnitMonths}},
		{"six months", date(2025, 1, 1), date(2025, 7, 1), datemath.Duration{Value: 6, Unit: datemath.UnitMonths}},
		{"february month", date(2025, 1, 15), date(2025, 2, 15), datemath.Duration{Value: 1, Unit: datemath.UnitMonths}},
		{"month plus days falls to weeks", date(2025, 8, 27), date(2025, 10, 1), datemath.Duration{Value: 5, Unit: datemath.UnitWeeks}},
		{"month plus odd days falls to days", date(2025, 8, 27), date(2025, 10, 2), datemath.Duration{Value: 36, Unit: datemath.UnitDays}},
		{"two weeks", date(2025, 8, 1), date(2025, 8, 15), datemath.Duration{Value: 2, Unit: datemath.UnitWeeks}},
		{"ten days", date(2025, 8, 1), date(2025, 8, 11), datemath.Duration{Value: 10, Unit: datemath.UnitDays}},
		{"same day", date(2025, 8, 1), date(2025, 8, 1), datemath.Duration{Value: 0, Unit: datemath.UnitDays}},
		{"jan 31 to feb 28 is four weeks", date(2025, 1, 31), date(2025, 2, 28), datemath.Duration{Value: 4, Unit: datemath.UnitWeeks}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.Classify(tt.start, tt.end); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysInclusive(t *testing.T) {
	if got := datemath.DaysInclusive(date(2025, 8, 27), date(2025, 9, 27)); got != 32 {
		t.Errorf("DaysInclusive() = %d, want 32", got)
	}
	if got := datemath.DaysInclusive(date(2025, 8, 1), date(2025, 8, 1)); got != 1 {
		t.Errorf("DaysInclusive() = %d, want 1", got)
	}
}

func TestFindDurationPhrase(t *testing.T) {
	tests := []struct {
		text   string
		want   datemath.Duration
		lang   datemath.Lang
		wantOK bool
	}{
		{"Tadabur Alquran selama 2 bulan", datemath.Duration{Value: 2, Unit: datemath.UnitMonths}, datemath.LangID, true},
		{"belajar gitar tiga minggu", datemath.Duration{Value: 3, Unit: datemath.UnitWeeks}, datemath.LangID, true},
		{"run every morning for 10 days", datemath.Duration{Value: 10, Unit: datemath.UnitDays}, datemath.LangEN, true},
		{"Learn Go for 1 Month", datemath.Duration{Value: 1, Unit: datemath.UnitMonths}, datemath.LangEN, true},
		{"mulai 3 hari lagi selama 2 bulan", datemath.Duration{Value: 2, Unit: datemath.UnitMonths}, datemath.LangID, true},
		{"start in 2 weeks", datemath.Duration{}, "", false},
		{"hari minggu olahraga", datemath.Duration{}, "", false},
		{"membaca buku", datemath.Duration{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := datemath.FindDurationPhrase(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("FindDurationPhrase() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (got.Duration != tt.want || got.Lang != tt.lang) {
				t.Errorf("FindDurationPhrase() = %+v, want %v (%s)", got, tt.want, tt.lang)
			}
		})
	}
}

func TestReconcileTitleDuration(t *testing.T) {
	oneMonth := datemath.Classify(date(2025, 8, 27), date(2025, 9, 27))
	tests := []struct {
		title  string
		actual datemath.Duration
		want   string
	}{
		{"berolahraga selama 3 bulan", oneMonth, "berolahraga selama 1 bulan"},
		{"berolahraga selama 1 bulan", oneMonth, "berolahraga selama 1 bulan"},
		{"belajar selama tiga bulan", datemath.Duration{Value: 2, Unit: datemath.UnitWeeks}, "belajar selama 2 minggu"},
		{"Read daily for 3 months", datemath.Duration{Value: 10, Unit: datemath.UnitDays}, "Read daily for 10 days"},
		{"Read daily for 3 months", oneMonth, "Read daily for 1 month"},
		{"membaca buku", oneMonth, "membaca buku"},
		{"selama 3 bulan", datemath.Duration{}, "selama 3 bulan"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			once := datemath.ReconcileTitleDuration(tt.title, tt.actual)
			if once != tt.want {
				t.Errorf("ReconcileTitleDuration() = %q, want %q", once, tt.want)
			}
			if twice := datemath.ReconcileTitleDuration(once, tt.actual); twice != once {
				t.Errorf("not idempotent: %q then %q", once, twice)
			}
		})
	}
}

func TestFindStartPhrase(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"Mulai besok selama 2 bulan", "besok", true},
		{"starting next week for 10 days", "next week", true},
		{"dimulai 3 hari lagi", "3 hari lagi", true},
		{"Tadabur Alquran selama 2 bulan", "", false},
	}
	for _, tt := range tests {
		got, ok := datemath.FindStartPhrase(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("FindStartPhrase(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}
