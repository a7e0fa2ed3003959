package schedule

import (
	"context"
	"fmt"
	"time"
)

// Day is one calendar date of a plan.
type Day struct {
	Number int
	Date   time.Time
}

// ContentRequest describes the goal a plan is written for.
type ContentRequest struct {
	Title       string
	Description string
	Emoji       string
	StartDate   time.Time
	EndDate     time.Time
}

// DayContent is the activity text for one day.
type DayContent struct {
	Title       string
	Description string
}

// ContentSource writes the per-day activities of a plan. Implementations
// return exactly one entry per day, in day order, and must be deterministic
// for the same request and days.
type ContentSource interface {
	Generate(ctx context.Context, req ContentRequest, days []Day) ([]DayContent, error)
}

type weekdayTheme struct {
	focus  string
	detail string
}

var weekdayThemes = map[time.Weekday]weekdayTheme{
	time.Monday:    {"Menetapkan fokus", "Tentukan target kecil minggu ini lalu mulai sesi pertama"},
	time.Tuesday:   {"Latihan inti", "Kerjakan bagian utama dengan tempo yang nyaman"},
	time.Wednesday: {"Evaluasi tengah minggu", "Catat kemajuan sejauh ini lalu perbaiki satu hal"},
	time.Thursday:  {"Latihan lanjutan", "Naikkan sedikit tingkat kesulitan dari sesi sebelumnya"},
	time.Friday:    {"Tantangan kecil", "Coba satu variasi baru untuk menjaga semangat"},
	time.Saturday:  {"Sesi panjang", "Manfaatkan waktu luang untuk sesi yang lebih dalam"},
	time.Sunday:    {"Refleksi", "Tinjau minggu ini dan siapkan rencana minggu depan"},
}

// TemplateContent writes content from fixed weekday themes. It needs no
// network and never fails.
type TemplateContent struct{}

func (TemplateContent) Generate(_ context.Context, req ContentRequest, days []Day) ([]DayContent, error) {
	out := make([]DayContent, len(days))
	for i, d := range days {
		out[i] = TemplateDay(req, d, len(days))
	}
	return out, nil
}

// TemplateDay is the templated content of a single day.
func TemplateDay(req ContentRequest, d Day, total int) DayContent {
	theme := weekdayThemes[d.Date.Weekday()]
	title := fmt.Sprintf("Hari %d: %s", d.Number, theme.focus)
	if req.Title != "" {
		title = fmt.Sprintf("%s (%s)", title, req.Title)
	}

	description := fmt.Sprintf("%s. Hari %d dari %d.", theme.detail, d.Number, total)
	switch {
	case d.Number == 1:
		description = fmt.Sprintf("Langkah pertama menuju %q. %s", req.Title, description)
	case d.Number == total:
		description = fmt.Sprintf("Hari terakhir! Rayakan pencapaianmu untuk %q. %s", req.Title, description)
	}
	return DayContent{Title: title, Description: description}
}
