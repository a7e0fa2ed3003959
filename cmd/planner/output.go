package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"goal-planner/internal/goal"
)

const dateLayout = "2006-01-02"

// view is anything the commands print. Text is the colored terminal form.
type view interface {
	Text(w io.Writer)
}

func render(w io.Writer, format string, v view) error {
	switch format {
	case "", "text":
		v.Text(w)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown output format %q", format)
}

type validationView struct {
	Status        string          `yaml:"status"`
	Title         string          `yaml:"title,omitempty"`
	Description   string          `yaml:"description,omitempty"`
	Emoji         string          `yaml:"emoji,omitempty"`
	StartDate     string          `yaml:"start_date,omitempty"`
	EndDate       string          `yaml:"end_date,omitempty"`
	Duration      string          `yaml:"duration,omitempty"`
	MissingFields []string        `yaml:"missing_fields,omitempty"`
	Messages      []string        `yaml:"messages,omitempty"`
	Reason        string          `yaml:"reason,omitempty"`
	Suggestion    *suggestionView `yaml:"suggestion,omitempty"`
}

type suggestionView struct {
	Title     string `yaml:"title,omitempty"`
	StartDate string `yaml:"start_date,omitempty"`
	EndDate   string `yaml:"end_date,omitempty"`
}

func newValidationView(res goal.ValidationResult) validationView {
	v := validationView{
		Status:      string(res.Status),
		Title:       res.Title,
		Description: res.Description,
		Emoji:       res.Emoji,
		StartDate:   formatDate(res.StartDate),
		EndDate:     formatDate(res.EndDate),
		Messages:    res.Messages,
		Reason:      res.Reason,
	}
	if res.Duration != nil {
		v.Duration = res.Duration.String()
	}
	for _, f := range res.MissingFields {
		v.MissingFields = append(v.MissingFields, string(f))
	}
	if s := res.Suggestion; s != nil {
		v.Suggestion = &suggestionView{Title: s.Title, StartDate: formatDate(s.StartDate), EndDate: formatDate(s.EndDate)}
	}
	return v
}

func (v validationView) Text(w io.Writer) {
	bold := color.New(color.Bold).SprintFunc()
	statusColor := color.New(color.FgGreen, color.Bold)
	switch goal.ResultStatus(v.Status) {
	case goal.ResultIncomplete:
		statusColor = color.New(color.FgYellow, color.Bold)
	case goal.ResultInvalid:
		statusColor = color.New(color.FgRed, color.Bold)
	}

	fmt.Fprintf(w, "%s %s\n", bold("Status:"), statusColor.Sprint(strings.ToUpper(v.Status)))
	if v.Title != "" {
		fmt.Fprintf(w, "%s %s %s\n", bold("Title:"), v.Emoji, v.Title)
	}
	if v.StartDate != "" || v.EndDate != "" {
		fmt.Fprintf(w, "%s %s .. %s\n", bold("Dates:"), orDash(v.StartDate), orDash(v.EndDate))
	}
	if v.Duration != "" {
		fmt.Fprintf(w, "%s %s\n", bold("Duration:"), v.Duration)
	}
	if len(v.MissingFields) > 0 {
		fmt.Fprintf(w, "%s %s\n", bold("Missing:"), strings.Join(v.MissingFields, ", "))
	}
	for _, m := range v.Messages {
		fmt.Fprintf(w, "  - %s\n", m)
	}
	if v.Reason != "" {
		fmt.Fprintf(w, "%s %s\n", bold("Reason:"), v.Reason)
	}
	if s := v.Suggestion; s != nil {
		fmt.Fprintf(w, "%s %s (%s .. %s)\n", bold("Suggestion:"), s.Title, orDash(s.StartDate), orDash(s.EndDate))
	}
}

type planItemView struct {
	Day        int     `yaml:"day"`
	Date       string  `yaml:"date"`
	Start      string  `yaml:"start"`
	End        string  `yaml:"end"`
	Title      string  `yaml:"title"`
	Progress   float64 `yaml:"progress"`
	BestEffort bool    `yaml:"best_effort,omitempty"`
	Warning    string  `yaml:"warning,omitempty"`
}

type planView struct {
	Title     string         `yaml:"title"`
	Emoji     string         `yaml:"emoji,omitempty"`
	StartDate string         `yaml:"start_date"`
	EndDate   string         `yaml:"end_date"`
	TotalDays int            `yaml:"total_days"`
	Items     []planItemView `yaml:"items"`
}

func newPlanView(res goal.ValidationResult, items []goal.ScheduleItem) planView {
	v := planView{
		Title:     res.Title,
		Emoji:     res.Emoji,
		StartDate: formatDate(res.StartDate),
		EndDate:   formatDate(res.EndDate),
		TotalDays: len(items),
		Items:     make([]planItemView, len(items)),
	}
	for i, it := range items {
		v.Items[i] = planItemView{
			Day:        it.DayNumber,
			Date:       it.Date.Format(dateLayout),
			Start:      it.Interval.Start.Format("15:04"),
			End:        it.Interval.End.Format("15:04"),
			Title:      it.Title,
			Progress:   it.ProgressPercent,
			BestEffort: it.BestEffort,
			Warning:    it.Warning,
		}
	}
	return v
}

func (v planView) Text(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "%s\n", cyan(fmt.Sprintf("%s %s (%s .. %s, %d days)", v.Emoji, v.Title, v.StartDate, v.EndDate, v.TotalDays)))
	for _, it := range v.Items {
		line := fmt.Sprintf("%3d  %s  %s-%s  %5.1f%%  %s", it.Day, it.Date, it.Start, it.End, it.Progress, it.Title)
		if it.BestEffort {
			fmt.Fprintf(w, "%s\n    %s\n", yellow(line), gray(it.Warning))
			continue
		}
		fmt.Fprintln(w, line)
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
