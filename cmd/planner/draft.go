package main

import (
	"time"

	"github.com/spf13/cobra"

	"goal-planner/internal/goal"
	"goal-planner/pkg/datemath"
)

type draftFlags struct {
	text        string
	title       string
	description string
	start       string
	end         string
	today       string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.text, "text", "t", "", `Free-text goal, e.g. "Mulai besok belajar gitar selama 2 minggu"`)
	cmd.Flags().StringVar(&f.title, "title", "", "Goal title")
	cmd.Flags().StringVar(&f.description, "description", "", "Goal description")
	cmd.Flags().StringVar(&f.start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.today, "today", "", "Reference date for relative phrases (default: now)")
}

// build turns the flags into a draft and the reference day.
func (f *draftFlags) build(dates *datemath.Parser) (goal.Draft, time.Time, error) {
	draft := goal.Draft{
		InitialValue: f.text,
		Title:        f.title,
		Description:  f.description,
	}

	today := time.Now().In(dates.Location())
	if f.today != "" {
		t, err := dates.ParseDate(f.today)
		if err != nil {
			return goal.Draft{}, time.Time{}, err
		}
		today = t
	}
	if f.start != "" {
		t, err := dates.ParseDate(f.start)
		if err != nil {
			return goal.Draft{}, time.Time{}, err
		}
		draft.StartDate = &t
	}
	if f.end != "" {
		t, err := dates.ParseDate(f.end)
		if err != nil {
			return goal.Draft{}, time.Time{}, err
		}
		draft.EndDate = &t
	}
	return draft, today, nil
}
