package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"goal-planner/internal/busy"
	"goal-planner/internal/goal/usecase"
	"goal-planner/internal/schedule"
	"goal-planner/internal/validation"
	"goal-planner/pkg/interval"
	"goal-planner/pkg/log"
)

var (
	planFlags    draftFlags
	planSlot     string
	planBusyFile string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the daily schedule of a goal",
	Long: `Validate a draft and synthesize one schedule item per day with template
content. Busy blocks can be loaded from a YAML file:

  - start: "2025-08-27T09:00:00+07:00"
    end: "2025-08-27T10:00:00+07:00"
    label: Standup`,
	Example: `  planner plan --title "Belajar gitar" --start 2025-08-27 --end 2025-09-09 --slot 19:00-20:00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, dates, err := loadEnv()
		if err != nil {
			return err
		}
		draft, today, err := planFlags.build(dates)
		if err != nil {
			return err
		}

		res := validation.New(dates, validation.Config{MaxMonths: cfg.Planner.MaxMonths}).Validate(draft, today)
		if !res.IsValid() {
			if err := render(cmd.OutOrStdout(), outputFormat, newValidationView(res)); err != nil {
				return err
			}
			return errDraftRejected
		}

		ucCfg, err := usecase.ConfigFromPlanner(cfg.Planner, cfg.GoogleCalendar, "")
		if err != nil {
			return err
		}
		var preferred *interval.DailySlot
		if planSlot != "" {
			slot, err := interval.ParseDailySlot(planSlot)
			if err != nil {
				return err
			}
			preferred = &slot
		}

		var existing []busy.Block
		if planBusyFile != "" {
			if existing, err = readBusyFile(planBusyFile, dates.Location()); err != nil {
				return err
			}
		}
		window := interval.Interval{Start: *res.StartDate, End: res.EndDate.AddDate(0, 0, 1)}
		set := busy.BuildBusySet(existing, ucCfg.Sleep, ucCfg.WorkingHours, window)

		synth := schedule.New(log.NewNop(), schedule.TemplateContent{}, ucCfg.Schedule)
		items, err := synth.Synthesize(cmd.Context(), schedule.Input{
			Title:         res.Title,
			Description:   res.Description,
			Emoji:         res.Emoji,
			StartDate:     *res.StartDate,
			EndDate:       *res.EndDate,
			Busy:          set,
			PreferredSlot: preferred,
		}, nil)
		if err != nil {
			return fmt.Errorf("synthesize: %w", err)
		}

		return render(cmd.OutOrStdout(), outputFormat, newPlanView(res, items))
	},
}

func init() {
	planFlags.register(planCmd)
	planCmd.Flags().StringVar(&planSlot, "slot", "", "Preferred daily slot (HH:MM-HH:MM)")
	planCmd.Flags().StringVar(&planBusyFile, "busy-file", "", "YAML file of existing busy blocks")
	rootCmd.AddCommand(planCmd)
}

type busyEntry struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Label string `yaml:"label"`
}

func readBusyFile(path string, loc *time.Location) ([]busy.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read busy file: %w", err)
	}
	return parseBusyYAML(data, loc)
}

func parseBusyYAML(data []byte, loc *time.Location) ([]busy.Block, error) {
	var entries []busyEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse busy file: %w", err)
	}

	blocks := make([]busy.Block, 0, len(entries))
	for i, e := range entries {
		start, err := parseTimestamp(e.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("busy entry %d: start: %w", i, err)
		}
		end, err := parseTimestamp(e.End, loc)
		if err != nil {
			return nil, fmt.Errorf("busy entry %d: end: %w", i, err)
		}
		iv, err := interval.New(start, end)
		if err != nil {
			return nil, fmt.Errorf("busy entry %d: %w", i, err)
		}
		blocks = append(blocks, busy.Block{Interval: iv, Kind: busy.KindExistingSchedule, Label: e.Label})
	}
	return blocks, nil
}

// parseTimestamp accepts RFC 3339 or "YYYY-MM-DD HH:MM" in loc.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, loc)
}
