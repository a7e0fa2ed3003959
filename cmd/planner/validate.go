package main

import (
	"errors"

	"github.com/spf13/cobra"

	"goal-planner/internal/validation"
)

var errDraftRejected = errors.New("draft is not valid")

var validateFlags draftFlags

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a goal draft is complete",
	Long:  `Run the goal validator on a draft and print the result, the missing fields and a suggestion.`,
	Example: `  planner validate --text "Mulai besok belajar gitar selama 2 minggu"
  planner validate --title "Lari pagi" --start 2025-08-27 --end 2025-09-27 -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, dates, err := loadEnv()
		if err != nil {
			return err
		}
		draft, today, err := validateFlags.build(dates)
		if err != nil {
			return err
		}

		v := validation.New(dates, validation.Config{MaxMonths: cfg.Planner.MaxMonths})
		res := v.Validate(draft, today)
		if err := render(cmd.OutOrStdout(), outputFormat, newValidationView(res)); err != nil {
			return err
		}
		if !res.IsValid() {
			return errDraftRejected
		}
		return nil
	},
}

func init() {
	validateFlags.register(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
