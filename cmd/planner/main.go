package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goal-planner/config"
	"goal-planner/pkg/datemath"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Validate goals and preview schedules offline",
	Long: `planner runs the goal validator and schedule synthesizer locally,
without the HTTP server, the database or a language model.`,
	SilenceUsage: true,
}

var outputFormat string

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text or yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEnv reads the service config and the date parser every command needs.
func loadEnv() (*config.Config, *datemath.Parser, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	dates, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("load timezone %q: %w", cfg.Planner.Timezone, err)
	}
	return cfg, dates, nil
}
