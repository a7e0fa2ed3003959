package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"goal-planner/pkg/scope"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a bearer token for local testing",
	Long:  `Sign an HS256 token with auth.jwt_secret so the API can be called with curl.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadEnv()
		if err != nil {
			return err
		}
		if cfg.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is not set")
		}
		if tokenUser == "" {
			return errors.New("--user is required")
		}

		token, err := scope.New(cfg.Auth.JWTSecret).Sign(tokenUser, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "User ID to put in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
