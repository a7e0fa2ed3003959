package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"goal-planner/pkg/gcalendar"
)

var (
	gcalCredentials string
	gcalTokenPath   string
)

var gcalAuthCmd = &cobra.Command{
	Use:   "gcal-auth",
	Short: "Authorize Google Calendar access and save the OAuth token",
	Long: `Run once with OAuth desktop credentials. Open the printed URL, sign in,
paste the authorization code and the token is written for the API server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(gcalCredentials)
		if err != nil {
			return fmt.Errorf("read credentials file %q: %w", gcalCredentials, err)
		}
		oauthCfg, err := gcalendar.InstalledAppConfig(data)
		if err != nil {
			return fmt.Errorf("%w (is %q an OAuth desktop app credentials file?)", err, gcalCredentials)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
		fmt.Fprintln(out)
		fmt.Fprint(out, "2. Paste the authorization code here: ")

		var code string
		if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
			return fmt.Errorf("read authorization code: %w", err)
		}

		tok, err := oauthCfg.Exchange(cmd.Context(), code)
		if err != nil {
			return fmt.Errorf("exchange authorization code: %w", err)
		}
		if err := gcalendar.SaveToken(gcalTokenPath, tok); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable Google Calendar.\n", gcalTokenPath)
		return nil
	},
}

func init() {
	gcalAuthCmd.Flags().StringVar(&gcalCredentials, "credentials", "google-credentials.json", "OAuth desktop credentials file")
	gcalAuthCmd.Flags().StringVar(&gcalTokenPath, "token", gcalendar.TokenFile, "Where to write the token")
	rootCmd.AddCommand(gcalAuthCmd)
}
