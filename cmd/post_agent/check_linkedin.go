package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/social-poster/internal/config"
	"github.com/jonathan/social-poster/internal/publish"
)

var checkLinkedInCmd = &cobra.Command{
	Use:   "check-linkedin",
	Short: "Check whether the attached browser is logged in to LinkedIn",
	RunE:  runCheckLinkedIn,
}

func init() {
	rootCmd.AddCommand(checkLinkedInCmd)
}

func runCheckLinkedIn(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return probeLinkedInLogin(cfg)
}

// probeLinkedInLogin reports the login state of the attached browser session
// and exits non-zero when logged out.
func probeLinkedInLogin(cfg config.Config) error {
	publisher := publish.NewLinkedInPublisher(cfg.BrowserURL, publish.WithVerbose(cfg.Verbose))
	status, err := publisher.CheckLoggedIn(context.Background())
	if err != nil {
		return fmt.Errorf("failed to check login: %w", err)
	}

	if !status.IsLoggedIn {
		_, _ = fmt.Fprintln(os.Stdout, "Not logged in to LinkedIn.")
		os.Exit(1)
	}
	if status.FullName != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Logged in to LinkedIn as %s.\n", status.FullName)
	} else {
		_, _ = fmt.Fprintln(os.Stdout, "Logged in to LinkedIn.")
	}
	return nil
}
