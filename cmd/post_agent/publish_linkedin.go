package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/social-poster/internal/observability"
	"github.com/jonathan/social-poster/internal/publish"
)

var publishLinkedInCmd = &cobra.Command{
	Use:   "publish-linkedin",
	Short: "Publish a post to LinkedIn through the attached browser",
	Long:  "Publishes text to LinkedIn by driving the user's own browser session over the DevTools protocol. Start Chrome with --remote-debugging-port=9222 and log in to LinkedIn first.",
	RunE:  runPublishLinkedIn,
}

var (
	publishText  string
	publishFile  string
	publishCheck bool
)

func init() {
	publishLinkedInCmd.Flags().StringVarP(&publishText, "text", "t", "", "Post text to publish")
	publishLinkedInCmd.Flags().StringVarP(&publishFile, "file", "f", "", "Path to a file containing the post text")
	publishLinkedInCmd.Flags().BoolVar(&publishCheck, "check", false, "Only check the login status, do not publish")

	rootCmd.AddCommand(publishLinkedInCmd)
}

func runPublishLinkedIn(_ *cobra.Command, _ []string) error {
	if publishCheck {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return probeLinkedInLogin(cfg)
	}

	if publishText == "" && publishFile == "" {
		return fmt.Errorf("one of --text and --file is required")
	}
	if publishText != "" && publishFile != "" {
		return fmt.Errorf("--text and --file are mutually exclusive")
	}

	text := publishText
	if publishFile != "" {
		raw, err := os.ReadFile(publishFile)
		if err != nil {
			return fmt.Errorf("failed to read post file %s: %w", publishFile, err)
		}
		text = string(raw)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	publisher := publish.NewLinkedInPublisher(cfg.BrowserURL, publish.WithVerbose(cfg.Verbose))
	result, err := publisher.Publish(context.Background(), text)
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintPublishResult(result)
	if result.Status != "success" {
		os.Exit(1)
	}
	return nil
}
