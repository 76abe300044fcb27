package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/observability"
)

var draftProfileCmd = &cobra.Command{
	Use:   "draft-profile",
	Short: "Draft a brand profile from the brand's name, homepage, and description",
	Long:  "Extracts a structured brand profile with the LLM from the brand name, an optional homepage (fetched), and an optional description, validates it against the profile schema, and saves it to the brand store.",
	RunE:  runDraftProfile,
}

var (
	draftProfileBrand       string
	draftProfileURL         string
	draftProfileDescription string
)

func init() {
	draftProfileCmd.Flags().StringVarP(&draftProfileBrand, "brand", "b", "", "Brand name (required)")
	draftProfileCmd.Flags().StringVarP(&draftProfileURL, "url", "u", "", "Brand homepage URL")
	draftProfileCmd.Flags().StringVarP(&draftProfileDescription, "description", "d", "", "Short description of the brand")

	if err := draftProfileCmd.MarkFlagRequired("brand"); err != nil {
		panic(fmt.Sprintf("failed to mark brand flag as required: %v", err))
	}

	rootCmd.AddCommand(draftProfileCmd)
}

func runDraftProfile(_ *cobra.Command, _ []string) error {
	if draftProfileURL != "" {
		parsed, err := url.Parse(draftProfileURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid homepage URL: %s", draftProfileURL)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	drafter := brand.NewDrafter(client, st, newLoader(cfg))
	profile, err := drafter.Draft(ctx, draftProfileBrand, draftProfileURL, draftProfileDescription)
	if err != nil {
		return fmt.Errorf("failed to draft brand profile: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBrandProfile(profile)
	}

	raw, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(raw))

	return nil
}
