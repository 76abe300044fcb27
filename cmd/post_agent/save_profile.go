package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/schemas"
	"github.com/jonathan/social-poster/internal/types"
)

var saveProfileCmd = &cobra.Command{
	Use:   "save-profile",
	Short: "Validate and save a brand profile from a JSON file",
	RunE:  runSaveProfile,
}

var saveProfileFile string

func init() {
	saveProfileCmd.Flags().StringVarP(&saveProfileFile, "file", "f", "", "Path to brand profile JSON file (required)")

	if err := saveProfileCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(saveProfileCmd)
}

func runSaveProfile(_ *cobra.Command, _ []string) error {
	document, err := os.ReadFile(saveProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", saveProfileFile, err)
	}

	if err := schemas.ValidateBrandProfile(document); err != nil {
		return fmt.Errorf("profile does not match schema: %w", err)
	}

	var profile types.BrandProfile
	if err := json.Unmarshal(document, &profile); err != nil {
		return fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := brand.ValidateProfile(&profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
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

	if err := st.Set(context.Background(), profile.BrandName, &profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Brand profile saved: %s\n", profile.BrandName)
	return nil
}
