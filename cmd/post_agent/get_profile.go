package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getProfileCmd = &cobra.Command{
	Use:   "get-profile",
	Short: "Print a saved brand profile as JSON",
	RunE:  runGetProfile,
}

var getProfileBrand string

func init() {
	getProfileCmd.Flags().StringVarP(&getProfileBrand, "brand", "b", "", "Brand name (required)")

	if err := getProfileCmd.MarkFlagRequired("brand"); err != nil {
		panic(fmt.Sprintf("failed to mark brand flag as required: %v", err))
	}

	rootCmd.AddCommand(getProfileCmd)
}

func runGetProfile(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	profile, err := st.Get(context.Background(), getProfileBrand)
	if err != nil {
		return fmt.Errorf("failed to load brand profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("brand profile not found: %s", getProfileBrand)
	}

	raw, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(raw))

	return nil
}
