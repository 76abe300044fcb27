package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listBrandsCmd = &cobra.Command{
	Use:   "list-brands",
	Short: "List the names of all saved brand profiles",
	RunE:  runListBrands,
}

func init() {
	rootCmd.AddCommand(listBrandsCmd)
}

func runListBrands(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	names, err := st.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list brand profiles: %w", err)
	}

	if len(names) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No brand profiles saved.")
		return nil
	}
	for _, name := range names {
		_, _ = fmt.Fprintln(os.Stdout, name)
	}

	return nil
}
