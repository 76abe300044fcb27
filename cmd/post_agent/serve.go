package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/social-poster/internal/publish"
	"github.com/jonathan/social-poster/internal/toolserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP tool server over stdio",
	Long:  "Exposes brand profile management, post drafting and LinkedIn publishing as MCP tools on stdin/stdout for an agent runtime.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	client, err := newLLMClient(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	srv := toolserver.NewServer(toolserver.Config{
		Store:     st,
		Fetcher:   newLoader(cfg),
		Client:    client,
		Image:     newImageGenerator(cfg),
		Moderator: newModerator(cfg),
		Publisher: publish.NewLinkedInPublisher(cfg.BrowserURL, publish.WithVerbose(cfg.Verbose)),
	})

	if cfg.Verbose {
		fmt.Fprintln(os.Stderr, "MCP tool server listening on stdio")
	}
	return srv.ServeStdio()
}
