package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/fetch"
	"github.com/jonathan/social-poster/internal/observability"
	"github.com/jonathan/social-poster/internal/pipeline"
	"github.com/jonathan/social-poster/internal/platform"
	"github.com/jonathan/social-poster/internal/prompts"
	"github.com/jonathan/social-poster/internal/textgen"
	"github.com/jonathan/social-poster/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate posts from source URLs and a request",
	Long:  "Generates brand-aligned posts for one or more platforms from trend source URLs and/or a free-form request, using a saved brand profile.",
	RunE:  runGenerate,
}

var (
	generateBrand     string
	generatePlatforms []string
	generateURLs      []string
	generateRequest   string
	generateLanguage  string
	generateImage     bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateBrand, "brand", "b", "", "Brand name; omit to use the built-in default profile")
	generateCmd.Flags().StringSliceVarP(&generatePlatforms, "platform", "p", nil, "Target platform(s): twitter, instagram, linkedin, or all (required)")
	generateCmd.Flags().StringSliceVarP(&generateURLs, "url", "u", nil, "Source URL(s) whose content feeds the post")
	generateCmd.Flags().StringVarP(&generateRequest, "request", "r", "", "Free-form instructions for the post")
	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "", "Language the post content must be written in")
	generateCmd.Flags().BoolVar(&generateImage, "image", false, "Generate an image for the post (requires STABILITY_API_KEY)")

	if err := generateCmd.MarkFlagRequired("platform"); err != nil {
		panic(fmt.Sprintf("failed to mark platform flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

// resolvePlatforms expands "all" and validates every requested platform.
func resolvePlatforms(requested []string) ([]string, error) {
	var out []string
	for _, p := range requested {
		if strings.EqualFold(strings.TrimSpace(p), "all") {
			return platform.Names(), nil
		}
		name := platform.Normalize(p)
		if _, err := platform.ConstraintsFor(name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if len(generateURLs) == 0 && generateRequest == "" {
		return fmt.Errorf("at least one of --url and --request is required")
	}

	platforms, err := resolvePlatforms(generatePlatforms)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateImage {
		cfg.EnableImages = true
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()

	var profile *types.BrandProfile
	if generateBrand != "" {
		profile, err = st.Get(ctx, generateBrand)
		if err != nil {
			return fmt.Errorf("failed to load brand profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("brand profile not found: %s", generateBrand)
		}
	}
	manager := brand.NewManager(profile)

	// Every source URL must load; posting from partial material would
	// silently change what the post is about.
	loader := newLoader(cfg)
	var sections []string
	for _, u := range generateURLs {
		text, err := loader.Fetch(ctx, u)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", u, err)
		}
		sections = append(sections, text)
	}
	if generateRequest != "" {
		sections = append(sections, generateRequest)
	}
	if generateLanguage != "" {
		sections = append(sections, prompts.LanguagePin(generateLanguage))
	}

	trend := types.TrendContent{Content: strings.Join(sections, "\n\n")}
	if len(generateURLs) > 0 {
		trend.Source = fetch.SourceName(generateURLs[0])
	} else {
		trend.Source = "user_request"
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var opts []pipeline.CreatorOption
	if cfg.Verbose {
		opts = append(opts, pipeline.WithProgress(func(e pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", e.Platform, e.Step, e.Message)
		}))
	}
	creator := pipeline.NewCreator(
		manager,
		textgen.NewGenerator(client, manager),
		newImageGenerator(cfg),
		newModerator(cfg),
		opts...,
	)

	printer := observability.NewPrinter(os.Stderr)

	if len(platforms) == 1 {
		post, err := creator.GenerateContent(ctx, platforms[0], trend)
		if err != nil {
			return fmt.Errorf("failed to generate post: %w", err)
		}
		if cfg.Verbose {
			printer.PrintPost(post)
		}
		return printJSON(post)
	}

	results := creator.GenerateMultiPlatform(ctx, platforms, trend)
	if cfg.Verbose {
		for _, name := range platforms {
			printer.PrintPost(results[name].Post)
		}
	}
	return printJSON(results)
}

func printJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(raw))
	return nil
}
