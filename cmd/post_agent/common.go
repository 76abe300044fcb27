package main

import (
	"context"
	"fmt"

	"github.com/jonathan/social-poster/internal/config"
	"github.com/jonathan/social-poster/internal/fetch"
	"github.com/jonathan/social-poster/internal/imagegen"
	"github.com/jonathan/social-poster/internal/llm"
	"github.com/jonathan/social-poster/internal/moderation"
	"github.com/jonathan/social-poster/internal/store"
)

// loadConfig layers the config file (if given) over environment values and
// fills remaining gaps with defaults.
func loadConfig() (config.Config, error) {
	cfg := config.FromEnv()
	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore opens the brand profile database at the configured path.
func openStore(cfg config.Config) (store.Store, error) {
	st, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open brand store at %s: %w", cfg.StorePath, err)
	}
	return st, nil
}

// newLLMClient builds a completion client from the configuration.
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	llmCfg := &llm.Config{
		Provider: llm.Provider(cfg.LLMProvider),
		Model:    cfg.LLMModel,
	}
	switch llmCfg.Provider {
	case llm.ProviderGemini:
		llmCfg.APIKey = cfg.GeminiAPIKey
		if llmCfg.Model == "" {
			llmCfg.Model = llm.DefaultGeminiModel
		}
	default:
		llmCfg.APIKey = cfg.OpenAIAPIKey
		llmCfg.BaseURL = cfg.OpenAIBaseURL
		if llmCfg.Model == "" {
			llmCfg.Model = llm.DefaultOpenAIModel
		}
	}
	return llm.NewClient(ctx, llmCfg)
}

// newLoader builds the page loader used for homepages and trend sources.
func newLoader(cfg config.Config) *fetch.Loader {
	return fetch.NewLoader(&fetch.LoaderConfig{
		UseBrowser: cfg.UseBrowser,
		BrowserURL: cfg.BrowserURL,
	})
}

// newImageGenerator builds the image generator; disabled unless configured.
func newImageGenerator(cfg config.Config) *imagegen.Generator {
	return imagegen.NewGenerator(cfg.EnableImages, cfg.StabilityAPIKey, cfg.ImageOutputDir)
}

// newModerator builds the moderation checker. Moderation needs an OpenAI key
// regardless of the completion provider.
func newModerator(cfg config.Config) moderation.Moderator {
	if !cfg.EnableModeration || cfg.OpenAIAPIKey == "" {
		return moderation.Noop{}
	}
	return moderation.NewOpenAIModerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
}
