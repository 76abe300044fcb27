// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the agent configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to environment
// variables and defaults.
type Config struct {
	// LLM
	LLMProvider   string `json:"llm_provider,omitempty"`    // "openai" or "gemini"
	LLMModel      string `json:"llm_model,omitempty"`       // model override
	OpenAIAPIKey  string `json:"openai_api_key,omitempty"`  // OpenAI API key
	OpenAIBaseURL string `json:"openai_base_url,omitempty"` // OpenAI-compatible endpoint override
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Gemini API key

	// Image generation
	StabilityAPIKey string `json:"stability_api_key,omitempty"` // Stability AI key
	ImageOutputDir  string `json:"image_output_dir,omitempty"`  // Where generated images are written
	EnableImages    bool   `json:"enable_images,omitempty"`     // Generate images for posts

	// Storage
	StorePath string `json:"store_path,omitempty"` // Brand profile database path

	// Browser
	BrowserURL string `json:"browser_url,omitempty"` // DevTools endpoint for publishing
	UseBrowser bool   `json:"use_browser,omitempty"` // Headless-render SPA pages during fetch

	// Behavior
	EnableModeration bool `json:"enable_moderation,omitempty"` // Run moderation on generated text
	Verbose          bool `json:"verbose,omitempty"`           // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	return Config{
		LLMProvider:     os.Getenv("LLM_PROVIDER"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		StabilityAPIKey: os.Getenv("STABILITY_API_KEY"),
		BrowserURL:      os.Getenv("BROWSER_URL"),
		StorePath:       os.Getenv("BRAND_STORE_PATH"),
	}
}

// DefaultStorePath returns the default location of the brand profile
// database, under the user cache directory.
func DefaultStorePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "brands.db"
	}
	return filepath.Join(cacheDir, "social-poster", "brands.db")
}

// DefaultImageOutputDir is where generated images land unless overridden.
const DefaultImageOutputDir = "generated_images"

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required keys since requiredness depends on
// which commands run (publishing needs no LLM key, drafting does).
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("config error: 'llm_provider' must be \"openai\" or \"gemini\", got %q", c.LLMProvider)
	}

	if c.EnableImages && c.StabilityAPIKey == "" {
		return fmt.Errorf("config error: 'enable_images' requires 'stability_api_key'")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file values over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.LLMProvider == "" {
		result.LLMProvider = defaults.LLMProvider
	}
	if result.LLMModel == "" {
		result.LLMModel = defaults.LLMModel
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.OpenAIBaseURL == "" {
		result.OpenAIBaseURL = defaults.OpenAIBaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.StabilityAPIKey == "" {
		result.StabilityAPIKey = defaults.StabilityAPIKey
	}
	if result.BrowserURL == "" {
		result.BrowserURL = defaults.BrowserURL
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.ImageOutputDir == "" {
		result.ImageOutputDir = defaults.ImageOutputDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Resolved returns the config with remaining empty fields set to defaults.
func (c *Config) Resolved() Config {
	result := *c
	if result.StorePath == "" {
		result.StorePath = DefaultStorePath()
	}
	if result.ImageOutputDir == "" {
		result.ImageOutputDir = DefaultImageOutputDir
	}
	if result.LLMProvider == "" {
		result.LLMProvider = "openai"
	}
	return result
}
