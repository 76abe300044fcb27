package llm

import "os"

// Provider represents an LLM provider
type Provider string

const (
	// ProviderOpenAI is OpenAI or any OpenAI-compatible endpoint
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default models per provider.
const (
	DefaultOpenAIModel = "gpt-4.1-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config holds the provider selection and credentials for the completion
// client.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint. Used to point the OpenAI
	// client at compatible gateways and at test servers.
	BaseURL string
}

// DefaultConfig returns the default configuration (OpenAI).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Model:    DefaultOpenAIModel,
	}
}

// ConfigFromEnv builds a Config from the environment: LLM_PROVIDER selects
// the provider, OPENAI_API_KEY / OPENAI_BASE_URL / GEMINI_API_KEY supply
// credentials.
func ConfigFromEnv() *Config {
	config := DefaultConfig()

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.Provider = Provider(provider)
	}

	switch config.Provider {
	case ProviderGemini:
		config.Model = DefaultGeminiModel
		config.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		config.APIKey = os.Getenv("OPENAI_API_KEY")
		config.BaseURL = os.Getenv("OPENAI_BASE_URL")
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.Model = model
	}

	return config
}
