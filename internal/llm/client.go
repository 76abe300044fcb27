// Package llm provides the completion client abstraction used for post text
// generation and schema-constrained brand-profile extraction, with OpenAI
// (and OpenAI-compatible endpoints) as the primary provider and Gemini as an
// alternative.
package llm

import (
	"context"
	"encoding/json"
)

// SchemaSpec names a JSON schema for structured completion. The schema
// document must carry additionalProperties:false and required lists so the
// provider can enforce it strictly.
type SchemaSpec struct {
	Name   string
	Schema json.RawMessage
}

// Client is an abstraction over LLM providers.
type Client interface {
	// Complete generates text from a system and user message. maxTokens
	// bounds the output budget; temperature is in [0,1].
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error)
	// CompleteStructured generates a JSON document conforming to the given
	// schema.
	CompleteStructured(ctx context.Context, prompt, systemPrompt string, schema SchemaSpec) (json.RawMessage, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	default:
		return NewOpenAIClient(config)
	}
}
