// Package moderation defines the content moderation stage of the pipeline.
// The default implementation passes everything; a provider-backed moderator
// can be substituted without touching pipeline control flow.
package moderation

import (
	"context"
	"log"

	"github.com/sashabaranov/go-openai"
)

// Moderator checks generated content before it is assembled into a post.
type Moderator interface {
	// Check reports whether content is appropriate to publish.
	Check(ctx context.Context, content string) (bool, error)
}

// Noop passes all content. This is the default moderator.
type Noop struct{}

// Check always passes.
func (Noop) Check(context.Context, string) (bool, error) {
	return true, nil
}

// OpenAIModerator checks content against the OpenAI moderation endpoint.
// Endpoint failures pass the content through rather than blocking the post.
type OpenAIModerator struct {
	api *openai.Client
}

// NewOpenAIModerator creates a moderator backed by the OpenAI moderation
// endpoint. baseURL is optional and overrides the default endpoint.
func NewOpenAIModerator(apiKey, baseURL string) *OpenAIModerator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIModerator{api: openai.NewClientWithConfig(config)}
}

// Check reports whether content passes moderation. An endpoint failure is
// logged and treated as a pass.
func (m *OpenAIModerator) Check(ctx context.Context, content string) (bool, error) {
	resp, err := m.api.Moderations(ctx, openai.ModerationRequest{Input: content})
	if err != nil {
		log.Printf("moderation check failed, passing content: %v", err)
		return true, nil
	}

	for _, result := range resp.Results {
		if result.Flagged {
			return false, nil
		}
	}
	return true, nil
}
