package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client for OpenAI and OpenAI-compatible endpoints.
type OpenAIClient struct {
	api    *openai.Client
	config *Config
}

// NewOpenAIClient creates an OpenAI-backed client.
func NewOpenAIClient(config *Config) (*OpenAIClient, error) {
	if config.APIKey == "" && config.BaseURL == "" {
		return nil, &APICallError{
			Provider:  "openai",
			Operation: "init",
			Cause:     errMissingAPIKey,
		}
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	cfg := *config
	cfg.Model = model

	return &OpenAIClient{
		api:    openai.NewClientWithConfig(clientConfig),
		config: &cfg,
	}, nil
}

// Complete generates text from a system and user message.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		N:           1,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &APICallError{Provider: "openai", Operation: "completion", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &APICallError{Provider: "openai", Operation: "completion", Cause: errEmptyResponse}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// CompleteStructured generates a JSON document conforming to schema, using
// the provider's strict json_schema response format.
func (c *OpenAIClient) CompleteStructured(ctx context.Context, prompt, systemPrompt string, schema SchemaSpec) (json.RawMessage, error) {
	if systemPrompt == "" {
		systemPrompt = "You are best at extracting/generating data from content."
	}

	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schema.Name,
				Schema: schema.Schema,
				Strict: true,
			},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &APICallError{Provider: "openai", Operation: "structured completion", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &APICallError{Provider: "openai", Operation: "structured completion", Cause: errEmptyResponse}
	}

	return json.RawMessage(CleanJSONBlock(resp.Choices[0].Message.Content)), nil
}

// Close releases resources held by the client.
func (c *OpenAIClient) Close() error {
	return nil
}
