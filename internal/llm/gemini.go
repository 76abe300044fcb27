package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, config *Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, &APICallError{
			Provider:  "gemini",
			Operation: "init",
			Cause:     errMissingAPIKey,
		}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, &APICallError{Provider: "gemini", Operation: "init", Cause: err}
	}

	model := config.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	cfg := *config
	cfg.Model = model

	return &GeminiClient{
		client: client,
		config: &cfg,
	}, nil
}

// Complete generates text from a system and user message.
func (c *GeminiClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(temperature)
	if maxTokens > 0 {
		model.SetMaxOutputTokens(int32(maxTokens))
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", &APICallError{Provider: "gemini", Operation: "completion", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// CompleteStructured generates a JSON document conforming to schema. Gemini
// has no strict schema mode comparable to OpenAI's, so the schema document is
// inlined into the prompt and the response is forced to JSON.
func (c *GeminiClient) CompleteStructured(ctx context.Context, prompt, systemPrompt string, schema SchemaSpec) (json.RawMessage, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	full := fmt.Sprintf("%s\n\nRespond with a single JSON object conforming to this JSON schema:\n%s", prompt, string(schema.Schema))

	resp, err := model.GenerateContent(ctx, genai.Text(full))
	if err != nil {
		return nil, &APICallError{Provider: "gemini", Operation: "structured completion", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(CleanJSONBlock(text)), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &APICallError{Provider: "gemini", Operation: "completion", Cause: errEmptyResponse}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &APICallError{Provider: "gemini", Operation: "completion", Cause: errEmptyResponse}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &APICallError{Provider: "gemini", Operation: "completion", Cause: errEmptyResponse}
	}

	return strings.Join(parts, ""), nil
}
