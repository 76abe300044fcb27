// Package imagegen generates post images via the Stability AI text-to-image
// API, mapping platform aspect ratios to pixel dimensions and persisting
// output to disk. Failures degrade to error descriptors rather than aborting
// the surrounding post.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/jonathan/social-poster/internal/types"
)

const (
	defaultAPIHost  = "https://api.stability.ai"
	defaultEngineID = "stable-diffusion-xl-1024-v1-0"
	defaultMaxTries = 3

	// DefaultCfgScale is how strictly the model follows the prompt.
	DefaultCfgScale = 7.0
	// DefaultSteps is the number of diffusion steps.
	DefaultSteps = 30
)

// APIError reports a non-200 response from the image endpoint. These are
// terminal: a malformed request or quota failure will not heal on retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Body)
}

// Request describes one image generation.
type Request struct {
	Prompt      string
	AspectRatio string
	Save        bool
	CfgScale    float64
	Steps       int
}

// Generator calls the Stability AI API with bounded retry on network
// failures.
type Generator struct {
	enabled         bool
	apiKey          string
	apiHost         string
	engineID        string
	outputDir       string
	maxTries        int
	initialInterval time.Duration
	httpClient      *http.Client
}

// Option configures a Generator.
type Option func(*Generator)

// WithAPIHost overrides the Stability API host. Tests point this at a local
// server.
func WithAPIHost(host string) Option {
	return func(g *Generator) { g.apiHost = host }
}

// WithEngine overrides the model engine ID.
func WithEngine(engineID string) Option {
	return func(g *Generator) { g.engineID = engineID }
}

// WithMaxTries overrides the retry ceiling (3 tries).
func WithMaxTries(n int) Option {
	return func(g *Generator) { g.maxTries = n }
}

// WithRetryInterval overrides the initial backoff interval.
func WithRetryInterval(d time.Duration) Option {
	return func(g *Generator) { g.initialInterval = d }
}

// NewGenerator creates a Generator. When enabled is false, Generate returns
// a disabled descriptor without touching the network.
func NewGenerator(enabled bool, apiKey, outputDir string, opts ...Option) *Generator {
	g := &Generator{
		enabled:         enabled,
		apiKey:          apiKey,
		apiHost:         defaultAPIHost,
		engineID:        defaultEngineID,
		outputDir:       outputDir,
		maxTries:        defaultMaxTries,
		initialInterval: 2 * time.Second,
		httpClient:      &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}

	if enabled && apiKey == "" {
		log.Printf("Stability AI API key not found. Image generation will fail.")
	}

	return g
}

// DimensionsForAspectRatio converts an aspect ratio string to pixel
// dimensions. Unrecognized ratios log a warning and fall back to square.
func DimensionsForAspectRatio(aspectRatio string) (width, height int) {
	switch aspectRatio {
	case "1:1":
		return 1024, 1024
	case "16:9":
		return 1024, 576
	case "4:5":
		return 768, 960
	case "3:2":
		return 1024, 682
	case "4:3":
		return 1024, 768
	default:
		log.Printf("Unrecognized aspect ratio: %s. Using 1:1 (square).", aspectRatio)
		return 1024, 1024
	}
}

type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type generationRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CfgScale    float64      `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Steps       int          `json:"steps"`
	Samples     int          `json:"samples"`
}

type artifact struct {
	Base64 string `json:"base64"`
	Seed   int64  `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type generationResponse struct {
	Artifacts []artifact `json:"artifacts"`
}

// Generate produces an image for the request and returns its descriptor.
// The descriptor carries exactly one shape: disabled, an error, or a
// generated image. Network failures are retried with exponential backoff;
// API errors are terminal. Errors never escape as Go errors — a post can
// always be assembled around the descriptor.
func (g *Generator) Generate(ctx context.Context, req Request) *types.ImageInfo {
	if !g.enabled {
		return &types.ImageInfo{Status: "disabled", Prompt: req.Prompt}
	}
	if g.apiKey == "" {
		return &types.ImageInfo{Error: "API key not configured", Prompt: req.Prompt}
	}

	if req.CfgScale == 0 {
		req.CfgScale = DefaultCfgScale
	}
	if req.Steps == 0 {
		req.Steps = DefaultSteps
	}
	width, height := DimensionsForAspectRatio(req.AspectRatio)

	operation := func() (*generationResponse, error) {
		return g.callAPI(ctx, req, width, height)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.initialInterval

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(g.maxTries)),
	)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &types.ImageInfo{Error: apiErr.Error(), Prompt: req.Prompt}
		}
		return &types.ImageInfo{
			Error:  fmt.Sprintf("Failed after %d tries: %v", g.maxTries, err),
			Prompt: req.Prompt,
		}
	}

	return g.processResponse(resp, req)
}

// callAPI performs one text-to-image request. Non-200 responses are wrapped
// in APIError and marked permanent so they are not retried.
func (g *Generator) callAPI(ctx context.Context, req Request, width, height int) (*generationResponse, error) {
	body, err := json.Marshal(generationRequest{
		TextPrompts: []textPrompt{{Text: req.Prompt, Weight: 1.0}},
		CfgScale:    req.CfgScale,
		Height:      height,
		Width:       width,
		Steps:       req.Steps,
		Samples:     1,
	})
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", g.apiHost, g.engineID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(&APIError{StatusCode: resp.StatusCode, Body: string(respBody)})
	}

	var genResp generationResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, backoff.Permanent(err)
	}
	return &genResp, nil
}

// processResponse decodes the first artifact and persists it when requested.
func (g *Generator) processResponse(resp *generationResponse, req Request) *types.ImageInfo {
	if len(resp.Artifacts) == 0 {
		return &types.ImageInfo{Error: "No image artifacts found in response", Prompt: req.Prompt}
	}
	art := resp.Artifacts[0]

	timestamp := time.Now().Format("20060102_150405")
	uniqueID := uuid.NewString()[:8]
	filename := fmt.Sprintf("image_%s_%s.png", timestamp, uniqueID)

	info := &types.ImageInfo{
		Filename:  filename,
		Prompt:    req.Prompt,
		Seed:      art.Seed,
		Timestamp: timestamp,
		Saved:     req.Save,
		Width:     art.Width,
		Height:    art.Height,
	}

	if req.Save {
		data, err := base64.StdEncoding.DecodeString(art.Base64)
		if err != nil {
			return &types.ImageInfo{Error: fmt.Sprintf("failed to decode image payload: %v", err), Prompt: req.Prompt}
		}
		if err := os.MkdirAll(g.outputDir, 0755); err != nil {
			return &types.ImageInfo{Error: fmt.Sprintf("failed to create output directory: %v", err), Prompt: req.Prompt}
		}
		path := filepath.Join(g.outputDir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return &types.ImageInfo{Error: fmt.Sprintf("failed to save image: %v", err), Prompt: req.Prompt}
		}
		info.Filepath = &path
	}

	return info
}
