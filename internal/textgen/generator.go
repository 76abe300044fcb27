// Package textgen generates post text from a prompt and brand guidelines,
// with bounded retry on transient completion failures.
package textgen

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/llm"
	"github.com/jonathan/social-poster/internal/prompts"
)

const (
	defaultTemperature = 0.7
	defaultMaxTries    = 3
)

// GenerationError reports text generation failing terminally; Tries is the
// number of attempts actually made
type GenerationError struct {
	Tries int
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate text after %d tries: %v", e.Tries, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Generator produces post text via a completion client, sending a system
// message derived from the brand guidelines.
type Generator struct {
	client          llm.Client
	brand           *brand.Manager
	temperature     float32
	maxTries        int
	initialInterval time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithTemperature overrides the default sampling temperature (0.7).
func WithTemperature(t float32) Option {
	return func(g *Generator) { g.temperature = t }
}

// WithMaxTries overrides the retry ceiling (3 tries).
func WithMaxTries(n int) Option {
	return func(g *Generator) { g.maxTries = n }
}

// WithRetryInterval overrides the initial backoff interval. Tests use this to
// avoid real waits.
func WithRetryInterval(d time.Duration) Option {
	return func(g *Generator) { g.initialInterval = d }
}

// NewGenerator creates a Generator for one brand.
func NewGenerator(client llm.Client, manager *brand.Manager, opts ...Option) *Generator {
	g := &Generator{
		client:          client,
		brand:           manager,
		temperature:     defaultTemperature,
		maxTries:        defaultMaxTries,
		initialInterval: time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SystemMessage returns the completion system message built from the brand
// guidelines.
func (g *Generator) SystemMessage() string {
	return prompts.BuildSystemMessage(
		g.brand.BrandName(),
		g.brand.Voice(),
		g.brand.ContentRequirements(),
		g.brand.ProhibitedContent(),
	)
}

// Generate produces post text for prompt. maxTokens bounds the output budget;
// the platform formatter, not this component, enforces the character limit.
// Transient completion failures are retried with exponential backoff up to
// the configured ceiling; terminal failures and exhausted retries surface as
// a GenerationError.
func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	attempts := 0
	operation := func() (string, error) {
		attempts++
		text, err := g.client.Complete(ctx, g.SystemMessage(), prompt, maxTokens, g.temperature)
		if err != nil {
			if llm.IsTransient(err) {
				return "", err
			}
			return "", backoff.Permanent(err)
		}
		return text, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.initialInterval

	text, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(g.maxTries)),
	)
	if err != nil {
		return "", &GenerationError{Tries: attempts, Cause: err}
	}
	return text, nil
}
