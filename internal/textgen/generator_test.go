package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/llm"
	"github.com/jonathan/social-poster/internal/types"
)

// scriptedClient returns one queued response per Complete call.
type scriptedClient struct {
	responses []response
	calls     int
	gotSystem string
	gotTokens int
}

type response struct {
	text string
	err  error
}

func (s *scriptedClient) Complete(_ context.Context, system, _ string, maxTokens int, _ float32) (string, error) {
	s.gotSystem = system
	s.gotTokens = maxTokens
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++
	r := s.responses[idx]
	return r.text, r.err
}

func (s *scriptedClient) CompleteStructured(context.Context, string, string, llm.SchemaSpec) (json.RawMessage, error) {
	return nil, errors.New("not implemented")
}

func (s *scriptedClient) Close() error { return nil }

func fastGenerator(client llm.Client, manager *brand.Manager) *Generator {
	return NewGenerator(client, manager, WithRetryInterval(time.Millisecond))
}

func TestGenerate_Success(t *testing.T) {
	client := &scriptedClient{responses: []response{{text: "A stellar post #Astronomy"}}}
	g := fastGenerator(client, brand.NewManager(nil))

	text, err := g.Generate(context.Background(), "write a post", 280)
	require.NoError(t, err)
	assert.Equal(t, "A stellar post #Astronomy", text)
	assert.Equal(t, 280, client.gotTokens)
}

func TestGenerate_SystemMessageCarriesGuidelines(t *testing.T) {
	client := &scriptedClient{responses: []response{{text: "ok"}}}
	g := fastGenerator(client, brand.NewManager(nil))

	_, err := g.Generate(context.Background(), "write", 100)
	require.NoError(t, err)

	assert.Contains(t, client.gotSystem, "ONLY promote AstroCalc Pro")
	assert.Contains(t, client.gotSystem, "Brand Voice:")
	assert.Contains(t, client.gotSystem, "Prohibited Content:")
}

func TestGenerate_SystemMessageOmitsEmptySections(t *testing.T) {
	manager := brand.NewManager(&types.BrandProfile{BrandName: "Acme"})
	client := &scriptedClient{responses: []response{{text: "ok"}}}
	g := fastGenerator(client, manager)

	_, err := g.Generate(context.Background(), "write", 100)
	require.NoError(t, err)

	assert.Contains(t, client.gotSystem, "ONLY promote Acme")
	assert.NotContains(t, client.gotSystem, "Brand Voice:")
	assert.NotContains(t, client.gotSystem, "Content Requirements:")
}

func TestGenerate_RetriesTransientFailure(t *testing.T) {
	transient := &openai.APIError{HTTPStatusCode: 503, Message: "overloaded"}
	client := &scriptedClient{responses: []response{
		{err: transient},
		{err: transient},
		{text: "recovered"},
	}}
	g := fastGenerator(client, brand.NewManager(nil))

	text, err := g.Generate(context.Background(), "write", 280)
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 3, client.calls)
}

func TestGenerate_ExhaustedRetries(t *testing.T) {
	transient := &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
	client := &scriptedClient{responses: []response{{err: transient}}}
	g := fastGenerator(client, brand.NewManager(nil))

	_, err := g.Generate(context.Background(), "write", 280)
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, 3, genErr.Tries)
	assert.Contains(t, err.Error(), "after 3 tries")
}

func TestGenerate_TerminalErrorNotRetried(t *testing.T) {
	terminal := &openai.APIError{HTTPStatusCode: 400, Message: "bad request"}
	client := &scriptedClient{responses: []response{
		{err: terminal},
		{text: "should never be reached"},
	}}
	g := fastGenerator(client, brand.NewManager(nil))

	_, err := g.Generate(context.Background(), "write", 280)
	require.Error(t, err)
	assert.Equal(t, 1, client.calls)

	// The terminal error names the one attempt that happened, not the
	// retry ceiling.
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, 1, genErr.Tries)
	assert.Contains(t, err.Error(), "after 1 tries")
}
