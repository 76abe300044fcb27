package brand

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/social-poster/internal/llm"
	"github.com/jonathan/social-poster/internal/store"
	"github.com/jonathan/social-poster/internal/types"
)

func TestManager_DefaultsWhenNoProfile(t *testing.T) {
	m := NewManager(nil)

	assert.False(t, m.HasProfile())
	assert.Equal(t, "AstroCalc Pro", m.BrandName())
	assert.NotEmpty(t, m.Voice().Description)
	assert.NotEmpty(t, m.ContentRequirements())
	assert.NotEmpty(t, m.ProhibitedContent())
	assert.NotEmpty(t, m.ProductFeatures())
	assert.NotEmpty(t, m.VisualStyle().Colors)
}

func TestManager_UsesSuppliedProfile(t *testing.T) {
	m := NewManager(&types.BrandProfile{BrandName: "Acme"})

	assert.True(t, m.HasProfile())
	assert.Equal(t, "Acme", m.BrandName())
	// Supplied profile is authoritative even where empty.
	assert.Empty(t, m.ContentRequirements())
}

func TestManager_PlatformGuidelines(t *testing.T) {
	m := NewManager(nil)

	twitter := m.PlatformGuidelines("Twitter")
	assert.Equal(t, "More casual, brief but impactful", twitter.Tone)
	assert.NotEmpty(t, twitter.Hashtags)

	unknown := m.PlatformGuidelines("myspace")
	assert.Empty(t, unknown.Tone)
}

func TestDefaultProfile_IsValid(t *testing.T) {
	assert.NoError(t, ValidateProfile(DefaultProfile()))
}

func TestValidateProfile_RequiresBrandName(t *testing.T) {
	err := ValidateProfile(&types.BrandProfile{})
	require.Error(t, err)

	var invalidErr *InvalidProfileError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestValidateProfile_RejectsBadColors(t *testing.T) {
	profile := DefaultProfile()
	profile.VisualStyle.Colors = []string{"#1A2980", "blue"}

	err := ValidateProfile(profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AstroCalc Pro")
}

// fakeLLM returns canned structured-completion output.
type fakeLLM struct {
	structured json.RawMessage
	err        error
}

func (f *fakeLLM) Complete(context.Context, string, string, int, float32) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeLLM) CompleteStructured(context.Context, string, string, llm.SchemaSpec) (json.RawMessage, error) {
	return f.structured, f.err
}

func (f *fakeLLM) Close() error { return nil }

type fakeFetcher struct {
	content string
	err     error
	gotURL  string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.gotURL = url
	return f.content, f.err
}

func defaultProfileJSON(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(DefaultProfile())
	require.NoError(t, err)
	return raw
}

func TestDrafter_DraftSavesProfile(t *testing.T) {
	st := store.NewMemoryStore()
	fetcher := &fakeFetcher{content: "AstroCalc Pro homepage text"}
	drafter := NewDrafter(&fakeLLM{structured: defaultProfileJSON(t)}, st, fetcher)

	profile, err := drafter.Draft(context.Background(), "AstroCalc Pro", "https://astrocalc.test", "")
	require.NoError(t, err)
	assert.Equal(t, "AstroCalc Pro", profile.BrandName)
	assert.Equal(t, "https://astrocalc.test", fetcher.gotURL)

	saved, err := st.Get(context.Background(), "AstroCalc Pro")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, profile.BrandName, saved.BrandName)
}

func TestDrafter_DraftWithoutHomepage(t *testing.T) {
	st := store.NewMemoryStore()
	drafter := NewDrafter(&fakeLLM{structured: defaultProfileJSON(t)}, st, nil)

	profile, err := drafter.Draft(context.Background(), "AstroCalc Pro", "", "An astronomy calculation app")
	require.NoError(t, err)
	assert.Equal(t, "AstroCalc Pro", profile.BrandName)

	saved, err := st.Get(context.Background(), "AstroCalc Pro")
	require.NoError(t, err)
	require.NotNil(t, saved)
}

func TestDrafter_RequiresBrandName(t *testing.T) {
	drafter := NewDrafter(&fakeLLM{}, store.NewMemoryStore(), nil)

	_, err := drafter.Draft(context.Background(), "", "", "desc")
	require.Error(t, err)

	var draftErr *DraftError
	require.ErrorAs(t, err, &draftErr)
	assert.Equal(t, "input validation", draftErr.Stage)
}

func TestDrafter_FetchFailureIsFatal(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	drafter := NewDrafter(&fakeLLM{structured: defaultProfileJSON(t)}, store.NewMemoryStore(), fetcher)

	_, err := drafter.Draft(context.Background(), "Acme", "https://acme.test", "")
	require.Error(t, err)

	var draftErr *DraftError
	require.ErrorAs(t, err, &draftErr)
	assert.Equal(t, "homepage fetch", draftErr.Stage)
}

func TestDrafter_RejectsNonconformingExtraction(t *testing.T) {
	// Output carries an unknown top-level key and misses required fields.
	bad := json.RawMessage(`{"brand_name":"Acme","surprise":true}`)
	drafter := NewDrafter(&fakeLLM{structured: bad}, store.NewMemoryStore(), nil)

	_, err := drafter.Draft(context.Background(), "Acme", "", "desc")
	require.Error(t, err)

	var draftErr *DraftError
	require.ErrorAs(t, err, &draftErr)
	assert.Equal(t, "schema validation", draftErr.Stage)

	// Nothing was persisted.
	names, listErr := store.NewMemoryStore().List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, names)
}

func TestDrafter_ExtractionErrorPropagates(t *testing.T) {
	drafter := NewDrafter(&fakeLLM{err: errors.New("quota exceeded")}, store.NewMemoryStore(), nil)

	_, err := drafter.Draft(context.Background(), "Acme", "", "desc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction")
}
