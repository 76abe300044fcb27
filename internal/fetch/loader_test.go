package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_FetchExtractsText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><p>AstroCalc Pro predicts eclipses.</p></main></body></html>`))
	}))
	defer server.Close()

	loader := NewLoader(nil)
	text, err := loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "predicts eclipses")
}

func TestLoader_CachesRepeatFetches(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body><main><p>Once only.</p></main></body></html>`))
	}))
	defer server.Close()

	loader := NewLoader(nil)
	first, err := loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}

func TestLoader_InvalidateForcesRefetch(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body><main><p>Fresh content.</p></main></body></html>`))
	}))
	defer server.Close()

	loader := NewLoader(nil)
	_, err := loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	loader.Invalidate(server.URL)
	_, err = loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, 2, hits)
}

func TestLoader_FetchErrorNotCached(t *testing.T) {
	status := http.StatusServiceUnavailable
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`<html><body><main><p>Back online.</p></main></body></html>`))
	}))
	defer server.Close()

	loader := NewLoader(nil)
	_, err := loader.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)

	status = http.StatusOK
	text, err := loader.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Back online")
}

func TestLoader_FetchMultiple(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`<html><body><main><p>Page text.</p></main></body></html>`))
	}))
	defer server.Close()

	loader := NewLoader(nil)
	texts, errs := loader.FetchMultiple(context.Background(), []string{
		server.URL + "/ok",
		server.URL + "/bad",
	})

	require.Len(t, texts, 2)
	require.Len(t, errs, 2)
	assert.Contains(t, texts[0], "Page text")
	assert.NoError(t, errs[0])
	assert.Empty(t, texts[1])
	assert.Error(t, errs[1])
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("too short"))
	assert.True(t, ShouldUseBrowser("   \n  "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
