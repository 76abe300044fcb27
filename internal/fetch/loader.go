// Package fetch - loader.go provides URL-to-text loading with in-process memoization.
package fetch

import (
	"context"
	"sync"
)

// Loader fetches a URL and returns its main text, caching results in memory
// so repeated references to the same page within a run hit the network once.
// It satisfies the Fetcher contract of the brand drafter and tool server.
type Loader struct {
	options    *Options
	useBrowser bool
	browserURL string

	mu    sync.RWMutex
	cache map[string]string
}

// LoaderConfig holds configuration for a Loader.
type LoaderConfig struct {
	Options *Options
	// UseBrowser enables headless-browser fallback when plain HTTP yields
	// too little text (JavaScript-rendered pages).
	UseBrowser bool
	// BrowserURL is the DevTools endpoint for remote rendering. Empty means
	// launch a local headless browser instead of attaching.
	BrowserURL string
}

// NewLoader creates a Loader. A nil config uses plain HTTP with defaults.
func NewLoader(config *LoaderConfig) *Loader {
	if config == nil {
		config = &LoaderConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	return &Loader{
		options:    config.Options,
		useBrowser: config.UseBrowser,
		browserURL: config.BrowserURL,
		cache:      make(map[string]string),
	}
}

// Fetch retrieves a URL and returns its main text, from cache when the URL
// was already loaded this run.
func (l *Loader) Fetch(ctx context.Context, urlStr string) (string, error) {
	l.mu.RLock()
	text, ok := l.cache[urlStr]
	l.mu.RUnlock()
	if ok {
		return text, nil
	}

	text, err := l.load(ctx, urlStr)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	l.cache[urlStr] = text
	l.mu.Unlock()

	return text, nil
}

// FetchMultiple loads several URLs sequentially. Results are positional;
// a failed load leaves an empty string and records its error at the same index.
func (l *Loader) FetchMultiple(ctx context.Context, urls []string) ([]string, []error) {
	texts := make([]string, len(urls))
	errs := make([]error, len(urls))
	for i, u := range urls {
		texts[i], errs[i] = l.Fetch(ctx, u)
	}
	return texts, errs
}

// Invalidate drops a URL from the cache, forcing a re-fetch on next request.
func (l *Loader) Invalidate(urlStr string) {
	l.mu.Lock()
	delete(l.cache, urlStr)
	l.mu.Unlock()
}

func (l *Loader) load(ctx context.Context, urlStr string) (string, error) {
	kind := DetectSourceKind(urlStr)
	selectors := SourceContentSelectors(kind)
	noise := SourceNoiseSelectors(kind)

	result, err := URL(ctx, urlStr, l.options)
	if err != nil {
		return "", err
	}

	text, err := ExtractMainText(result.HTML, selectors, noise...)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	if l.useBrowser && ShouldUseBrowser(text) {
		html, berr := l.render(ctx, urlStr)
		if berr != nil {
			// Keep the thin HTTP text rather than failing the load.
			return text, nil
		}
		rendered, eerr := ExtractMainText(html, selectors, noise...)
		if eerr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return text, nil
}

func (l *Loader) render(ctx context.Context, urlStr string) (string, error) {
	if l.browserURL != "" {
		return WithRemoteBrowser(ctx, l.browserURL, urlStr, l.options.Timeout, false)
	}
	return WithBrowser(ctx, urlStr, l.options.Timeout, false)
}
