package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSourceKind(t *testing.T) {
	tests := []struct {
		url  string
		kind SourceKind
	}{
		{"https://medium.com/@someone/a-post", SourceBlog},
		{"https://example.substack.com/p/weekly", SourceBlog},
		{"https://blog.example.com/launch", SourceBlog},
		{"https://example.com/blog/launch", SourceBlog},
		{"https://example.com/news/telescope-find", SourceNews},
		{"https://news.example.com/2026/08/story", SourceNews},
		{"https://example.com/article/12345", SourceNews},
		{"https://example.com/", SourceMarketing},
		{"https://example.com", SourceMarketing},
		{"https://example.com/about-us", SourceMarketing},
		{"https://example.com/products/app", SourceMarketing},
		{"https://example.com/docs/api", SourceUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, DetectSourceKind(tt.url), "url %q", tt.url)
	}
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "example.com", SourceName("https://www.example.com/news/x"))
	assert.Equal(t, "news.example.com", SourceName("https://news.example.com/x"))
	assert.Equal(t, "unknown", SourceName("not a url at all ://"))
	assert.Equal(t, "unknown", SourceName("relative/path"))
}

func TestSourceContentSelectors(t *testing.T) {
	assert.Equal(t, ArticleSelectors(), SourceContentSelectors(SourceNews))
	assert.Equal(t, MarketingPageSelectors(), SourceContentSelectors(SourceMarketing))
	assert.Equal(t, DefaultTextSelectors(), SourceContentSelectors(SourceUnknown))
	assert.Contains(t, SourceContentSelectors(SourceBlog), ".post-content")
}

func TestSourceNoiseSelectors(t *testing.T) {
	for _, kind := range []SourceKind{SourceNews, SourceBlog, SourceMarketing, SourceUnknown} {
		assert.Contains(t, SourceNoiseSelectors(kind), ".cookie-banner", "kind %q", kind)
	}
	assert.Contains(t, SourceNoiseSelectors(SourceNews), ".related-articles")
	assert.Contains(t, SourceNoiseSelectors(SourceBlog), ".author-bio")
	assert.Contains(t, SourceNoiseSelectors(SourceMarketing), ".pricing-table")
}
