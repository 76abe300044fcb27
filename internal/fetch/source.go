// Package fetch - source.go provides source-kind detection and source-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// SourceKind classifies the kind of page a URL points at, which determines
// the selectors used to pull its main text.
type SourceKind string

const (
	// SourceNews is a news or media article page
	SourceNews SourceKind = "news"
	// SourceBlog is a blog or publishing-platform post
	SourceBlog SourceKind = "blog"
	// SourceMarketing is a brand homepage or product page
	SourceMarketing SourceKind = "marketing"
	// SourceUnknown is an unrecognized page kind
	SourceUnknown SourceKind = "unknown"
)

// DetectSourceKind classifies a URL by host and path heuristics.
func DetectSourceKind(urlStr string) SourceKind {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return SourceUnknown
	}

	host := strings.ToLower(parsed.Host)
	path := strings.ToLower(parsed.Path)

	// Publishing platforms
	if strings.Contains(host, "medium.com") ||
		strings.Contains(host, "substack.com") ||
		strings.Contains(host, "wordpress.com") ||
		strings.Contains(host, "blogspot.com") ||
		strings.HasPrefix(host, "blog.") {
		return SourceBlog
	}

	// News paths and hosts
	if strings.Contains(path, "/news/") ||
		strings.Contains(path, "/article/") ||
		strings.Contains(path, "/story/") ||
		strings.HasPrefix(host, "news.") {
		return SourceNews
	}

	// Blog paths on arbitrary hosts
	if strings.Contains(path, "/blog/") || strings.Contains(path, "/posts/") {
		return SourceBlog
	}

	// Bare or near-bare paths are almost always landing pages
	if path == "" || path == "/" ||
		strings.Contains(path, "/about") ||
		strings.Contains(path, "/product") ||
		strings.Contains(path, "/features") {
		return SourceMarketing
	}

	return SourceUnknown
}

// SourceName returns a short provenance label for a URL: the host with any
// leading "www." stripped. Invalid URLs yield "unknown".
func SourceName(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
}

// SourceContentSelectors returns content selectors optimized for a source kind.
func SourceContentSelectors(kind SourceKind) []string {
	switch kind {
	case SourceNews:
		return ArticleSelectors()
	case SourceBlog:
		return []string{
			".post-content",
			".entry-content",
			".post-body",
			"article",
			"main",
			".content",
		}
	case SourceMarketing:
		return MarketingPageSelectors()
	default:
		return DefaultTextSelectors()
	}
}

// SourceNoiseSelectors returns noise exclusion selectors for a source kind.
func SourceNoiseSelectors(kind SourceKind) []string {
	// Common noise selectors for all source kinds
	common := []string{
		// Subscription and signup prompts
		".newsletter-signup",
		".subscribe-banner",
		".paywall",
		".signup-prompt",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Comments
		".comments",
		"#comments",
		".comment-section",
	}

	switch kind {
	case SourceNews:
		return append(common,
			".related-articles",
			".related-stories",
			".trending-now",
			".breaking-banner",
		)
	case SourceBlog:
		return append(common,
			".author-bio",
			".post-navigation",
			".recommended-posts",
		)
	case SourceMarketing:
		return append(common,
			".pricing-table",
			".testimonial-carousel",
			".chat-widget",
		)
	default:
		return common
	}
}
