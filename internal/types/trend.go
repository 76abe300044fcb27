package types

// TrendContent is the raw source material a post is generated from: scraped
// page text, a user request, or both. Hashtags and Source carry optional
// provenance from whatever surfaced the trend.
type TrendContent struct {
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags,omitempty"`
	Source   string   `json:"source,omitempty"`
}

// SourceName returns the trend's provenance, or "unknown" when unset.
func (t TrendContent) SourceName() string {
	if t.Source == "" {
		return "unknown"
	}
	return t.Source
}
