package types

// GeneratedPost is the assembled output of the content pipeline for one
// platform. Twitter and LinkedIn posts use Text as the primary field;
// Instagram uses Caption.
type GeneratedPost struct {
	Platform         string     `json:"platform"`
	Text             string     `json:"text,omitempty"`
	Caption          string     `json:"caption,omitempty"`
	Hashtags         []string   `json:"hashtags"`
	HashtagString    string     `json:"hashtag_string,omitempty"`
	CharacterCount   int        `json:"character_count"`
	Timestamp        string     `json:"timestamp"`
	TrendSource      string     `json:"trend_source"`
	ModerationPassed bool       `json:"moderation_passed"`
	ImageRatio       string     `json:"image_ratio,omitempty"`
	Image            *ImageInfo `json:"image,omitempty"`
	Warning          string     `json:"warning,omitempty"`
}

// PrimaryText returns the platform's primary text field: Caption for
// Instagram (falling back to Text when Caption is empty), Text otherwise.
func (p *GeneratedPost) PrimaryText() string {
	if p.Platform == "instagram" {
		if p.Caption != "" {
			return p.Caption
		}
		return p.Text
	}
	return p.Text
}

// SetPrimaryText writes to the platform's primary text field. For Instagram
// the text is promoted to Caption and Text is cleared, so a serialized post
// carries exactly one primary field.
func (p *GeneratedPost) SetPrimaryText(text string) {
	if p.Platform == "instagram" {
		p.Caption = text
		p.Text = ""
		return
	}
	p.Text = text
}

// ImageInfo describes the outcome of an image generation attempt. Exactly one
// of the three shapes is populated: a successful generation (Filename, Seed,
// dimensions, ...), a disabled marker (Status "disabled"), or an error
// descriptor (Error). Prompt is always set.
type ImageInfo struct {
	Status    string  `json:"status,omitempty"`
	Error     string  `json:"error,omitempty"`
	Filename  string  `json:"filename,omitempty"`
	Filepath  *string `json:"filepath,omitempty"`
	Prompt    string  `json:"prompt"`
	Seed      int64   `json:"seed,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	Saved     bool    `json:"saved,omitempty"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
}
