// Package types defines the shared data structures used across the post
// generation pipeline: brand profiles, trend content, and generated posts.
package types

// BrandProfile describes a brand's voice, visual identity, product facts, and
// per-platform posting rules. Profiles drafted via structured extraction are
// complete; profiles loaded from storage may be partial, in which case the
// brand package substitutes defaults through its accessors.
type BrandProfile struct {
	BrandName           string                        `json:"brand_name" validate:"required"`
	Voice               Voice                         `json:"voice"`
	ContentRequirements []string                      `json:"content_requirements"`
	ProhibitedContent   []string                      `json:"prohibited_content"`
	VisualStyle         VisualStyle                   `json:"visual_style"`
	ProductMentions     ProductMentions               `json:"product_mentions"`
	Platforms           map[string]PlatformGuidelines `json:"platforms"`
	ProductFeatures     []ProductFeature              `json:"product_features"`
	TargetAudience      TargetAudience                `json:"target_audience"`
}

// Voice captures the brand's tone and communication style.
type Voice struct {
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
}

// VisualStyle describes the visual and design style of brand assets.
// Colors are hex strings in the form #RRGGBB.
type VisualStyle struct {
	Description      string   `json:"description"`
	Colors           []string `json:"colors" validate:"dive,brandcolor"`
	PreferredImagery string   `json:"preferred_imagery"`
	Diagrams         string   `json:"diagrams"`
}

// ProductMentions encodes the rules for referring to the product in content.
type ProductMentions struct {
	FirstMention       string   `json:"first_mention"`
	SubsequentMentions []string `json:"subsequent_mentions"`
	Emphasis           string   `json:"emphasis"`
}

// PlatformGuidelines holds platform-specific tone, hashtags, and call to action.
type PlatformGuidelines struct {
	Tone     string   `json:"tone"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}

// ProductFeature is a single product feature with its benefit framing.
type ProductFeature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Benefit     string `json:"benefit"`
}

// TargetAudience lists the primary and secondary audiences for the brand.
type TargetAudience struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}
