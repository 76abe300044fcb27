package prompts

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jonathan/social-poster/internal/platform"
	"github.com/jonathan/social-poster/internal/types"
)

// BuildPostPrompt composes the user prompt for one platform's post: the
// platform instruction with its length and hashtag constraints, the raw
// source content, and the product features rendered as a markdown table.
// Returns an UnsupportedPlatformError for platforms outside the known set.
func BuildPostPrompt(platformName string, trend types.TrendContent, features []types.ProductFeature) (string, error) {
	c, err := platform.ConstraintsFor(platformName)
	if err != nil {
		return "", err
	}

	template := MustGet("content.json", "post-instruction")
	return Format(template, map[string]string{
		"Platform":     platformName,
		"MaxLength":    strconv.Itoa(c.MaxLength),
		"HashtagLimit": strconv.Itoa(c.HashtagLimit),
		"Content":      trend.Content,
		"Products":     renderFeatureTable(features),
	}), nil
}

// renderFeatureTable formats product features as a github-style markdown
// table with name, description, and benefit columns.
func renderFeatureTable(features []types.ProductFeature) string {
	var sb strings.Builder

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Name", "Description", "Benefit"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")

	for _, f := range features {
		table.Append([]string{f.Name, f.Description, f.Benefit})
	}
	table.Render()

	return sb.String()
}

// BuildImagePrompt composes an image-generation prompt from the trend subject
// and the brand's visual style. The subject is clipped so style directives
// are never pushed out of the prompt by long source text.
func BuildImagePrompt(platformName string, trend types.TrendContent, style types.VisualStyle) string {
	subject := trend.Content
	if runes := []rune(subject); len(runes) > 300 {
		subject = string(runes[:300])
	}

	template := MustGet("content.json", "image-prompt")
	return Format(template, map[string]string{
		"Platform":         platformName,
		"Subject":          strings.TrimSpace(subject),
		"StyleDescription": style.Description,
		"PreferredImagery": style.PreferredImagery,
		"Colors":           strings.Join(style.Colors, ", "),
	})
}

// BuildSystemMessage composes the completion system message from brand
// guidelines. Sections backed by empty profile fields are omitted.
func BuildSystemMessage(brandName string, voice types.Voice, requirements, prohibited []string) string {
	var sb strings.Builder
	sb.WriteString(MustGet("content.json", "system-base"))

	if brandName != "" {
		sb.WriteString("\n\n")
		sb.WriteString(Format(MustGet("content.json", "brand-exclusivity"), map[string]string{
			"BrandName": brandName,
		}))
	}

	if voice.Description != "" || len(voice.Traits) > 0 {
		sb.WriteString("\n\nBrand Voice: ")
		sb.WriteString(voice.Description)
		if len(voice.Traits) > 0 {
			sb.WriteString("\nTraits: ")
			sb.WriteString(strings.Join(voice.Traits, "; "))
		}
	}

	if len(requirements) > 0 {
		sb.WriteString("\n\nContent Requirements: ")
		sb.WriteString(strings.Join(requirements, "; "))
	}

	if len(prohibited) > 0 {
		sb.WriteString("\n\nProhibited Content: ")
		sb.WriteString(strings.Join(prohibited, "; "))
	}

	return sb.String()
}

// BuildDraftProfilePrompt composes the structured-extraction prompt used to
// draft a brand profile from a name, an optional description, and optional
// homepage content.
func BuildDraftProfilePrompt(brandName, description, homepageURL, homepageContent string) string {
	var sb strings.Builder
	sb.WriteString("Brand name: ")
	sb.WriteString(brandName)
	if description != "" {
		sb.WriteString("\nBrand description: ")
		sb.WriteString(description)
	}
	if homepageURL != "" {
		sb.WriteString("\nHome page url: ")
		sb.WriteString(homepageURL)
		sb.WriteString("\nHome page content: ")
		sb.WriteString(homepageContent)
	}

	template := MustGet("drafting.json", "draft-brand-profile")
	return Format(template, map[string]string{
		"Content": sb.String(),
	})
}

// DraftSystemPrompt returns the system message for brand-profile extraction.
func DraftSystemPrompt() string {
	return MustGet("drafting.json", "draft-system")
}

// LanguagePin returns the instruction line pinning the post language.
func LanguagePin(language string) string {
	return Format(MustGet("content.json", "language-pin"), map[string]string{
		"Language": language,
	})
}
