// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/social-poster/internal/publish"
	"github.com/jonathan/social-poster/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens a string to max characters with an ellipsis.
func clip(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintBrandProfile outputs a human-readable summary of a brand profile.
func (p *Printer) PrintBrandProfile(profile *types.BrandProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Brand:  %s\n", profile.BrandName))
	sb.WriteString(fmt.Sprintf("Voice:  %s\n", clip(profile.Voice.Description, 45)))
	sb.WriteString("\n")

	if len(profile.ContentRequirements) > 0 {
		sb.WriteString("Content Requirements:\n")
		count := min(len(profile.ContentRequirements), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", clip(profile.ContentRequirements[i], 50)))
		}
		if len(profile.ContentRequirements) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.ContentRequirements)-3))
		}
		sb.WriteString("\n")
	}

	if len(profile.ProhibitedContent) > 0 {
		sb.WriteString("Prohibited:\n")
		count := min(len(profile.ProhibitedContent), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", clip(profile.ProhibitedContent[i], 50)))
		}
		if len(profile.ProhibitedContent) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.ProhibitedContent)-3))
		}
		sb.WriteString("\n")
	}

	if len(profile.ProductFeatures) > 0 {
		sb.WriteString("Product Features:\n")
		count := min(len(profile.ProductFeatures), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", clip(profile.ProductFeatures[i].Name, 50)))
		}
		if len(profile.ProductFeatures) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.ProductFeatures)-maxItemsToShow))
		}
	}

	p.printBox("BRAND PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPost outputs a generated post with its metadata.
func (p *Printer) PrintPost(post *types.GeneratedPost) {
	if post == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Platform:   %s\n", post.Platform))
	sb.WriteString(fmt.Sprintf("Characters: %d\n", post.CharacterCount))
	moderation := "passed"
	if !post.ModerationPassed {
		moderation = "FLAGGED"
	}
	sb.WriteString(fmt.Sprintf("Moderation: %s\n", moderation))
	sb.WriteString("\n")

	text := post.PrimaryText()
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(clip(line, 52))
		sb.WriteString("\n")
	}

	if len(post.Hashtags) > 0 {
		sb.WriteString("\n")
		tags := make([]string, len(post.Hashtags))
		for i, tag := range post.Hashtags {
			tags[i] = "#" + tag
		}
		sb.WriteString(clip(strings.Join(tags, " "), 52))
		sb.WriteString("\n")
	}

	if post.Image != nil {
		sb.WriteString("\n")
		switch {
		case post.Image.Error != "":
			sb.WriteString(fmt.Sprintf("Image: failed (%s)\n", clip(post.Image.Error, 35)))
		case post.Image.Status == "disabled":
			sb.WriteString("Image: disabled\n")
		default:
			sb.WriteString(fmt.Sprintf("Image: %s (%dx%d)\n", post.Image.Filename, post.Image.Width, post.Image.Height))
		}
	}

	if post.Warning != "" {
		sb.WriteString(fmt.Sprintf("\n⚠ %s\n", clip(post.Warning, 50)))
	}

	p.printBox(fmt.Sprintf("GENERATED POST (%s)", strings.ToUpper(post.Platform)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPublishResult outputs the outcome of a publish attempt.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPublishResult(result *publish.Result) {
	if result == nil {
		return
	}

	if result.Status == "success" {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ "+result.Message)
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d errors:\n\n", len(result.Errors)))
	for i, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", clip(e.Message, 50)))
		if i < len(result.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PUBLISH FAILED", strings.TrimSuffix(sb.String(), "\n"))
}
