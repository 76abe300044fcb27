// Package platform holds the per-platform posting constraints and the
// formatting rules that enforce them: length truncation, hashtag extraction
// and backfill, and ideal image aspect ratios.
package platform

import (
	"fmt"
	"strings"
)

// Known platform names after normalization.
const (
	Twitter   = "twitter"
	Instagram = "instagram"
	LinkedIn  = "linkedin"
)

// Constraints are the fixed posting limits for one platform.
type Constraints struct {
	MaxLength       int
	HashtagLimit    int
	IdealImageRatio string
}

var constraints = map[string]Constraints{
	Twitter: {
		MaxLength:       280,
		HashtagLimit:    3,
		IdealImageRatio: "16:9",
	},
	Instagram: {
		MaxLength:       2200,
		HashtagLimit:    30,
		IdealImageRatio: "1:1",
	},
	LinkedIn: {
		MaxLength:       3000,
		HashtagLimit:    5,
		IdealImageRatio: "1.91:1",
	},
}

// UnsupportedPlatformError indicates a platform outside the known set.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Platform)
}

// Normalize lowercases a platform name and maps the "x" synonym to "twitter".
// It does not validate; use ConstraintsFor for that.
func Normalize(platform string) string {
	p := strings.ToLower(strings.TrimSpace(platform))
	if p == "x" {
		return Twitter
	}
	return p
}

// ConstraintsFor returns the posting constraints for a normalized platform
// name, or an UnsupportedPlatformError for anything outside the known set.
func ConstraintsFor(platform string) (Constraints, error) {
	c, ok := constraints[platform]
	if !ok {
		return Constraints{}, &UnsupportedPlatformError{Platform: platform}
	}
	return c, nil
}

// Names returns the known platform names.
func Names() []string {
	return []string{Twitter, Instagram, LinkedIn}
}
