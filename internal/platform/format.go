package platform

import (
	"log"
	"unicode/utf8"

	"github.com/jonathan/social-poster/internal/types"
)

// FormatForPlatform applies a platform's constraints to an assembled post:
// it stamps the platform and ideal image ratio, truncates the primary text
// field to the platform's maximum length, and recomputes the character count.
// Hashtags already present on the post are kept (they may include backfilled
// trend tags); when absent they are extracted from the primary text.
//
// The length invariant is hard: after formatting, the primary text never
// exceeds the platform's maximum, counted in runes.
func FormatForPlatform(post *types.GeneratedPost, platform string) error {
	c, err := ConstraintsFor(platform)
	if err != nil {
		return err
	}

	post.Platform = platform

	// Instagram sources its caption from the text field when no caption
	// was set; PrimaryText handles the fallback.
	text := post.PrimaryText()

	if len(post.Hashtags) == 0 {
		post.Hashtags = ExtractHashtags(text)
	}

	if n := utf8.RuneCountInString(text); n > c.MaxLength {
		runes := []rune(text)
		text = string(runes[:c.MaxLength-3]) + "..."
		log.Printf("%s text truncated from %d to %d characters", platform, n, c.MaxLength)
	}
	post.SetPrimaryText(text)
	post.CharacterCount = utf8.RuneCountInString(text)

	post.ImageRatio = c.IdealImageRatio

	if platform == Instagram {
		post.HashtagString = JoinHashtags(post.Hashtags)
	}

	return nil
}
