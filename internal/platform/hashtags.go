package platform

import (
	"regexp"
	"strings"
)

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags returns the hashtags found in text, without the # prefix,
// deduplicated preserving first-occurrence order. Matching is case-sensitive:
// #AI and #ai are distinct tags.
func ExtractHashtags(text string) []string {
	if text == "" {
		return nil
	}

	matches := hashtagPattern.FindAllStringSubmatch(text, -1)

	var tags []string
	seen := make(map[string]bool)
	for _, m := range matches {
		tag := m[1]
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// Substrings that mark a hashtag as professional or industry-related,
// matched case-insensitively.
var professionalIndicators = []string{
	"tech", "industry", "business", "professional", "career",
	"education", "science", "research", "development", "innovation",
	"leadership", "management", "strategy", "growth", "analysis",
	"data", "engineering", "stem", "academic", "learning",
}

// filterProfessionalHashtags keeps tags containing a professional indicator.
// When nothing matches it falls back to the first 4 unfiltered tags so the
// caller always has candidates to work with.
func filterProfessionalHashtags(tags []string) []string {
	var professional []string
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, indicator := range professionalIndicators {
			if strings.Contains(lower, indicator) {
				professional = append(professional, tag)
				break
			}
		}
	}

	if len(professional) == 0 {
		if len(tags) > 4 {
			return tags[:4]
		}
		return tags
	}
	return professional
}

// BackfillHashtags merges trend-sourced hashtags into the tags extracted from
// generated text, according to the platform's convention:
//
//   - Twitter posts with no extracted tags borrow the first 2 trend tags.
//   - Instagram posts with fewer than 5 tags top up from the trend tags,
//     skipping duplicates, until 10.
//   - LinkedIn posts with fewer than 3 tags append professional trend tags
//     (falling back to the first 4 unfiltered when none qualify), skipping
//     duplicates, until 4.
//
// Unknown platforms get the extracted tags back unchanged.
func BackfillHashtags(platform string, extracted, trendTags []string) []string {
	tags := append([]string(nil), extracted...)

	switch platform {
	case Twitter:
		if len(tags) == 0 && len(trendTags) > 0 {
			n := len(trendTags)
			if n > 2 {
				n = 2
			}
			tags = append(tags, trendTags[:n]...)
		}

	case Instagram:
		if len(tags) < 5 && len(trendTags) > 0 {
			for _, tag := range trendTags {
				if len(tags) >= 10 {
					break
				}
				if !containsTag(tags, tag) {
					tags = append(tags, tag)
				}
			}
		}

	case LinkedIn:
		if len(tags) < 3 && len(trendTags) > 0 {
			for _, tag := range filterProfessionalHashtags(trendTags) {
				if len(tags) >= 4 {
					break
				}
				if !containsTag(tags, tag) {
					tags = append(tags, tag)
				}
			}
		}
	}

	return tags
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// JoinHashtags renders tags as space-separated #tag tokens, the form
// Instagram captions carry alongside the tag list.
func JoinHashtags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	tokens := make([]string, len(tags))
	for i, tag := range tags {
		tokens[i] = "#" + tag
	}
	return strings.Join(tokens, " ")
}
