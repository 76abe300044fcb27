package brand

import "github.com/jonathan/social-poster/internal/types"

// DefaultProfile returns the bundled example profile, a complete and valid
// BrandProfile for a fictional astronomy app. It backs every accessor when no
// profile was supplied and serves as a fixture in tests.
func DefaultProfile() *types.BrandProfile {
	return &types.BrandProfile{
		BrandName: "AstroCalc Pro",
		Voice: types.Voice{
			Description: "Educational, enthusiastic, and authoritative but accessible.",
			Traits: []string{
				"Friendly language that makes complex topics approachable",
				"Conversational but accurate",
				"Balances technical precision with engaging explanations",
				"Passionate about astronomy and space science",
			},
		},
		ContentRequirements: []string{
			"Always include the product name 'AstroCalc Pro' when relevant",
			"Focus on educational value",
			"Use metric units for measurements",
			"Ensure all scientific claims are accurate",
			"When possible, relate content to real-world applications",
		},
		ProhibitedContent: []string{
			"Political statements",
			"Religious references",
			"Criticism of other brands or products",
			"Exaggerated or unsubstantiated claims",
			"Overly technical jargon without explanation",
		},
		VisualStyle: types.VisualStyle{
			Description:      "Clean, modern aesthetic with deep space theme",
			Colors:           []string{"#1A2980", "#26D0CE", "#FFFFFF", "#121212"},
			PreferredImagery: "Scientific illustrations over abstract art",
			Diagrams:         "Clear and well-labeled educational diagrams",
		},
		ProductMentions: types.ProductMentions{
			FirstMention:       "AstroCalc Pro",
			SubsequentMentions: []string{"AstroCalc", "the app"},
			Emphasis:           "Highlight one feature per post, phrased as a benefit",
		},
		Platforms: map[string]types.PlatformGuidelines{
			"twitter": {
				Tone:     "More casual, brief but impactful",
				Hashtags: []string{"#AstroCalcPro", "#Astronomy", "#SpaceScience"},
				CTA:      "Encourage clicks to profile link",
			},
			"instagram": {
				Tone:     "Visual first, focus on awe and wonder",
				Hashtags: []string{"#AstroCalcPro", "#Astronomy", "#SpaceLovers", "#AstronomyFacts"},
				CTA:      "Encourage profile visits and app downloads",
			},
			"linkedin": {
				Tone:     "Professional, educational focus, industry insights",
				Hashtags: []string{"#SpaceTech", "#STEM", "#ScienceEducation"},
				CTA:      "Position as thought leaders, encourage professional discussion",
			},
		},
		ProductFeatures: []types.ProductFeature{
			{
				Name:        "Stellar Simulator",
				Description: "Accurately simulate star patterns from any location on Earth",
				Benefit:     "Never miss an astronomical event again",
			},
			{
				Name:        "Eclipse Tracker",
				Description: "Predict and visualize eclipses with precision timing",
				Benefit:     "Plan your observation schedule months in advance",
			},
			{
				Name:        "Planet Viewer",
				Description: "Interactive 3D model of planets and their orbits",
				Benefit:     "Understand complex celestial mechanics visually",
			},
			{
				Name:        "Astronomy Calculator",
				Description: "Perform complex astronomical calculations instantly",
				Benefit:     "Save hours on manual calculations for research or hobby",
			},
		},
		TargetAudience: types.TargetAudience{
			Primary: []string{
				"Amateur astronomers",
				"Astrophotographers",
				"STEM educators",
			},
			Secondary: []string{
				"Science enthusiasts",
				"Students",
				"Professional astronomers",
			},
		},
	}
}
