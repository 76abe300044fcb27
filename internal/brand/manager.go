// Package brand manages brand profiles: defaulting accessors for pipeline
// use, structural validation, and drafting new profiles via structured
// extraction.
package brand

import (
	"strings"

	"github.com/jonathan/social-poster/internal/types"
)

// Manager provides read access to one brand profile with defaulting: when
// constructed without a profile, every accessor answers from DefaultProfile.
// A Manager is read-only once built; pipeline runs share it freely.
type Manager struct {
	profile *types.BrandProfile
}

// NewManager wraps a profile. A nil profile selects the default.
func NewManager(profile *types.BrandProfile) *Manager {
	return &Manager{profile: profile}
}

// HasProfile reports whether an explicit profile was supplied.
func (m *Manager) HasProfile() bool {
	return m.profile != nil
}

// Profile returns the managed profile, or the default when none was supplied.
func (m *Manager) Profile() *types.BrandProfile {
	if m.profile == nil {
		return DefaultProfile()
	}
	return m.profile
}

// BrandName returns the brand name.
func (m *Manager) BrandName() string {
	return m.Profile().BrandName
}

// Voice returns the brand voice guidelines.
func (m *Manager) Voice() types.Voice {
	return m.Profile().Voice
}

// ContentRequirements returns the positive content directives.
func (m *Manager) ContentRequirements() []string {
	return m.Profile().ContentRequirements
}

// ProhibitedContent returns the negative content directives.
func (m *Manager) ProhibitedContent() []string {
	return m.Profile().ProhibitedContent
}

// VisualStyle returns the visual style guidelines.
func (m *Manager) VisualStyle() types.VisualStyle {
	return m.Profile().VisualStyle
}

// ProductFeatures returns the product feature list.
func (m *Manager) ProductFeatures() []types.ProductFeature {
	return m.Profile().ProductFeatures
}

// PlatformGuidelines returns the guidelines for one platform, or a zero value
// when the platform has no entry.
func (m *Manager) PlatformGuidelines(platform string) types.PlatformGuidelines {
	return m.Profile().Platforms[strings.ToLower(platform)]
}

// TargetAudience returns the audience description.
func (m *Manager) TargetAudience() types.TargetAudience {
	return m.Profile().TargetAudience
}
