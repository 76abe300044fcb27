package brand

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/social-poster/internal/llm"
	"github.com/jonathan/social-poster/internal/prompts"
	"github.com/jonathan/social-poster/internal/schemas"
	"github.com/jonathan/social-poster/internal/store"
	"github.com/jonathan/social-poster/internal/types"
)

// Fetcher retrieves rendered page text for a URL. The fetch package's Loader
// satisfies this.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// DraftError reports a failure while drafting a brand profile
type DraftError struct {
	BrandName string
	Stage     string
	Cause     error
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("failed to draft profile for %q during %s: %v", e.BrandName, e.Stage, e.Cause)
}

func (e *DraftError) Unwrap() error {
	return e.Cause
}

// Drafter creates brand profiles from a name, an optional homepage, and an
// optional free-text description, via schema-constrained extraction. Drafted
// profiles are validated and persisted before being returned.
type Drafter struct {
	client  llm.Client
	store   store.Store
	fetcher Fetcher
}

// NewDrafter creates a Drafter. fetcher may be nil, in which case homepage
// URLs are rejected.
func NewDrafter(client llm.Client, st store.Store, fetcher Fetcher) *Drafter {
	return &Drafter{
		client:  client,
		store:   st,
		fetcher: fetcher,
	}
}

// Draft extracts a brand profile and saves it under brandName. The homepage,
// when given, is fetched and included in the extraction material; a fetch
// failure is fatal to the draft.
func (d *Drafter) Draft(ctx context.Context, brandName, homepageURL, description string) (*types.BrandProfile, error) {
	if brandName == "" {
		return nil, &DraftError{Stage: "input validation", Cause: fmt.Errorf("brand name is required")}
	}

	homepageContent := ""
	if homepageURL != "" {
		if d.fetcher == nil {
			return nil, &DraftError{BrandName: brandName, Stage: "homepage fetch", Cause: fmt.Errorf("no fetcher configured")}
		}
		content, err := d.fetcher.Fetch(ctx, homepageURL)
		if err != nil {
			return nil, &DraftError{BrandName: brandName, Stage: "homepage fetch", Cause: err}
		}
		homepageContent = content
	}

	prompt := prompts.BuildDraftProfilePrompt(brandName, description, homepageURL, homepageContent)

	raw, err := d.client.CompleteStructured(ctx, prompt, prompts.DraftSystemPrompt(), llm.SchemaSpec{
		Name:   schemas.BrandProfileSchemaName,
		Schema: schemas.BrandProfileSchema(),
	})
	if err != nil {
		return nil, &DraftError{BrandName: brandName, Stage: "extraction", Cause: err}
	}

	if err := schemas.ValidateBrandProfile(raw); err != nil {
		return nil, &DraftError{BrandName: brandName, Stage: "schema validation", Cause: err}
	}

	var profile types.BrandProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, &DraftError{BrandName: brandName, Stage: "decoding", Cause: err}
	}

	if err := ValidateProfile(&profile); err != nil {
		return nil, &DraftError{BrandName: brandName, Stage: "profile validation", Cause: err}
	}

	if err := d.store.Set(ctx, brandName, &profile); err != nil {
		return nil, &DraftError{BrandName: brandName, Stage: "persistence", Cause: err}
	}

	return &profile, nil
}
