package brand

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/social-poster/internal/types"
)

var colorPattern = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// profileValidator returns the shared validator with the brandcolor rule
// registered: brand colors must be #RRGGBB hex strings.
func profileValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("brandcolor", func(fl validator.FieldLevel) bool {
			return colorPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// InvalidProfileError reports a structurally invalid brand profile
type InvalidProfileError struct {
	BrandName string
	Cause     error
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid brand profile %q: %v", e.BrandName, e.Cause)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}

// ValidateProfile checks a profile's struct-level constraints: the brand name
// is required and visual style colors must be hex color strings.
func ValidateProfile(profile *types.BrandProfile) error {
	if err := profileValidator().Struct(profile); err != nil {
		return &InvalidProfileError{BrandName: profile.BrandName, Cause: err}
	}
	return nil
}
