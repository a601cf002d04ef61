package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"customsnap/internal/catalog"
)

// validate is the shared validator instance for request payloads.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError formats the first failed field into a client-facing
// message. Field names come from the struct tags, so they match the JSON
// the client sent.
func validationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return field + " is too long (max " + fe.Param() + " characters)"
	case "min":
		return field + " is too short (min " + fe.Param() + ")"
	case "url":
		return field + " must be a valid URL"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	default:
		return field + " is invalid"
	}
}

// characteristicsPayload is the wire form of a design fingerprint.
type characteristicsPayload struct {
	Layout      string   `json:"layout" validate:"required"`
	ColorScheme string   `json:"colorScheme" validate:"required"`
	HeroStyle   string   `json:"heroStyle" validate:"required"`
	Navigation  string   `json:"navigation" validate:"required"`
	PrimaryCTA  string   `json:"primaryCTA" validate:"required"`
	Sections    []string `json:"sections" validate:"required,min=1"`
}

// toCharacteristics converts the payload, checking every value against
// the catalog's declared universe. Returns a message naming the first
// unknown value, or "".
func (p *characteristicsPayload) toCharacteristics(u catalog.Universe) (catalog.Characteristics, string) {
	ch := catalog.Characteristics{
		Layout:      catalog.Layout(p.Layout),
		ColorScheme: catalog.ColorScheme(p.ColorScheme),
		HeroStyle:   catalog.HeroStyle(p.HeroStyle),
		Navigation:  catalog.NavigationStyle(p.Navigation),
		PrimaryCTA:  catalog.CTAStyle(p.PrimaryCTA),
	}
	if !u.HasLayout(ch.Layout) {
		return ch, "unknown layout " + p.Layout
	}
	if !u.HasColorScheme(ch.ColorScheme) {
		return ch, "unknown color scheme " + p.ColorScheme
	}
	if !u.HasHeroStyle(ch.HeroStyle) {
		return ch, "unknown hero style " + p.HeroStyle
	}
	if !u.HasNavigationStyle(ch.Navigation) {
		return ch, "unknown navigation style " + p.Navigation
	}
	if !u.HasCTAStyle(ch.PrimaryCTA) {
		return ch, "unknown CTA style " + p.PrimaryCTA
	}
	for _, s := range p.Sections {
		sec := catalog.Section(s)
		if !u.HasSection(sec) {
			return ch, "unknown section type " + s
		}
		ch.Sections = append(ch.Sections, sec)
	}
	return ch, ""
}
