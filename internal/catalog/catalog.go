// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// Package catalog tracks the design fingerprint of every website we build.
// Each finished build is recorded with its key characteristics so we can
// avoid shipping the same design twice, keep variety across clients, and
// steer new builds toward combinations that haven't been used yet.
//
// The engine is pure in-memory computation: loading and persisting the
// catalog is the caller's job (see Manager for the serialized wrapper used
// by the HTTP layer).
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Layout identifies the overall page layout of a build.
type Layout string

const (
	LayoutSplitHero     Layout = "split-hero"
	LayoutCenteredHero  Layout = "centered-hero"
	LayoutFullWidthHero Layout = "full-width-hero"
	LayoutVideoHero     Layout = "video-hero"
	LayoutCarouselHero  Layout = "carousel-hero"
)

// ColorScheme names a palette direction, light or dark plus a modifier.
type ColorScheme string

const (
	SchemeLightGradient       ColorScheme = "light-gradient"
	SchemeLightSolid          ColorScheme = "light-solid"
	SchemeLightWarmAccent     ColorScheme = "light-warm-accent"
	SchemeLightCoolAccent     ColorScheme = "light-cool-accent"
	SchemeLightTeal           ColorScheme = "light-teal"
	SchemeLightPurpleGradient ColorScheme = "light-purple-gradient"
	SchemeDarkSolid           ColorScheme = "dark-solid"
	SchemeDarkGlow            ColorScheme = "dark-glow"
	SchemeDarkGradient        ColorScheme = "dark-gradient"
)

// HeroStyle describes the composition of the hero section.
type HeroStyle string

const (
	HeroTextLeftImageRight      HeroStyle = "text-left-image-right"
	HeroTextRightImageLeft      HeroStyle = "text-right-image-left"
	HeroCenteredProductShot     HeroStyle = "centered-with-product-shot"
	HeroCenteredFloatingStats   HeroStyle = "centered-with-floating-stats"
	HeroCenteredHighlight       HeroStyle = "centered-with-highlight-underline"
	HeroCenteredTextOnly        HeroStyle = "centered-text-only"
	HeroTextLeftImageRightBadge HeroStyle = "text-left-image-right-with-badge"
	HeroFullBackgroundImage     HeroStyle = "full-background-image"
	HeroVideoBackground         HeroStyle = "video-background"
)

// NavigationStyle describes the site navigation treatment.
type NavigationStyle string

const (
	NavStickyMinimal          NavigationStyle = "sticky-minimal"
	NavStickyWithPhone        NavigationStyle = "sticky-with-phone"
	NavStickyWithAnnouncement NavigationStyle = "sticky-with-announcement"
	NavTransparentScroll      NavigationStyle = "transparent-scroll-change"
	NavHamburgerOnly          NavigationStyle = "hamburger-only"
	NavSidebar                NavigationStyle = "sidebar"
)

// CTAStyle describes the primary call-to-action button treatment.
type CTAStyle string

const (
	CTASolidButton    CTAStyle = "solid-button"
	CTAGradientButton CTAStyle = "gradient-button"
	CTAGradientPill   CTAStyle = "gradient-pill"
	CTAPillButton     CTAStyle = "pill-button"
	CTAOutlineButton  CTAStyle = "outline-button"
	CTAGhostButton    CTAStyle = "ghost-button"
)

// Section tags one content block type a build includes.
type Section string

const (
	SectionHero                Section = "hero"
	SectionAnnouncement        Section = "announcement"
	SectionSocialProof         Section = "social-proof"
	SectionSocialProofBar      Section = "social-proof-bar"
	SectionTrustBar            Section = "trust-bar"
	SectionLogos               Section = "logos"
	SectionServicesGrid        Section = "services-grid"
	SectionServicesNumbered    Section = "services-numbered"
	SectionFeaturesGrid        Section = "features-grid"
	SectionBentoGrid           Section = "bento-grid"
	SectionStatsBar            Section = "stats-bar"
	SectionAboutSplit          Section = "about-split"
	SectionShowcaseSplit       Section = "showcase-split"
	SectionTestimonials        Section = "testimonials"
	SectionTestimonialFeatured Section = "testimonial-featured"
	SectionCaseStudiesDark     Section = "case-studies-dark"
	SectionCaseStudiesLight    Section = "case-studies-light"
	SectionHowItWorks          Section = "how-it-works"
	SectionProcessSteps        Section = "process-steps"
	SectionProcess             Section = "process"
	SectionTeamGrid            Section = "team-grid"
	SectionPricing             Section = "pricing"
	SectionFAQ                 Section = "faq"
	SectionContactForm         Section = "contact-form"
	SectionServiceAreas        Section = "service-areas"
	SectionTemplatesGrid       Section = "templates-grid"
	SectionCTA                 Section = "cta"
	SectionFooter              Section = "footer"
)

// Industry is the business vertical a build was made for.
type Industry string

const (
	IndustryPlumbing        Industry = "plumbing"
	IndustryHVAC            Industry = "hvac"
	IndustryElectrical      Industry = "electrical"
	IndustryRoofing         Industry = "roofing"
	IndustryLandscaping     Industry = "landscaping"
	IndustryCleaning        Industry = "cleaning"
	IndustryPestControl     Industry = "pest-control"
	IndustryAutoRepair      Industry = "auto-repair"
	IndustryDental          Industry = "dental"
	IndustryMedical         Industry = "medical"
	IndustryLegal           Industry = "legal"
	IndustryAccounting      Industry = "accounting"
	IndustryRealEstate      Industry = "real-estate"
	IndustryRestaurant      Industry = "restaurant"
	IndustryRetail          Industry = "retail"
	IndustryFitness         Industry = "fitness"
	IndustrySalonSpa        Industry = "salon-spa"
	IndustryPhotography     Industry = "photography"
	IndustryConsulting      Industry = "consulting"
	IndustryMarketingAgency Industry = "marketing-agency"
	IndustryTechSaaS        Industry = "tech-saas"
	IndustryConstruction    Industry = "construction"
	IndustryHomeServices    Industry = "home-services-general"
)

// BuildStatus is the lifecycle state of a build. Transitions only move
// forward; there is no path back from finalized or live. A build may go
// straight to live without ever being finalized.
type BuildStatus string

const (
	StatusDraft     BuildStatus = "draft"
	StatusInReview  BuildStatus = "in-review"
	StatusFinalized BuildStatus = "finalized"
	StatusLive      BuildStatus = "live"
)

// Characteristics is the design fingerprint of one build: which layout,
// palette, hero, navigation, and CTA treatment it uses, and which section
// types it includes. Sections is treated as a set — order and duplicates
// carry no meaning.
type Characteristics struct {
	Layout      Layout          `json:"layout"`
	ColorScheme ColorScheme     `json:"colorScheme"`
	HeroStyle   HeroStyle       `json:"heroStyle"`
	Navigation  NavigationStyle `json:"navigation"`
	PrimaryCTA  CTAStyle        `json:"primaryCTA"`
	Sections    []Section       `json:"sections"`
}

// Clone returns a deep copy of the characteristics. Builds own their
// fingerprint; callers must not share section slices across builds.
func (c Characteristics) Clone() Characteristics {
	out := c
	out.Sections = make([]Section, len(c.Sections))
	copy(out.Sections, c.Sections)
	return out
}

// Build is one website design registered in the catalog, tied to a client
// and industry.
type Build struct {
	ID              string          `json:"id"`
	ClientName      string          `json:"clientName"`
	Industry        Industry        `json:"industry"`
	TemplateBase    *string         `json:"templateBase"`
	Characteristics Characteristics `json:"characteristics"`
	CreatedAt       time.Time       `json:"createdAt"`
	FinalizedAt     *time.Time      `json:"finalizedAt"`
	Status          BuildStatus     `json:"status"`
	URL             string          `json:"url,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// Template is a named, reusable starting characteristic set. Templates are
// reference data; the engine never mutates them.
type Template struct {
	Name            string          `json:"name"`
	File            string          `json:"file"`
	Characteristics Characteristics `json:"characteristics"`
}

// Universe enumerates every valid value per characteristic dimension.
// This is catalog data, not a type definition: the lists may grow over
// time without code changes, and any operation that needs "all possible
// values" (recommendations, unused-value detection) must read from here
// rather than hardcoding the const lists above.
type Universe struct {
	Layouts          []Layout          `json:"layouts"`
	ColorSchemes     []ColorScheme     `json:"colorSchemes"`
	HeroStyles       []HeroStyle       `json:"heroStyles"`
	NavigationStyles []NavigationStyle `json:"navigationStyles"`
	CTAStyles        []CTAStyle        `json:"ctaStyles"`
	SectionTypes     []Section         `json:"sectionTypes"`
	Industries       []Industry        `json:"industries"`
}

// HasLayout reports whether l is a declared layout.
func (u Universe) HasLayout(l Layout) bool {
	for _, v := range u.Layouts {
		if v == l {
			return true
		}
	}
	return false
}

// HasColorScheme reports whether c is a declared color scheme.
func (u Universe) HasColorScheme(c ColorScheme) bool {
	for _, v := range u.ColorSchemes {
		if v == c {
			return true
		}
	}
	return false
}

// HasHeroStyle reports whether h is a declared hero style.
func (u Universe) HasHeroStyle(h HeroStyle) bool {
	for _, v := range u.HeroStyles {
		if v == h {
			return true
		}
	}
	return false
}

// HasNavigationStyle reports whether n is a declared navigation style.
func (u Universe) HasNavigationStyle(n NavigationStyle) bool {
	for _, v := range u.NavigationStyles {
		if v == n {
			return true
		}
	}
	return false
}

// HasCTAStyle reports whether c is a declared CTA style.
func (u Universe) HasCTAStyle(c CTAStyle) bool {
	for _, v := range u.CTAStyles {
		if v == c {
			return true
		}
	}
	return false
}

// HasSection reports whether s is a declared section type.
func (u Universe) HasSection(s Section) bool {
	for _, v := range u.SectionTypes {
		if v == s {
			return true
		}
	}
	return false
}

// HasIndustry reports whether i is a declared industry.
func (u Universe) HasIndustry(i Industry) bool {
	for _, v := range u.Industries {
		if v == i {
			return true
		}
	}
	return false
}

// Catalog is the aggregate root: every template, every build, and the
// declared universe of characteristic values. Builds are kept in insertion
// order (chronological) and only ever appended or updated in place.
type Catalog struct {
	Version         string              `json:"version"`
	Description     string              `json:"description"`
	LastUpdated     string              `json:"lastUpdated"`
	Templates       map[string]Template `json:"templates"`
	Builds          []*Build            `json:"builds"`
	Characteristics Universe            `json:"characteristics"`
}

// DefaultUniverse returns the full set of characteristic values the studio
// currently builds with.
func DefaultUniverse() Universe {
	return Universe{
		Layouts: []Layout{
			LayoutSplitHero, LayoutCenteredHero, LayoutFullWidthHero,
			LayoutVideoHero, LayoutCarouselHero,
		},
		ColorSchemes: []ColorScheme{
			SchemeLightGradient, SchemeLightSolid, SchemeLightWarmAccent,
			SchemeLightCoolAccent, SchemeLightTeal, SchemeLightPurpleGradient,
			SchemeDarkSolid, SchemeDarkGlow, SchemeDarkGradient,
		},
		HeroStyles: []HeroStyle{
			HeroTextLeftImageRight, HeroTextRightImageLeft,
			HeroCenteredProductShot, HeroCenteredFloatingStats,
			HeroCenteredHighlight, HeroCenteredTextOnly,
			HeroTextLeftImageRightBadge, HeroFullBackgroundImage,
			HeroVideoBackground,
		},
		NavigationStyles: []NavigationStyle{
			NavStickyMinimal, NavStickyWithPhone, NavStickyWithAnnouncement,
			NavTransparentScroll, NavHamburgerOnly, NavSidebar,
		},
		CTAStyles: []CTAStyle{
			CTASolidButton, CTAGradientButton, CTAGradientPill,
			CTAPillButton, CTAOutlineButton, CTAGhostButton,
		},
		SectionTypes: []Section{
			SectionHero, SectionAnnouncement, SectionSocialProof,
			SectionSocialProofBar, SectionTrustBar, SectionLogos,
			SectionServicesGrid, SectionServicesNumbered, SectionFeaturesGrid,
			SectionBentoGrid, SectionStatsBar, SectionAboutSplit,
			SectionShowcaseSplit, SectionTestimonials, SectionTestimonialFeatured,
			SectionCaseStudiesDark, SectionCaseStudiesLight, SectionHowItWorks,
			SectionProcessSteps, SectionProcess, SectionTeamGrid,
			SectionPricing, SectionFAQ, SectionContactForm,
			SectionServiceAreas, SectionTemplatesGrid, SectionCTA, SectionFooter,
		},
		Industries: []Industry{
			IndustryPlumbing, IndustryHVAC, IndustryElectrical, IndustryRoofing,
			IndustryLandscaping, IndustryCleaning, IndustryPestControl,
			IndustryAutoRepair, IndustryDental, IndustryMedical, IndustryLegal,
			IndustryAccounting, IndustryRealEstate, IndustryRestaurant,
			IndustryRetail, IndustryFitness, IndustrySalonSpa,
			IndustryPhotography, IndustryConsulting, IndustryMarketingAgency,
			IndustryTechSaaS, IndustryConstruction, IndustryHomeServices,
		},
	}
}

// New returns an empty catalog with the default characteristic universe.
func New() *Catalog {
	return &Catalog{
		Version:         "1.0.0",
		Description:     "Design catalog of every CustomSnap website build, used to keep new builds distinct.",
		LastUpdated:     time.Now().Format("2006-01-02"),
		Templates:       map[string]Template{},
		Builds:          []*Build{},
		Characteristics: DefaultUniverse(),
	}
}

// NewBuild constructs a draft build with a fresh ID and creation timestamp.
// The characteristics are deep-copied so the build owns its fingerprint.
func NewBuild(clientName string, industry Industry, ch Characteristics, templateBase *string) *Build {
	return &Build{
		ID:              generateBuildID(),
		ClientName:      clientName,
		Industry:        industry,
		TemplateBase:    templateBase,
		Characteristics: ch.Clone(),
		CreatedAt:       time.Now(),
		FinalizedAt:     nil,
		Status:          StatusDraft,
	}
}

// generateBuildID returns a unique build identifier. The format is
// cosmetic; uniqueness is the only requirement.
func generateBuildID() string {
	return "build-" + uuid.NewString()
}

// findBuild returns the build with the given ID, or nil.
func (c *Catalog) findBuild(id string) *Build {
	for _, b := range c.Builds {
		if b.ID == id {
			return b
		}
	}
	return nil
}
