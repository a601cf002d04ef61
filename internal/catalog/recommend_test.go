// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"
	"testing"
)

func TestRecommendFirstBuildForIndustry(t *testing.T) {
	cat := New()

	rec := RecommendCharacteristics(cat, IndustryDental)

	// Nothing used yet: first declared value recommended per dimension.
	if rec.Recommended.Layout != LayoutSplitHero {
		t.Errorf("layout: got %q, want %q", rec.Recommended.Layout, LayoutSplitHero)
	}
	if rec.Recommended.ColorScheme != SchemeLightGradient {
		t.Errorf("scheme: got %q, want %q", rec.Recommended.ColorScheme, SchemeLightGradient)
	}
	if rec.Recommended.HeroStyle != HeroTextLeftImageRight {
		t.Errorf("hero: got %q, want %q", rec.Recommended.HeroStyle, HeroTextLeftImageRight)
	}

	// Nothing to avoid, and the first-build note is present.
	if rec.Avoid.Layout != "" || rec.Avoid.ColorScheme != "" || rec.Avoid.HeroStyle != "" {
		t.Errorf("avoid should be empty: %+v", rec.Avoid)
	}
	found := false
	for _, r := range rec.Reasoning {
		if strings.Contains(r, "first dental build") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing first-build note in reasoning: %v", rec.Reasoning)
	}
}

func TestRecommendSkipsUsedValues(t *testing.T) {
	cat := New()
	AddBuild(cat, "Molar Dental", IndustryDental, baseCharacteristics(), AddOptions{})

	rec := RecommendCharacteristics(cat, IndustryDental)

	// The first declared values are used, so the second ones come back.
	if rec.Recommended.Layout != LayoutCenteredHero {
		t.Errorf("layout: got %q, want %q", rec.Recommended.Layout, LayoutCenteredHero)
	}
	if rec.Recommended.ColorScheme != SchemeLightSolid {
		t.Errorf("scheme: got %q, want %q", rec.Recommended.ColorScheme, SchemeLightSolid)
	}
	if rec.Recommended.HeroStyle != HeroTextRightImageLeft {
		t.Errorf("hero: got %q, want %q", rec.Recommended.HeroStyle, HeroTextRightImageLeft)
	}

	// Avoid names a used value — presence, not frequency.
	if rec.Avoid.Layout != LayoutSplitHero {
		t.Errorf("avoid layout: got %q, want %q", rec.Avoid.Layout, LayoutSplitHero)
	}
	if rec.Avoid.ColorScheme != SchemeLightGradient {
		t.Errorf("avoid scheme: got %q", rec.Avoid.ColorScheme)
	}
	if rec.Avoid.HeroStyle != HeroTextLeftImageRight {
		t.Errorf("avoid hero: got %q", rec.Avoid.HeroStyle)
	}
}

// Recommendations are scoped to the industry: other industries' builds
// don't count against it.
func TestRecommendIndustryScoped(t *testing.T) {
	cat := New()
	AddBuild(cat, "Ace Plumbing", IndustryPlumbing, baseCharacteristics(), AddOptions{})

	rec := RecommendCharacteristics(cat, IndustryDental)
	if rec.Recommended.Layout != LayoutSplitHero {
		t.Errorf("plumbing build leaked into dental scope: got %q", rec.Recommended.Layout)
	}
	if rec.Avoid.Layout != "" {
		t.Errorf("avoid populated from another industry: %q", rec.Avoid.Layout)
	}
}

func TestRecommendReasoningNamesValues(t *testing.T) {
	cat := New()
	AddBuild(cat, "Molar Dental", IndustryDental, baseCharacteristics(), AddOptions{})

	rec := RecommendCharacteristics(cat, IndustryDental)
	joined := strings.Join(rec.Reasoning, "\n")
	if !strings.Contains(joined, string(LayoutCenteredHero)) {
		t.Errorf("reasoning does not name the recommended layout: %v", rec.Reasoning)
	}
	if !strings.Contains(joined, "dental") {
		t.Errorf("reasoning does not name the industry: %v", rec.Reasoning)
	}
}
