// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// recommend.go picks fresh characteristics for a new build in a given
// industry, scoped to what that industry has already seen.
package catalog

import "fmt"

// Picks holds per-dimension characteristic choices. A zero value means
// no pick for that dimension.
type Picks struct {
	Layout      Layout      `json:"layout,omitempty"`
	ColorScheme ColorScheme `json:"colorScheme,omitempty"`
	HeroStyle   HeroStyle   `json:"heroStyle,omitempty"`
}

// Recommendation suggests characteristics for a new build in an industry.
// Recommended holds values never used in that industry; Avoid holds one
// value per dimension that has been used. Avoid is presence-based, not
// frequency-based — it names a used value to deprioritize, not the most
// common one.
type Recommendation struct {
	Recommended Picks    `json:"recommended"`
	Avoid       Picks    `json:"avoid"`
	Reasoning   []string `json:"reasoning"`
}

// RecommendCharacteristics looks at the builds already made for an
// industry and, for each heavy dimension, recommends the first declared
// value that industry hasn't used yet. When the industry has no builds at
// all, everything is open and nothing is marked to avoid.
func RecommendCharacteristics(cat *Catalog, industry Industry) Recommendation {
	industryBuilds := BuildsByIndustry(cat, industry)

	usedLayouts := make(map[Layout]bool)
	usedSchemes := make(map[ColorScheme]bool)
	usedHeros := make(map[HeroStyle]bool)

	// First-seen values per dimension, in build (chronological) order.
	var firstLayout Layout
	var firstScheme ColorScheme
	var firstHero HeroStyle

	for _, b := range industryBuilds {
		ch := b.Characteristics
		if !usedLayouts[ch.Layout] {
			usedLayouts[ch.Layout] = true
			if firstLayout == "" {
				firstLayout = ch.Layout
			}
		}
		if !usedSchemes[ch.ColorScheme] {
			usedSchemes[ch.ColorScheme] = true
			if firstScheme == "" {
				firstScheme = ch.ColorScheme
			}
		}
		if !usedHeros[ch.HeroStyle] {
			usedHeros[ch.HeroStyle] = true
			if firstHero == "" {
				firstHero = ch.HeroStyle
			}
		}
	}

	rec := Recommendation{}

	for _, l := range cat.Characteristics.Layouts {
		if !usedLayouts[l] {
			rec.Recommended.Layout = l
			rec.Reasoning = append(rec.Reasoning,
				fmt.Sprintf("Layout %q hasn't been used for %s yet", l, industry))
			break
		}
	}

	for _, c := range cat.Characteristics.ColorSchemes {
		if !usedSchemes[c] {
			rec.Recommended.ColorScheme = c
			rec.Reasoning = append(rec.Reasoning,
				fmt.Sprintf("Color scheme %q is fresh for %s", c, industry))
			break
		}
	}

	for _, h := range cat.Characteristics.HeroStyles {
		if !usedHeros[h] {
			rec.Recommended.HeroStyle = h
			rec.Reasoning = append(rec.Reasoning,
				fmt.Sprintf("Hero style %q would be unique for %s", h, industry))
			break
		}
	}

	rec.Avoid.Layout = firstLayout
	rec.Avoid.ColorScheme = firstScheme
	rec.Avoid.HeroStyle = firstHero

	if len(industryBuilds) == 0 {
		rec.Reasoning = append(rec.Reasoning,
			fmt.Sprintf("This is the first %s build - any style works!", industry))
	}

	return rec
}
