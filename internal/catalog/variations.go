// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// variations.go suggests fingerprint tweaks that would make a rejected
// proposal more distinct from what's already in the catalog.
package catalog

// SuggestVariations proposes up to four alternative fingerprints for a
// design that came back as a near-duplicate. For each of the three heavy
// dimensions (layout, color scheme, hero style) it finds the least-used
// value across existing builds — ties resolved by the universe's declared
// order — and, when that value differs from the proposal, emits a variation
// with just that one dimension swapped. A final variation swaps all three
// at once. Navigation, CTA, and sections are left untouched.
//
// The suggestions are a nudge toward variety, not a guarantee: callers
// should re-run duplicate detection on whichever variation they pick.
func SuggestVariations(proposed Characteristics, existing []*Build, cat *Catalog) []Characteristics {
	layoutCounts := make(map[Layout]int)
	schemeCounts := make(map[ColorScheme]int)
	heroCounts := make(map[HeroStyle]int)

	for _, b := range existing {
		layoutCounts[b.Characteristics.Layout]++
		schemeCounts[b.Characteristics.ColorScheme]++
		heroCounts[b.Characteristics.HeroStyle]++
	}

	leastLayout := leastUsedLayout(cat.Characteristics.Layouts, layoutCounts)
	leastScheme := leastUsedColorScheme(cat.Characteristics.ColorSchemes, schemeCounts)
	leastHero := leastUsedHeroStyle(cat.Characteristics.HeroStyles, heroCounts)

	var variations []Characteristics

	if leastLayout != proposed.Layout {
		v := proposed.Clone()
		v.Layout = leastLayout
		variations = append(variations, v)
	}
	if leastScheme != proposed.ColorScheme {
		v := proposed.Clone()
		v.ColorScheme = leastScheme
		variations = append(variations, v)
	}
	if leastHero != proposed.HeroStyle {
		v := proposed.Clone()
		v.HeroStyle = leastHero
		variations = append(variations, v)
	}

	// Combined variation swapping all three heavy dimensions. Skipped when
	// nothing actually changes, so an unchanged proposal is never suggested
	// back to the caller.
	if leastLayout != proposed.Layout || leastScheme != proposed.ColorScheme || leastHero != proposed.HeroStyle {
		v := proposed.Clone()
		v.Layout = leastLayout
		v.ColorScheme = leastScheme
		v.HeroStyle = leastHero
		variations = append(variations, v)
	}

	return variations
}

// The least-used helpers scan the declared list in order and keep the
// first value with the lowest count, so ties fall to the earliest declared
// value. Values never used count as zero. The universe slices are read,
// never reordered.

func leastUsedLayout(declared []Layout, counts map[Layout]int) Layout {
	var best Layout
	bestCount := -1
	for _, v := range declared {
		if c := counts[v]; bestCount == -1 || c < bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

func leastUsedColorScheme(declared []ColorScheme, counts map[ColorScheme]int) ColorScheme {
	var best ColorScheme
	bestCount := -1
	for _, v := range declared {
		if c := counts[v]; bestCount == -1 || c < bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

func leastUsedHeroStyle(declared []HeroStyle, counts map[HeroStyle]int) HeroStyle {
	var best HeroStyle
	bestCount := -1
	for _, v := range declared {
		if c := counts[v]; bestCount == -1 || c < bestCount {
			best, bestCount = v, c
		}
	}
	return best
}
