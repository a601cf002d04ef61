// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// similarity.go scores how close two design fingerprints are and finds
// near-duplicates of a proposed build among the existing ones.
package catalog

import "sort"

// Feature weights. Layout and hero style dominate perceived sameness,
// the section mix matters most of all, navigation and CTA barely register.
const (
	weightLayout      = 3
	weightColorScheme = 2
	weightHeroStyle   = 3
	weightNavigation  = 1
	weightPrimaryCTA  = 1
	weightSections    = 5

	totalWeight = weightLayout + weightColorScheme + weightHeroStyle +
		weightNavigation + weightPrimaryCTA + weightSections
)

// DefaultSimilarityThreshold is the score at or above which two builds are
// considered duplicates.
const DefaultSimilarityThreshold = 0.7

// CalculateSimilarity returns a score from 0 (completely different) to 1
// (identical). Scalar fields score all-or-nothing on exact equality; the
// section sets get fractional credit via their Jaccard index, since partial
// content overlap is still meaningful.
func CalculateSimilarity(a, b Characteristics) float64 {
	var score float64

	if a.Layout == b.Layout {
		score += weightLayout
	}
	if a.ColorScheme == b.ColorScheme {
		score += weightColorScheme
	}
	if a.HeroStyle == b.HeroStyle {
		score += weightHeroStyle
	}
	if a.Navigation == b.Navigation {
		score += weightNavigation
	}
	if a.PrimaryCTA == b.PrimaryCTA {
		score += weightPrimaryCTA
	}

	score += sectionJaccard(a.Sections, b.Sections) * weightSections

	return score / totalWeight
}

// sectionJaccard computes |intersection| / |union| over two section sets.
// Two empty sets yield 0: no sections in common is no similarity signal,
// and it keeps the division defined.
func sectionJaccard(a, b []Section) float64 {
	setA := make(map[Section]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[Section]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}

	union := len(setA)
	intersection := 0
	for s := range setB {
		if _, ok := setA[s]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// SimilarBuild pairs an existing build with its similarity to a proposal.
type SimilarBuild struct {
	Build      *Build  `json:"build"`
	Similarity float64 `json:"similarity"`
}

// DuplicateCheck is the result of scoring a proposal against the catalog.
type DuplicateCheck struct {
	IsDuplicate   bool           `json:"isDuplicate"`
	SimilarBuilds []SimilarBuild `json:"similarBuilds"`
}

// CheckForDuplicates scores the proposed fingerprint against every existing
// build and returns those at or above the threshold, ranked by similarity
// descending. The threshold is inclusive: a build scoring exactly the
// threshold counts as a duplicate. Ties keep their catalog (chronological)
// order. The inputs are never mutated.
func CheckForDuplicates(proposed Characteristics, existing []*Build, threshold float64) DuplicateCheck {
	var similar []SimilarBuild
	for _, b := range existing {
		sim := CalculateSimilarity(proposed, b.Characteristics)
		if sim >= threshold {
			similar = append(similar, SimilarBuild{Build: b, Similarity: sim})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})

	return DuplicateCheck{
		IsDuplicate:   len(similar) > 0,
		SimilarBuilds: similar,
	}
}
