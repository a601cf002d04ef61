// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// registry.go holds the build registration workflow and lifecycle
// transitions. Registration is all-or-nothing: a rejected attempt leaves
// the catalog untouched, a successful one appends exactly one build.
package catalog

import (
	"fmt"
	"math"
	"time"
)

// AddOptions tunes the registration workflow.
type AddOptions struct {
	// TemplateBase names the template the build started from, if any.
	TemplateBase *string
	// AllowSimilar registers the build even when duplicates are found.
	AllowSimilar bool
	// SimilarityThreshold overrides DefaultSimilarityThreshold when > 0.
	SimilarityThreshold float64
}

// AddResult reports the outcome of AddBuild. On rejection it carries
// enough diagnostic detail for an operator to make a call: the ranked
// near-duplicates and suggested alternative fingerprints.
type AddResult struct {
	Success       bool              `json:"success"`
	Build         *Build            `json:"build,omitempty"`
	Error         string            `json:"error,omitempty"`
	SimilarBuilds []SimilarBuild    `json:"similarBuilds,omitempty"`
	Suggestions   []Characteristics `json:"suggestions,omitempty"`
}

// AddBuild registers a new build after checking it against every existing
// one. When a near-duplicate is found and AllowSimilar is false, nothing
// is appended and the result carries the ranked matches plus variation
// suggestions. Otherwise a draft build is appended and the result includes
// any similar builds that were found (possibly none) for visibility.
func AddBuild(cat *Catalog, clientName string, industry Industry, ch Characteristics, opts AddOptions) AddResult {
	threshold := opts.SimilarityThreshold
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	check := CheckForDuplicates(ch, cat.Builds, threshold)

	if check.IsDuplicate && !opts.AllowSimilar {
		pct := int(math.Round(check.SimilarBuilds[0].Similarity * 100))
		return AddResult{
			Success:       false,
			Error:         fmt.Sprintf("Build is too similar to existing builds (%d%% match)", pct),
			SimilarBuilds: check.SimilarBuilds,
			Suggestions:   SuggestVariations(ch, cat.Builds, cat),
		}
	}

	build := NewBuild(clientName, industry, ch, opts.TemplateBase)
	cat.Builds = append(cat.Builds, build)

	return AddResult{
		Success:       true,
		Build:         build,
		SimilarBuilds: check.SimilarBuilds,
	}
}

// FinalizeBuild marks a build as finalized, stamps FinalizedAt, and
// optionally records the URL. Returns false without mutating anything if
// the build ID is unknown.
func FinalizeBuild(cat *Catalog, buildID, url string) bool {
	b := cat.findBuild(buildID)
	if b == nil {
		return false
	}

	now := time.Now()
	b.Status = StatusFinalized
	b.FinalizedAt = &now
	if url != "" {
		b.URL = url
	}
	return true
}

// MarkBuildLive marks a build as live at the given URL. Unlike finalize,
// the URL is mandatory. Returns false if the build ID is unknown.
func MarkBuildLive(cat *Catalog, buildID, url string) bool {
	b := cat.findBuild(buildID)
	if b == nil {
		return false
	}

	b.Status = StatusLive
	b.URL = url
	return true
}

// BuildsByIndustry returns the builds made for the given industry, in
// catalog order.
func BuildsByIndustry(cat *Catalog, industry Industry) []*Build {
	var out []*Build
	for _, b := range cat.Builds {
		if b.Industry == industry {
			out = append(out, b)
		}
	}
	return out
}

// BuildsByStatus returns the builds in the given lifecycle state, in
// catalog order.
func BuildsByStatus(cat *Catalog, status BuildStatus) []*Build {
	var out []*Build
	for _, b := range cat.Builds {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}
