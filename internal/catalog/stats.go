// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// stats.go aggregates catalog-wide usage numbers and renders the operator
// summary report.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// SectionUsage is one row of the section frequency table.
type SectionUsage struct {
	Section Section `json:"section"`
	Count   int     `json:"count"`
}

// UnusedCharacteristics lists values never used by any build in the whole
// catalog, per heavy dimension. This is catalog-wide, unlike the
// industry-scoped view RecommendCharacteristics takes.
type UnusedCharacteristics struct {
	Layouts      []Layout      `json:"layouts"`
	ColorSchemes []ColorScheme `json:"colorSchemes"`
	HeroStyles   []HeroStyle   `json:"heroStyles"`
}

// CatalogStats is a read-only aggregate snapshot of the catalog.
type CatalogStats struct {
	TotalBuilds         int                   `json:"totalBuilds"`
	BuildsByIndustry    map[Industry]int      `json:"buildsByIndustry"`
	BuildsByLayout      map[Layout]int        `json:"buildsByLayout"`
	BuildsByColorScheme map[ColorScheme]int   `json:"buildsByColorScheme"`
	MostUsedSections    []SectionUsage        `json:"mostUsedSections"`
	Unused              UnusedCharacteristics `json:"leastUsedCharacteristics"`
}

// Stats computes all aggregate numbers in one pass over the builds:
// totals, per-industry/layout/scheme counts, the top ten most used
// sections, and the characteristic values no build has ever used.
func Stats(cat *Catalog) CatalogStats {
	stats := CatalogStats{
		TotalBuilds:         len(cat.Builds),
		BuildsByIndustry:    make(map[Industry]int),
		BuildsByLayout:      make(map[Layout]int),
		BuildsByColorScheme: make(map[ColorScheme]int),
	}

	sectionCounts := make(map[Section]int)
	usedLayouts := make(map[Layout]bool)
	usedSchemes := make(map[ColorScheme]bool)
	usedHeros := make(map[HeroStyle]bool)

	for _, b := range cat.Builds {
		ch := b.Characteristics
		stats.BuildsByIndustry[b.Industry]++
		stats.BuildsByLayout[ch.Layout]++
		stats.BuildsByColorScheme[ch.ColorScheme]++
		usedLayouts[ch.Layout] = true
		usedSchemes[ch.ColorScheme] = true
		usedHeros[ch.HeroStyle] = true
		for _, s := range ch.Sections {
			sectionCounts[s]++
		}
	}

	for s, n := range sectionCounts {
		stats.MostUsedSections = append(stats.MostUsedSections, SectionUsage{Section: s, Count: n})
	}
	// Count descending, name ascending on ties so output is deterministic.
	sort.Slice(stats.MostUsedSections, func(i, j int) bool {
		a, b := stats.MostUsedSections[i], stats.MostUsedSections[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Section < b.Section
	})
	if len(stats.MostUsedSections) > 10 {
		stats.MostUsedSections = stats.MostUsedSections[:10]
	}

	for _, l := range cat.Characteristics.Layouts {
		if !usedLayouts[l] {
			stats.Unused.Layouts = append(stats.Unused.Layouts, l)
		}
	}
	for _, c := range cat.Characteristics.ColorSchemes {
		if !usedSchemes[c] {
			stats.Unused.ColorSchemes = append(stats.Unused.ColorSchemes, c)
		}
	}
	for _, h := range cat.Characteristics.HeroStyles {
		if !usedHeros[h] {
			stats.Unused.HeroStyles = append(stats.Unused.HeroStyles, h)
		}
	}

	return stats
}

// Summary renders a plain-text digest of the catalog for operator display.
// The format is informational, not a compatibility contract.
func Summary(cat *Catalog) string {
	stats := Stats(cat)

	var sb strings.Builder
	sb.WriteString("=== WEBSITE CATALOG SUMMARY ===\n")
	fmt.Fprintf(&sb, "Total Builds: %d\n", stats.TotalBuilds)
	fmt.Fprintf(&sb, "Templates: %d\n", len(cat.Templates))

	sb.WriteString("\n--- Builds by Industry ---\n")
	writeCountLines(&sb, industryCountLines(stats.BuildsByIndustry))

	sb.WriteString("\n--- Builds by Layout ---\n")
	writeCountLines(&sb, layoutCountLines(stats.BuildsByLayout))

	sb.WriteString("\n--- Unused Characteristics ---\n")
	fmt.Fprintf(&sb, "  Layouts: %s\n", joinOrAllUsed(layoutNames(stats.Unused.Layouts)))
	fmt.Fprintf(&sb, "  Color Schemes: %s\n", joinOrAllUsed(schemeNames(stats.Unused.ColorSchemes)))
	fmt.Fprintf(&sb, "  Hero Styles: %s\n", joinOrAllUsed(heroNames(stats.Unused.HeroStyles)))

	sb.WriteString("\n--- Most Used Sections ---\n")
	if len(stats.MostUsedSections) == 0 {
		sb.WriteString("  (none yet)\n")
	} else {
		top := stats.MostUsedSections
		if len(top) > 5 {
			top = top[:5]
		}
		for _, u := range top {
			fmt.Fprintf(&sb, "  %s: %d\n", u.Section, u.Count)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

type countLine struct {
	name  string
	count int
}

func industryCountLines(m map[Industry]int) []countLine {
	lines := make([]countLine, 0, len(m))
	for k, v := range m {
		lines = append(lines, countLine{string(k), v})
	}
	return lines
}

func layoutCountLines(m map[Layout]int) []countLine {
	lines := make([]countLine, 0, len(m))
	for k, v := range m {
		lines = append(lines, countLine{string(k), v})
	}
	return lines
}

// writeCountLines prints "name: count" rows sorted by count descending,
// name ascending on ties.
func writeCountLines(sb *strings.Builder, lines []countLine) {
	if len(lines) == 0 {
		sb.WriteString("  (none yet)\n")
		return
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].count != lines[j].count {
			return lines[i].count > lines[j].count
		}
		return lines[i].name < lines[j].name
	})
	for _, l := range lines {
		fmt.Fprintf(sb, "  %s: %d\n", l.name, l.count)
	}
}

func joinOrAllUsed(names []string) string {
	if len(names) == 0 {
		return "(all used)"
	}
	return strings.Join(names, ", ")
}

func layoutNames(vals []Layout) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func schemeNames(vals []ColorScheme) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func heroNames(vals []HeroStyle) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
