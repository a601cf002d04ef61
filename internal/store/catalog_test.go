// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"customsnap/internal/catalog"
)

func TestCatalogStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewCatalogStore(db)
	ctx := context.Background()

	// Snapshot whatever is there so the test leaves the row as it found it.
	before, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(func() {
		if before != nil {
			s.Save(ctx, before)
		} else {
			db.Exec(`DELETE FROM catalog_data WHERE id = 1`)
		}
	})

	cat := catalog.New()
	build := catalog.NewBuild("Roundtrip Dental", catalog.IndustryDental, catalog.Characteristics{
		Layout:      catalog.LayoutSplitHero,
		ColorScheme: catalog.SchemeLightGradient,
		HeroStyle:   catalog.HeroTextLeftImageRight,
		Navigation:  catalog.NavStickyMinimal,
		PrimaryCTA:  catalog.CTASolidButton,
		Sections:    []catalog.Section{catalog.SectionHero, catalog.SectionContactForm},
	}, nil)
	cat.Builds = append(cat.Builds, build)

	if err := s.Save(ctx, cat); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if got == nil {
		t.Fatal("expected a catalog after save")
	}
	if len(got.Builds) != 1 {
		t.Fatalf("expected 1 build, got %d", len(got.Builds))
	}
	if got.Builds[0].ID != build.ID {
		t.Errorf("build id: got %q, want %q", got.Builds[0].ID, build.ID)
	}
	if got.Builds[0].Characteristics.Layout != catalog.LayoutSplitHero {
		t.Errorf("layout: got %q", got.Builds[0].Characteristics.Layout)
	}

	// Save is an upsert: a second save replaces the document.
	cat.Builds = nil
	if err := s.Save(ctx, cat); err != nil {
		t.Fatalf("Save again: %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("Load after second save: %v", err)
	}
	if len(got.Builds) != 0 {
		t.Errorf("expected 0 builds after replace, got %d", len(got.Builds))
	}
}
