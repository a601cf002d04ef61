// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"customsnap/internal/models"
)

func TestAssetStoreCreateAndList(t *testing.T) {
	db := testDB(t)
	leads := NewLeadStore(db)
	projects := NewProjectStore(db)
	assets := NewAssetStore(db)

	email := "test-assets@store-test.local"
	t.Cleanup(func() { cleanLeads(t, db, email) })

	lead, err := leads.Create("Gia", "Stone", email, "555-0401", nil, models.LeadSourceLandingPage)
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}
	p, err := projects.Create(lead.ID, nil)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	a, err := assets.Create(p.ID, models.AssetKindLogo, "logo.png", "customsnap-assets",
		"projects/"+p.ID.String()+"/logo.png", "image/png", 2048)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Kind != models.AssetKindLogo {
		t.Errorf("kind: got %q", a.Kind)
	}
	if a.SizeBytes != 2048 {
		t.Errorf("size: got %d", a.SizeBytes)
	}

	if _, err := assets.Create(p.ID, models.AssetKindPhoto, "storefront.jpg", "customsnap-assets",
		"projects/"+p.ID.String()+"/storefront.jpg", "image/jpeg", 40960); err != nil {
		t.Fatalf("Create photo: %v", err)
	}

	list, err := assets.ListByProject(p.ID)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(list))
	}
	// Oldest first.
	if list[0].Filename != "logo.png" {
		t.Errorf("order: got %q first", list[0].Filename)
	}

	if err := assets.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := assets.FindByID(a.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Error("expected asset gone after delete")
	}
}
