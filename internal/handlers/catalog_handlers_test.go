// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customsnap/internal/catalog"
)

func registerBody(t *testing.T, clientName string, ch characteristicsPayload, extra map[string]any) *bytes.Reader {
	t.Helper()
	body := map[string]any{
		"client_name":     clientName,
		"industry":        string(catalog.IndustryPlumbing),
		"characteristics": ch,
	}
	for k, v := range extra {
		body[k] = v
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(raw)
}

func TestCatalogRegisterAndReject(t *testing.T) {
	env := newTestEnv(t)
	ch := sampleCharacteristics()

	rec := httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds",
		registerBody(t, "Reject Test Plumbing", ch, nil)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var res catalog.AddResult
	decodeBody(t, rec.Body.Bytes(), &res)
	if !res.Success || res.Build == nil {
		t.Fatal("expected a successful registration")
	}
	if res.Build.Status != catalog.StatusDraft {
		t.Errorf("expected draft status, got %s", res.Build.Status)
	}

	// The identical fingerprint is a 100% duplicate and gets rejected with
	// the similar builds and variation suggestions attached.
	rec = httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds",
		registerBody(t, "Reject Test Plumbing Two", ch, nil)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	decodeBody(t, rec.Body.Bytes(), &res)
	if res.Success {
		t.Error("expected rejection")
	}
	if len(res.SimilarBuilds) == 0 {
		t.Error("expected similar builds in rejection")
	}
	if len(res.Suggestions) == 0 {
		t.Error("expected variation suggestions in rejection")
	}

	// allow_similar forces it through.
	rec = httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds",
		registerBody(t, "Reject Test Plumbing Three", ch, map[string]any{"allow_similar": true})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 with allow_similar, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCatalogRegisterUnknownValues(t *testing.T) {
	env := newTestEnv(t)

	badLayout := sampleCharacteristics()
	badLayout.Layout = "brutalist-mega-grid"

	rec := httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds",
		registerBody(t, "Bad Layout Co", badLayout, nil)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown layout, got %d", rec.Code)
	}

	body := map[string]any{
		"client_name":     "Bad Industry Co",
		"industry":        "submarine-repair",
		"characteristics": sampleCharacteristics(),
	}
	raw, _ := json.Marshal(body)
	rec = httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds", bytes.NewReader(raw)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown industry, got %d", rec.Code)
	}
}

func TestCatalogCheckPreflight(t *testing.T) {
	env := newTestEnv(t)
	ch := sampleCharacteristics()
	before := env.Manager.Stats().TotalBuilds

	rec := httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds",
		registerBody(t, "Preflight Base", ch, nil)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	raw, _ := json.Marshal(map[string]any{"characteristics": ch})
	rec = httptest.NewRecorder()
	env.Catalog.Check(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/check", bytes.NewReader(raw)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var out struct {
		IsDuplicate   bool                      `json:"isDuplicate"`
		SimilarBuilds []catalog.SimilarBuild    `json:"similarBuilds"`
		Suggestions   []catalog.Characteristics `json:"suggestions"`
	}
	decodeBody(t, rec.Body.Bytes(), &out)
	if !out.IsDuplicate {
		t.Error("identical fingerprint should preflight as duplicate")
	}
	if len(out.Suggestions) == 0 {
		t.Error("expected suggestions for a duplicate")
	}

	// Nothing was registered by the preflight.
	if got := env.Manager.Stats().TotalBuilds; got != before+1 {
		t.Errorf("preflight must not register builds, catalog has %d", got)
	}
}

func TestCatalogLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds",
		registerBody(t, "Lifecycle Plumbing", sampleCharacteristics(), nil)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	var res catalog.AddResult
	decodeBody(t, rec.Body.Bytes(), &res)

	rec = httptest.NewRecorder()
	req := withChiURLParam(
		httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)),
		"id", res.Build.ID)
	env.Catalog.Finalize(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("finalize: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = withChiURLParam(
		httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"https://lifecycle-plumbing.example.com"}`)),
		"id", res.Build.ID)
	env.Catalog.Live(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("live: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	builds := env.Manager.Builds("", catalog.StatusLive)
	found := false
	for _, b := range builds {
		if b.ID == res.Build.ID {
			found = true
			if b.URL != "https://lifecycle-plumbing.example.com" {
				t.Error("expected live URL recorded")
			}
		}
	}
	if !found {
		t.Error("expected build in live listing")
	}

	// Unknown IDs are 404s.
	rec = httptest.NewRecorder()
	req = withChiURLParam(
		httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"https://x.example.com"}`)),
		"id", "build-does-not-exist")
	env.Catalog.Live(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCatalogStatsCaching(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Catalog.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var first catalog.CatalogStats
	decodeBody(t, rec.Body.Bytes(), &first)

	// Second read is served from Valkey and must decode identically.
	rec = httptest.NewRecorder()
	env.Catalog.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/stats", nil))
	var second catalog.CatalogStats
	decodeBody(t, rec.Body.Bytes(), &second)
	if first.TotalBuilds != second.TotalBuilds {
		t.Errorf("cached stats diverged: %d vs %d", first.TotalBuilds, second.TotalBuilds)
	}

	// A registration invalidates the cache and the count moves.
	rec = httptest.NewRecorder()
	env.Catalog.Register(rec, httptest.NewRequest(http.MethodPost, "/api/admin/catalog/builds",
		registerBody(t, "Stats Cache Plumbing", sampleCharacteristics(), map[string]any{"allow_similar": true})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.Catalog.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/stats", nil))
	var third catalog.CatalogStats
	decodeBody(t, rec.Body.Bytes(), &third)
	if third.TotalBuilds != second.TotalBuilds+1 {
		t.Errorf("expected %d builds after register, got %d", second.TotalBuilds+1, third.TotalBuilds)
	}
}

func TestCatalogRecommend(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Catalog.Recommend(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/recommend?industry=dental", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var recommendation catalog.Recommendation
	decodeBody(t, rec.Body.Bytes(), &recommendation)
	if recommendation.Recommended.Layout == "" {
		t.Error("expected a recommended layout")
	}

	rec = httptest.NewRecorder()
	env.Catalog.Recommend(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/recommend", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without industry, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.Catalog.Recommend(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/recommend?industry=submarine-repair", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown industry, got %d", rec.Code)
	}
}

func TestCatalogUniverseAndTemplates(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Catalog.Universe(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/universe", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("universe: expected 200, got %d", rec.Code)
	}
	var u catalog.Universe
	decodeBody(t, rec.Body.Bytes(), &u)
	if len(u.Layouts) == 0 || len(u.Industries) == 0 {
		t.Error("expected a populated universe")
	}

	rec = httptest.NewRecorder()
	env.Catalog.Templates(rec, httptest.NewRequest(http.MethodGet, "/api/admin/catalog/templates", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("templates: expected 200, got %d", rec.Code)
	}
}
