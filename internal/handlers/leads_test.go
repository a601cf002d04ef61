// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customsnap/internal/models"
)

func TestLeadCreateAndDuplicate(t *testing.T) {
	env := newTestEnv(t)
	email := "lead-create@handler-test.local"
	t.Cleanup(func() { cleanLead(t, env.DB, email) })

	body := `{"first_name":"Dana","last_name":"Webb","email":"` + email + `","phone":"+15550111","current_website":"https://old.example.com"}`

	rec := httptest.NewRecorder()
	env.Leads.Create(rec, httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Lead
	decodeBody(t, rec.Body.Bytes(), &created)
	if created.Email != email {
		t.Errorf("expected email %s, got %s", email, created.Email)
	}
	if created.Status != models.LeadStatusNew {
		t.Errorf("expected status new, got %s", created.Status)
	}
	if created.CurrentWebsite == nil || *created.CurrentWebsite != "https://old.example.com" {
		t.Error("expected current_website to round-trip")
	}

	// Signup opens an intake project automatically.
	project, err := env.ProjectStore.FindByLead(created.ID)
	if err != nil || project == nil {
		t.Fatalf("expected intake project for new lead: %v", err)
	}
	if project.Status != models.ProjectStatusIntake || project.Progress != 10 {
		t.Errorf("expected intake/10, got %s/%d", project.Status, project.Progress)
	}

	// Same email again returns the existing lead, not an error.
	rec = httptest.NewRecorder()
	env.Leads.Create(rec, httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on duplicate, got %d", rec.Code)
	}
	var dup models.Lead
	decodeBody(t, rec.Body.Bytes(), &dup)
	if dup.ID != created.ID {
		t.Error("duplicate submit should return the original lead")
	}
}

func TestLeadCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"first_name":"A","last_name":"B","phone":"+1555"}`},
		{"bad email", `{"first_name":"A","last_name":"B","email":"not-an-email","phone":"+1555"}`},
		{"bad website", `{"first_name":"A","last_name":"B","email":"v@handler-test.local","phone":"+1555","current_website":"not a url"}`},
		{"not json", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.Leads.Create(rec, httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestLeadGetAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	lead := makeLead(t, env, "lead-update@handler-test.local")

	rec := httptest.NewRecorder()
	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", lead.ID.String())
	env.Leads.Get(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = withChiURLParam(
		httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"qualified","notes":"called back"}`)),
		"id", lead.ID.String())
	env.Leads.Update(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Lead
	decodeBody(t, rec.Body.Bytes(), &updated)
	if updated.Status != models.LeadStatusQualified {
		t.Errorf("expected status qualified, got %s", updated.Status)
	}
	if updated.Notes == nil || *updated.Notes != "called back" {
		t.Error("expected notes to be set")
	}

	// Invalid funnel status is rejected.
	rec = httptest.NewRecorder()
	req = withChiURLParam(
		httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"bogus"}`)),
		"id", lead.ID.String())
	env.Leads.Update(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad status, got %d", rec.Code)
	}
}

func TestLeadGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "00000000-0000-0000-0000-000000000000")
	env.Leads.Get(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = withChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "not-a-uuid")
	env.Leads.Get(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad uuid, got %d", rec.Code)
	}
}
