// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"customsnap/internal/middleware"
	"customsnap/internal/models"
	"customsnap/internal/session"
	"customsnap/internal/store"
)

// Portal groups the customer-facing portal handlers. Clients log in with
// just the email they signed up with; the session that opens is scoped to
// their lead and cannot reach the staff API.
type Portal struct {
	sessions     *session.Store
	leadStore    *store.LeadStore
	projectStore *store.ProjectStore
	assetStore   *store.AssetStore
}

// NewPortal creates a new Portal handler group.
func NewPortal(sessions *session.Store, leadStore *store.LeadStore, projectStore *store.ProjectStore, assetStore *store.AssetStore) *Portal {
	return &Portal{
		sessions:     sessions,
		leadStore:    leadStore,
		projectStore: projectStore,
		assetStore:   assetStore,
	}
}

type portalLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login opens a portal session for a known lead email. Unknown emails get
// the same error as known ones without a project, so the endpoint cannot
// be used to probe which addresses are in the funnel.
func (p *Portal) Login(w http.ResponseWriter, r *http.Request) {
	var req portalLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	lead, err := p.leadStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("portal login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if lead == nil {
		respondError(w, http.StatusUnauthorized, "no project found for this email")
		return
	}

	project, err := p.projectStore.FindByLead(lead.ID)
	if err != nil {
		slog.Error("portal project lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		respondError(w, http.StatusUnauthorized, "no project found for this email")
		return
	}

	_, err = p.sessions.Create(r.Context(), w, &session.Data{
		Kind:        session.KindPortal,
		Email:       lead.Email,
		DisplayName: lead.FullName(),
		LeadID:      &lead.ID,
	})
	if err != nil {
		slog.Error("portal session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	slog.Info("portal login", "lead", lead.ID)
	respondJSON(w, http.StatusOK, map[string]string{
		"display_name": lead.FullName(),
		"email":        lead.Email,
	})
}

// Project returns the logged-in client's project with its activity log
// and uploaded assets.
func (p *Portal) Project(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	project, err := p.projectStore.FindByLead(*sess.LeadID)
	if err != nil {
		slog.Error("portal project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	activities, err := p.projectStore.Activities(project.ID)
	if err != nil {
		slog.Error("portal activities failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	// Clients see the recent timeline, not the full history.
	if len(activities) > 10 {
		activities = activities[:10]
	}

	assets, err := p.assetStore.ListByProject(project.ID)
	if err != nil {
		slog.Error("portal assets failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if assets == nil {
		assets = []models.Asset{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"project":    project,
		"activities": activities,
		"assets":     assets,
	})
}

// Logout destroys the portal session.
func (p *Portal) Logout(w http.ResponseWriter, r *http.Request) {
	p.sessions.Destroy(r.Context(), w, r)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
