// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"customsnap/internal/models"
	"customsnap/internal/store"
)

// Leads groups the lead intake and management handlers. Create is the
// public landing-page endpoint; the rest are staff only.
type Leads struct {
	leadStore    *store.LeadStore
	projectStore *store.ProjectStore
}

// NewLeads creates a new Leads handler group.
func NewLeads(leadStore *store.LeadStore, projectStore *store.ProjectStore) *Leads {
	return &Leads{leadStore: leadStore, projectStore: projectStore}
}

type leadCreateRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email,max=254"`
	Phone          string `json:"phone" validate:"required,max=30"`
	CurrentWebsite string `json:"current_website,omitempty" validate:"omitempty,url,max=500"`
}

// Create handles the public landing-page form. Submitting twice with the
// same email returns the existing lead instead of an error, so a retry
// from the browser is harmless.
func (h *Leads) Create(w http.ResponseWriter, r *http.Request) {
	var req leadCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	existing, err := h.leadStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("lead lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		respondJSON(w, http.StatusOK, existing)
		return
	}

	var site *string
	if req.CurrentWebsite != "" {
		site = &req.CurrentWebsite
	}

	lead, err := h.leadStore.Create(req.FirstName, req.LastName, req.Email, req.Phone, site, models.LeadSourceLandingPage)
	if err != nil {
		slog.Error("lead create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Every signup opens an intake project right away, so the prospect can
	// log into the portal and watch progress from day one.
	project, err := h.projectStore.Create(lead.ID, nil)
	if err != nil {
		slog.Error("intake project create failed", "lead", lead.ID, "error", err)
	} else {
		h.projectStore.UpdateProgress(project.ID, models.ProjectStatusIntake, 10, "We received your request")
		h.projectStore.LogActivity(project.ID, "project_created", "Your request has been received")
	}

	slog.Info("new lead", "email", lead.Email, "source", lead.Source)
	respondJSON(w, http.StatusCreated, lead)
}

// List returns all leads, optionally filtered by ?status=.
func (h *Leads) List(w http.ResponseWriter, r *http.Request) {
	status := models.LeadStatus(r.URL.Query().Get("status"))
	leads, err := h.leadStore.List(status)
	if err != nil {
		slog.Error("lead list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	respondJSON(w, http.StatusOK, leads)
}

// Get returns one lead by ID.
func (h *Leads) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	lead, err := h.leadStore.FindByID(id)
	if err != nil {
		slog.Error("lead get failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if lead == nil {
		respondError(w, http.StatusNotFound, "lead not found")
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

type leadUpdateRequest struct {
	Status string  `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified converted closed"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=10000"`
}

// Update changes a lead's funnel status and/or notes.
func (h *Leads) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var req leadUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	if req.Status != "" {
		if err := h.leadStore.UpdateStatus(id, models.LeadStatus(req.Status)); err != nil {
			slog.Error("lead status update failed", "error", err)
			respondError(w, http.StatusNotFound, "lead not found")
			return
		}
	}
	if req.Notes != nil {
		if err := h.leadStore.SetNotes(id, *req.Notes); err != nil {
			slog.Error("lead notes update failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	lead, err := h.leadStore.FindByID(id)
	if err != nil || lead == nil {
		respondError(w, http.StatusNotFound, "lead not found")
		return
	}
	respondJSON(w, http.StatusOK, lead)
}
