// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"customsnap/internal/models"
	"customsnap/internal/slug"
	"customsnap/internal/store"
)

// Projects groups the staff-facing project management handlers.
type Projects struct {
	projectStore   *store.ProjectStore
	leadStore      *store.LeadStore
	discoveryStore *store.DiscoveryStore
	previewBase    string
}

// NewProjects creates a new Projects handler group. previewBase is the
// base URL for derived preview links.
func NewProjects(projectStore *store.ProjectStore, leadStore *store.LeadStore, discoveryStore *store.DiscoveryStore, previewBase string) *Projects {
	return &Projects{
		projectStore:   projectStore,
		leadStore:      leadStore,
		discoveryStore: discoveryStore,
		previewBase:    strings.TrimRight(previewBase, "/"),
	}
}

type projectCreateRequest struct {
	LeadID string `json:"lead_id" validate:"required,uuid"`
}

// Create opens a project for a lead. The lead's most recent discovery
// response is attached if one exists, the lead moves to converted, and a
// client slug is derived from their name.
func (h *Projects) Create(w http.ResponseWriter, r *http.Request) {
	var req projectCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}
	leadID := uuid.MustParse(req.LeadID)

	lead, err := h.leadStore.FindByID(leadID)
	if err != nil {
		slog.Error("project lead lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if lead == nil {
		respondError(w, http.StatusNotFound, "lead not found")
		return
	}

	var discoveryID *uuid.UUID
	if d, err := h.discoveryStore.FindByLead(leadID); err == nil && d != nil {
		discoveryID = &d.ID
	}

	// Lead intake usually opened a project already; adopt it instead of
	// creating a second one for the same client.
	project, err := h.projectStore.FindByLead(leadID)
	if err != nil {
		slog.Error("project lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		project, err = h.projectStore.Create(leadID, discoveryID)
		if err != nil {
			slog.Error("project create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	} else if project.DiscoveryID == nil && discoveryID != nil {
		if err := h.projectStore.SetDiscovery(project.ID, *discoveryID); err != nil {
			slog.Error("attach discovery failed", "error", err)
		}
	}

	// Slug collisions (two clients with the same name) fall back to the
	// project UUID prefix.
	if project.ClientSlug == nil {
		clientSlug := slug.Generate(lead.FullName())
		if existing, _ := h.projectStore.FindBySlug(clientSlug); existing != nil && existing.ID != project.ID {
			clientSlug = clientSlug + "-" + project.ID.String()[:8]
		}
		if err := h.projectStore.SetSlug(project.ID, clientSlug); err != nil {
			slog.Error("project slug failed", "error", err)
		}
	}

	if err := h.leadStore.UpdateStatus(leadID, models.LeadStatusConverted); err != nil {
		slog.Error("lead conversion failed", "error", err)
	}

	h.projectStore.LogActivity(project.ID, "project_created", "Project opened for "+lead.FullName())

	project, err = h.projectStore.FindByID(project.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

// List returns all projects with their leads, optionally filtered by ?status=.
func (h *Projects) List(w http.ResponseWriter, r *http.Request) {
	status := models.ProjectStatus(r.URL.Query().Get("status"))
	projects, err := h.projectStore.List(status)
	if err != nil {
		slog.Error("project list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

// Get returns one project with its activity log.
func (h *Projects) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.projectStore.FindByID(id)
	if err != nil {
		slog.Error("project get failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	activities, err := h.projectStore.Activities(id)
	if err != nil {
		slog.Error("project activities failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"project":    project,
		"activities": activities,
	})
}

type projectProgressRequest struct {
	Status      string `json:"status" validate:"required,oneof=intake design building review launched on_hold cancelled"`
	Progress    int    `json:"progress" validate:"min=0,max=100"`
	CurrentStep string `json:"current_step" validate:"required,max=200"`
}

// UpdateProgress moves a project through its delivery phases and records
// the change in the activity log the client sees.
func (h *Projects) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req projectProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	if err := h.projectStore.UpdateProgress(id, models.ProjectStatus(req.Status), req.Progress, req.CurrentStep); err != nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	h.projectStore.LogActivity(id, "status_change", req.CurrentStep)

	project, err := h.projectStore.FindByID(id)
	if err != nil || project == nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

type previewRequest struct {
	PreviewURL string `json:"preview_url,omitempty" validate:"omitempty,url,max=500"`
}

// SetPreview publishes the staging link shown in the portal. When no URL
// is given, the link is derived from the project's client slug under the
// configured preview base.
func (h *Projects) SetPreview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req previewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	previewURL := req.PreviewURL
	if previewURL == "" {
		project, err := h.projectStore.FindByID(id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if project == nil {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}
		if project.ClientSlug == nil {
			respondError(w, http.StatusConflict, "project has no client slug yet")
			return
		}
		previewURL = h.previewBase + "/preview/" + *project.ClientSlug
	}

	if err := h.projectStore.SetPreviewURL(id, previewURL); err != nil {
		slog.Error("project preview failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.projectStore.LogActivity(id, "preview_published", "A new preview of your website is ready")

	respondJSON(w, http.StatusOK, map[string]string{"preview_url": previewURL})
}
