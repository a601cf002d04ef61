// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"customsnap/internal/cache"
	"customsnap/internal/catalog"
	"customsnap/internal/store"
)

// Catalog groups the staff-facing catalog handlers: registration with
// duplicate detection, lifecycle transitions, recommendations, and
// reports. Stats and the summary are cached in Valkey and invalidated on
// every mutation.
type Catalog struct {
	manager      *catalog.Manager
	projectStore *store.ProjectStore
	reports      *cache.ReportCache
}

// NewCatalog creates a new Catalog handler group. reports may be nil when
// Valkey is not configured; reports are then computed on every request.
func NewCatalog(manager *catalog.Manager, projectStore *store.ProjectStore, reports *cache.ReportCache) *Catalog {
	return &Catalog{
		manager:      manager,
		projectStore: projectStore,
		reports:      reports,
	}
}

type registerRequest struct {
	ClientName      string                 `json:"client_name" validate:"required,max=200"`
	Industry        string                 `json:"industry" validate:"required"`
	Characteristics characteristicsPayload `json:"characteristics" validate:"required"`
	TemplateBase    *string                `json:"template_base,omitempty" validate:"omitempty,max=100"`
	AllowSimilar    bool                   `json:"allow_similar"`
	Threshold       float64                `json:"threshold" validate:"min=0,max=1"`
	ProjectID       *string                `json:"project_id,omitempty" validate:"omitempty,uuid"`
}

// Register runs the registration workflow. A rejected registration comes
// back as 409 with the ranked near-duplicates and suggested variations.
// When project_id is given, the new build is linked to that project.
func (h *Catalog) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	universe := h.manager.Universe()
	industry := catalog.Industry(req.Industry)
	if !universe.HasIndustry(industry) {
		respondError(w, http.StatusBadRequest, "unknown industry "+req.Industry)
		return
	}
	ch, msg := req.Characteristics.toCharacteristics(universe)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := h.manager.Register(r.Context(), req.ClientName, industry, ch, catalog.AddOptions{
		TemplateBase:        req.TemplateBase,
		AllowSimilar:        req.AllowSimilar,
		SimilarityThreshold: req.Threshold,
	})
	if err != nil {
		slog.Error("catalog register failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !res.Success {
		respondJSON(w, http.StatusConflict, res)
		return
	}

	h.invalidateReports(r)

	if req.ProjectID != nil {
		projectID := uuid.MustParse(*req.ProjectID)
		if err := h.projectStore.SetBuild(projectID, res.Build.ID); err != nil {
			slog.Error("build link failed", "project", projectID, "error", err)
		} else {
			h.projectStore.LogActivity(projectID, "design_registered", "Design fingerprint registered for your website")
		}
	}

	slog.Info("build registered", "id", res.Build.ID, "client", req.ClientName, "industry", industry)
	respondJSON(w, http.StatusCreated, res)
}

type checkRequest struct {
	Characteristics characteristicsPayload `json:"characteristics" validate:"required"`
	Threshold       float64                `json:"threshold" validate:"min=0,max=1"`
}

// Check is the preflight endpoint: score a proposed fingerprint against
// the catalog without registering anything.
func (h *Catalog) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	ch, msg := req.Characteristics.toCharacteristics(h.manager.Universe())
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	check, suggestions := h.manager.Check(ch, req.Threshold)
	respondJSON(w, http.StatusOK, map[string]any{
		"isDuplicate":   check.IsDuplicate,
		"similarBuilds": check.SimilarBuilds,
		"suggestions":   suggestions,
	})
}

type lifecycleRequest struct {
	URL string `json:"url,omitempty" validate:"omitempty,url,max=500"`
}

// Finalize marks a build's design as locked in.
func (h *Catalog) Finalize(w http.ResponseWriter, r *http.Request) {
	buildID := chi.URLParam(r, "id")

	var req lifecycleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	ok, err := h.manager.Finalize(r.Context(), buildID, req.URL)
	if err != nil {
		slog.Error("catalog finalize failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "build not found")
		return
	}

	h.invalidateReports(r)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type liveRequest struct {
	URL string `json:"url" validate:"required,url,max=500"`
}

// Live marks a build as launched at its production URL.
func (h *Catalog) Live(w http.ResponseWriter, r *http.Request) {
	buildID := chi.URLParam(r, "id")

	var req liveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	ok, err := h.manager.MarkLive(r.Context(), buildID, req.URL)
	if err != nil {
		slog.Error("catalog live failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "build not found")
		return
	}

	h.invalidateReports(r)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Builds lists registered builds, filtered by ?industry= and ?status=.
func (h *Catalog) Builds(w http.ResponseWriter, r *http.Request) {
	industry := catalog.Industry(r.URL.Query().Get("industry"))
	status := catalog.BuildStatus(r.URL.Query().Get("status"))

	builds := h.manager.Builds(industry, status)
	if builds == nil {
		builds = []*catalog.Build{}
	}
	respondJSON(w, http.StatusOK, builds)
}

// Universe returns every declared characteristic value, for populating
// the build form in the admin UI.
func (h *Catalog) Universe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.Universe())
}

// Templates returns the catalog's template registry.
func (h *Catalog) Templates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.Templates())
}

// Recommend returns fresh characteristic picks for ?industry=.
func (h *Catalog) Recommend(w http.ResponseWriter, r *http.Request) {
	industry := catalog.Industry(r.URL.Query().Get("industry"))
	if industry == "" {
		respondError(w, http.StatusBadRequest, "industry query parameter is required")
		return
	}
	if !h.manager.Universe().HasIndustry(industry) {
		respondError(w, http.StatusBadRequest, "unknown industry "+string(industry))
		return
	}
	respondJSON(w, http.StatusOK, h.manager.Recommend(industry))
}

// Stats returns the aggregate catalog snapshot, cached in Valkey.
func (h *Catalog) Stats(w http.ResponseWriter, r *http.Request) {
	if h.reports != nil {
		if body, ok := h.reports.Get(r.Context(), cache.StatsKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	stats := h.manager.Stats()
	if h.reports != nil {
		if body, err := json.Marshal(stats); err == nil {
			h.reports.Set(r.Context(), cache.StatsKey, body)
		}
	}
	respondJSON(w, http.StatusOK, stats)
}

// Summary returns the operator-facing text digest, cached in Valkey.
func (h *Catalog) Summary(w http.ResponseWriter, r *http.Request) {
	if h.reports != nil {
		if body, ok := h.reports.Get(r.Context(), cache.SummaryKey); ok {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write(body)
			return
		}
	}

	summary := h.manager.Summary()
	if h.reports != nil {
		h.reports.Set(r.Context(), cache.SummaryKey, []byte(summary))
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(summary))
}

func (h *Catalog) invalidateReports(r *http.Request) {
	if h.reports != nil {
		h.reports.InvalidateAll(r.Context())
	}
}
