// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"customsnap/internal/models"
	"customsnap/internal/store"
)

// Discovery groups the questionnaire handlers. Submit is public so a
// prospect can answer before leaving contact details; staff read the
// responses through the admin surface.
type Discovery struct {
	discoveryStore *store.DiscoveryStore
	leadStore      *store.LeadStore
	projectStore   *store.ProjectStore
}

// NewDiscovery creates a new Discovery handler group.
func NewDiscovery(discoveryStore *store.DiscoveryStore, leadStore *store.LeadStore, projectStore *store.ProjectStore) *Discovery {
	return &Discovery{
		discoveryStore: discoveryStore,
		leadStore:      leadStore,
		projectStore:   projectStore,
	}
}

type discoverySubmitRequest struct {
	Email             string   `json:"email,omitempty" validate:"omitempty,email"`
	StyleDirections   []string `json:"style_directions" validate:"max=10,dive,max=100"`
	StyleReasons      []string `json:"style_reasons" validate:"max=20,dive,max=500"`
	InspirationURLs   []string `json:"inspiration_urls" validate:"max=10,dive,url"`
	AvoidFeatures     []string `json:"avoid_features" validate:"max=30,dive,max=200"`
	Dealbreakers      *string  `json:"dealbreakers,omitempty" validate:"omitempty,max=2000"`
	Challenges        []string `json:"challenges" validate:"max=30,dive,max=200"`
	OtherFrustrations []string `json:"other_frustrations" validate:"max=30,dive,max=500"`
	ProblemImpact     *string  `json:"problem_impact,omitempty" validate:"omitempty,max=2000"`
	PagesNeeded       []string `json:"pages_needed" validate:"max=30,dive,max=100"`
	OtherPages        *string  `json:"other_pages,omitempty" validate:"omitempty,max=1000"`
	MustHaveFeatures  []string `json:"must_have_features" validate:"max=30,dive,max=200"`
	OtherFeatures     *string  `json:"other_features,omitempty" validate:"omitempty,max=1000"`
	ServiceCount      *string  `json:"service_count,omitempty" validate:"omitempty,max=50"`
	ServicesList      *string  `json:"services_list,omitempty" validate:"omitempty,max=5000"`
	WebsiteGoals      []string `json:"website_goals" validate:"max=20,dive,max=200"`
	WantsBooking      *string  `json:"wants_booking,omitempty" validate:"omitempty,max=50"`
	HasBooking        *string  `json:"has_booking,omitempty" validate:"omitempty,max=50"`
	AdditionalNotes   *string  `json:"additional_notes,omitempty" validate:"omitempty,max=5000"`
}

// Submit stores a completed questionnaire. If the email matches a known
// lead, the response is linked to them; otherwise it is stored anonymous
// and linked later when the prospect signs up.
func (h *Discovery) Submit(w http.ResponseWriter, r *http.Request) {
	var req discoverySubmitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	var leadID *uuid.UUID
	if req.Email != "" {
		lead, err := h.leadStore.FindByEmail(req.Email)
		if err != nil {
			slog.Error("discovery lead lookup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if lead != nil {
			leadID = &lead.ID
		}
	}

	resp, err := h.discoveryStore.Create(&models.DiscoveryResponse{
		LeadID:            leadID,
		StyleDirections:   req.StyleDirections,
		StyleReasons:      req.StyleReasons,
		InspirationURLs:   req.InspirationURLs,
		AvoidFeatures:     req.AvoidFeatures,
		Dealbreakers:      req.Dealbreakers,
		Challenges:        req.Challenges,
		OtherFrustrations: req.OtherFrustrations,
		ProblemImpact:     req.ProblemImpact,
		PagesNeeded:       req.PagesNeeded,
		OtherPages:        req.OtherPages,
		MustHaveFeatures:  req.MustHaveFeatures,
		OtherFeatures:     req.OtherFeatures,
		ServiceCount:      req.ServiceCount,
		ServicesList:      req.ServicesList,
		WebsiteGoals:      req.WebsiteGoals,
		WantsBooking:      req.WantsBooking,
		HasBooking:        req.HasBooking,
		AdditionalNotes:   req.AdditionalNotes,
		CompletedAt:       time.Now().UTC(),
	})
	if err != nil {
		slog.Error("discovery create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if leadID != nil {
		h.advanceProject(*leadID, resp.ID)
	}

	slog.Info("discovery response received", "id", resp.ID, "linked", leadID != nil)
	respondJSON(w, http.StatusCreated, resp)
}

// advanceProject attaches the discovery response to the lead's intake
// project and moves it to the "discovery completed" milestone. Projects
// already past intake are left alone.
func (h *Discovery) advanceProject(leadID, discoveryID uuid.UUID) {
	project, err := h.projectStore.FindByLead(leadID)
	if err != nil || project == nil {
		return
	}

	if project.DiscoveryID == nil {
		if err := h.projectStore.SetDiscovery(project.ID, discoveryID); err != nil {
			slog.Error("attach discovery failed", "project", project.ID, "error", err)
		}
	}
	if project.Status == models.ProjectStatusIntake && project.Progress < 20 {
		h.projectStore.UpdateProgress(project.ID, models.ProjectStatusIntake, 20, "Discovery completed")
		h.projectStore.LogActivity(project.ID, "discovery_completed", "Discovery questionnaire received")
	}
}

// Get returns one discovery response by ID.
func (h *Discovery) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid discovery id")
		return
	}

	resp, err := h.discoveryStore.FindByID(id)
	if err != nil {
		slog.Error("discovery get failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if resp == nil {
		respondError(w, http.StatusNotFound, "discovery response not found")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

type discoveryLinkRequest struct {
	LeadID string `json:"lead_id" validate:"required,uuid"`
}

// Link attaches an anonymous discovery response to a lead. Staff use this
// when a prospect filled the questionnaire without leaving their email
// and is identified later.
func (h *Discovery) Link(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid discovery id")
		return
	}

	var req discoveryLinkRequest
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
		slog.Error("discovery link lead lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if lead == nil {
		respondError(w, http.StatusNotFound, "lead not found")
		return
	}

	if err := h.discoveryStore.LinkLead(id, leadID); err != nil {
		respondError(w, http.StatusNotFound, "discovery response not found")
		return
	}

	resp, err := h.discoveryStore.FindByID(id)
	if err != nil || resp == nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// ForLead returns the most recent discovery response for a lead.
func (h *Discovery) ForLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	resp, err := h.discoveryStore.FindByLead(leadID)
	if err != nil {
		slog.Error("discovery lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if resp == nil {
		respondError(w, http.StatusNotFound, "no discovery response for lead")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
