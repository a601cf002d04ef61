// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"customsnap/internal/middleware"
	"customsnap/internal/models"
	"customsnap/internal/store"
)

// Users groups the staff account management handlers. All of them sit
// behind the admin role.
type Users struct {
	userStore *store.UserStore
}

// NewUsers creates a new Users handler group.
func NewUsers(userStore *store.UserStore) *Users {
	return &Users{userStore: userStore}
}

// List returns all staff accounts.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List()
	if err != nil {
		slog.Error("user list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

type userCreateRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Password    string `json:"password" validate:"required,min=12,max=128"`
	Role        string `json:"role" validate:"required,oneof=admin builder"`
}

// Create adds a staff account. The new user must set up 2FA on first login.
func (h *Users) Create(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationError(err))
		return
	}

	existing, err := h.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("user lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "a user with this email already exists")
		return
	}

	user, err := h.userStore.Create(req.Email, req.Password, req.DisplayName, models.Role(req.Role))
	if err != nil {
		slog.Error("user create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	slog.Info("user created", "email", user.Email, "role", user.Role)
	respondJSON(w, http.StatusCreated, user)
}

// ResetTOTP clears a user's 2FA enrollment so they can re-enroll after
// losing their device.
func (h *Users) ResetTOTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userStore.ResetTOTP(id); err != nil {
		slog.Error("totp reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Delete removes a staff account. Admins cannot delete themselves.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil && sess.UserID == id {
		respondError(w, http.StatusConflict, "cannot delete your own account")
		return
	}

	if err := h.userStore.Delete(id); err != nil {
		slog.Error("user delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
