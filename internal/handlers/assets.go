// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"customsnap/internal/models"
	"customsnap/internal/storage"
	"customsnap/internal/store"
)

// maxUploadSize caps asset uploads at 25 MB. Logos and photos only; the
// portal is not a file locker.
const maxUploadSize = 25 << 20

// presignTTL is how long asset download links stay valid.
const presignTTL = 15 * time.Minute

// Assets groups the asset upload and download handlers. Objects live in
// S3-compatible storage; the database holds metadata only. All handlers
// respond 503 when no storage backend is configured.
type Assets struct {
	storage      *storage.Client
	assetStore   *store.AssetStore
	projectStore *store.ProjectStore
}

// NewAssets creates a new Assets handler group. storageClient may be nil
// when object storage is not configured.
func NewAssets(storageClient *storage.Client, assetStore *store.AssetStore, projectStore *store.ProjectStore) *Assets {
	return &Assets{
		storage:      storageClient,
		assetStore:   assetStore,
		projectStore: projectStore,
	}
}

func (h *Assets) storageReady(w http.ResponseWriter) bool {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "asset storage is not configured")
		return false
	}
	return true
}

// Upload accepts a multipart form with a "file" part and an optional
// "kind" field (logo, photo, other) and stores the object under the
// project's key prefix.
func (h *Assets) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.projectStore.FindByID(projectID)
	if err != nil {
		slog.Error("asset project lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	kind := models.AssetKind(r.FormValue("kind"))
	switch kind {
	case models.AssetKindLogo, models.AssetKindPhoto:
	default:
		kind = models.AssetKindOther
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Key layout: projects/<uuid>/<random>-<ext>. The original filename is
	// kept in the database, not in the key, so clients can upload
	// "logo (final) v2.png" without producing awkward object keys.
	filename := filepath.Base(header.Filename)
	key := fmt.Sprintf("projects/%s/%s%s", projectID, uuid.NewString(), filepath.Ext(filename))

	if err := h.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("asset upload failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	asset, err := h.assetStore.Create(projectID, kind, filename, h.storage.Bucket(), key, contentType, header.Size)
	if err != nil {
		slog.Error("asset record failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.projectStore.LogActivity(projectID, "asset_uploaded", "File received: "+filename)

	slog.Info("asset uploaded", "project", projectID, "key", key, "size", header.Size)
	respondJSON(w, http.StatusCreated, asset)
}

// List returns the assets attached to a project.
func (h *Assets) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	assets, err := h.assetStore.ListByProject(projectID)
	if err != nil {
		slog.Error("asset list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	respondJSON(w, http.StatusOK, assets)
}

// Download returns a short-lived pre-signed URL for an asset.
func (h *Assets) Download(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "assetID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.assetStore.FindByID(id)
	if err != nil {
		slog.Error("asset lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if asset == nil {
		respondError(w, http.StatusNotFound, "asset not found")
		return
	}

	url, err := h.storage.PresignedURL(r.Context(), asset.S3Key, presignTTL)
	if err != nil {
		slog.Error("asset presign failed", "key", asset.S3Key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"url":        url,
		"filename":   asset.Filename,
		"expires_in": int(presignTTL.Seconds()),
	})
}

// Delete removes an asset from storage and the database.
func (h *Assets) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "assetID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.assetStore.FindByID(id)
	if err != nil {
		slog.Error("asset lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if asset == nil {
		respondError(w, http.StatusNotFound, "asset not found")
		return
	}

	if err := h.storage.Delete(r.Context(), asset.S3Key); err != nil {
		slog.Error("asset object delete failed", "key", asset.S3Key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := h.assetStore.Delete(id); err != nil {
		slog.Error("asset record delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
