// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"customsnap/internal/models"
)

// AssetStore tracks client-uploaded files. The bytes live in object
// storage; this table holds the metadata and S3 keys.
type AssetStore struct {
	db *sql.DB
}

// NewAssetStore creates a new AssetStore with the given database connection.
func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

// Create records an uploaded asset for a project.
func (s *AssetStore) Create(projectID uuid.UUID, kind models.AssetKind, filename, bucket, s3Key, contentType string, sizeBytes int64) (*models.Asset, error) {
	a := &models.Asset{}
	err := s.db.QueryRow(`
		INSERT INTO assets (project_id, kind, filename, bucket, s3_key, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, project_id, kind, filename, bucket, s3_key, content_type, size_bytes, created_at
	`, projectID, kind, filename, bucket, s3Key, contentType, sizeBytes).Scan(
		&a.ID, &a.ProjectID, &a.Kind, &a.Filename, &a.Bucket,
		&a.S3Key, &a.ContentType, &a.SizeBytes, &a.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return a, nil
}

// FindByID retrieves an asset by UUID. Returns nil if not found.
func (s *AssetStore) FindByID(id uuid.UUID) (*models.Asset, error) {
	a := &models.Asset{}
	err := s.db.QueryRow(`
		SELECT id, project_id, kind, filename, bucket, s3_key, content_type, size_bytes, created_at
		FROM assets WHERE id = $1
	`, id).Scan(
		&a.ID, &a.ProjectID, &a.Kind, &a.Filename, &a.Bucket,
		&a.S3Key, &a.ContentType, &a.SizeBytes, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find asset by id: %w", err)
	}
	return a, nil
}

// ListByProject returns all assets attached to a project, oldest first.
func (s *AssetStore) ListByProject(projectID uuid.UUID) ([]models.Asset, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, kind, filename, bucket, s3_key, content_type, size_bytes, created_at
		FROM assets WHERE project_id = $1
		ORDER BY created_at ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.Kind, &a.Filename, &a.Bucket,
			&a.S3Key, &a.ContentType, &a.SizeBytes, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Delete removes an asset record by ID. The caller is responsible for
// deleting the object from storage first.
func (s *AssetStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
