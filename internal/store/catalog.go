// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"customsnap/internal/catalog"
)

// CatalogStore persists the website catalog as a single JSONB document.
// The catalog is small (hundreds of builds at most) and always read and
// written whole, so a document column beats a normalized schema here.
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore creates a new CatalogStore with the given database connection.
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Load reads the catalog document. Returns nil if no catalog has been
// saved yet, which tells the manager to start a fresh one.
func (s *CatalogStore) Load(ctx context.Context) (*catalog.Catalog, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM catalog_data WHERE id = 1
	`).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	cat := &catalog.Catalog{}
	if err := json.Unmarshal(doc, cat); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return cat, nil
}

// Save writes the catalog document, replacing any previous version.
func (s *CatalogStore) Save(ctx context.Context, cat *catalog.Catalog) error {
	doc, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO catalog_data (id, document, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()
	`, doc)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
