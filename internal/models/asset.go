// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetKind distinguishes the files a client hands over for their build.
type AssetKind string

const (
	AssetKindLogo  AssetKind = "logo"
	AssetKindPhoto AssetKind = "photo"
	AssetKindOther AssetKind = "other"
)

// Asset is a client-supplied file (logo, photos) stored in object storage
// and attached to a project.
type Asset struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Kind        AssetKind `json:"kind"`
	Filename    string    `json:"filename"`
	Bucket      string    `json:"bucket"`
	S3Key       string    `json:"s3_key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
