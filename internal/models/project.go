// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus tracks the delivery phase of a client's website project.
// This is operational workflow state; the design lifecycle of the build
// itself lives in the catalog.
type ProjectStatus string

const (
	ProjectStatusIntake    ProjectStatus = "intake"
	ProjectStatusDesign    ProjectStatus = "design"
	ProjectStatusBuilding  ProjectStatus = "building"
	ProjectStatusReview    ProjectStatus = "review"
	ProjectStatusLaunched  ProjectStatus = "launched"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// Project is one website engagement for a lead: status, progress
// percentage, and the current step shown in the customer portal.
// BuildID links the project to its design fingerprint in the catalog
// once one has been registered.
type Project struct {
	ID          uuid.UUID     `json:"id"`
	LeadID      uuid.UUID     `json:"lead_id"`
	DiscoveryID *uuid.UUID    `json:"discovery_id,omitempty"`
	BuildID     *string       `json:"build_id,omitempty"`
	ClientSlug  *string       `json:"client_slug,omitempty"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	CurrentStep string        `json:"current_step"`
	PreviewURL  *string       `json:"preview_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Lead is populated on admin listings that join the leads table.
	Lead *Lead `json:"lead,omitempty"`
}

// Activity is one entry in a project's activity log, shown to the client
// in the portal timeline.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
