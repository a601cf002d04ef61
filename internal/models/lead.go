// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks where a lead sits in the sales funnel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusClosed    LeadStatus = "closed"
)

// LeadSource records which surface produced the lead.
type LeadSource string

const (
	LeadSourceLandingPage LeadSource = "landing_page"
	LeadSourceReferral    LeadSource = "referral"
	LeadSourceManual      LeadSource = "manual"
)

// Lead is a prospect who filled out a landing-page form. A lead that signs
// becomes the owner of a Project.
type Lead struct {
	ID             uuid.UUID  `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	CurrentWebsite *string    `json:"current_website,omitempty"`
	Source         LeadSource `json:"source"`
	Status         LeadStatus `json:"status"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FullName returns the lead's display name.
func (l *Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}
