// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DiscoveryResponse is one completed discovery questionnaire: the style,
// feature, and goal answers a prospect gives before we design their site.
// The list answers are stored as JSONB in PostgreSQL.
type DiscoveryResponse struct {
	ID                uuid.UUID  `json:"id"`
	LeadID            *uuid.UUID `json:"lead_id,omitempty"`
	StyleDirections   []string   `json:"style_directions"`
	StyleReasons      []string   `json:"style_reasons"`
	InspirationURLs   []string   `json:"inspiration_urls"`
	AvoidFeatures     []string   `json:"avoid_features"`
	Dealbreakers      *string    `json:"dealbreakers,omitempty"`
	Challenges        []string   `json:"challenges"`
	OtherFrustrations []string   `json:"other_frustrations"`
	ProblemImpact     *string    `json:"problem_impact,omitempty"`
	PagesNeeded       []string   `json:"pages_needed"`
	OtherPages        *string    `json:"other_pages,omitempty"`
	MustHaveFeatures  []string   `json:"must_have_features"`
	OtherFeatures     *string    `json:"other_features,omitempty"`
	ServiceCount      *string    `json:"service_count,omitempty"`
	ServicesList      *string    `json:"services_list,omitempty"`
	WebsiteGoals      []string   `json:"website_goals"`
	WantsBooking      *string    `json:"wants_booking,omitempty"`
	HasBooking        *string    `json:"has_booking,omitempty"`
	AdditionalNotes   *string    `json:"additional_notes,omitempty"`
	CompletedAt       time.Time  `json:"completed_at"`
	CreatedAt         time.Time  `json:"created_at"`
}
