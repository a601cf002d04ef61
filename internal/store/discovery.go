// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"customsnap/internal/models"
)

// DiscoveryStore handles discovery questionnaire persistence. The list
// answers are stored as JSONB columns so the questionnaire can evolve
// without schema churn.
type DiscoveryStore struct {
	db *sql.DB
}

// NewDiscoveryStore creates a new DiscoveryStore with the given database connection.
func NewDiscoveryStore(db *sql.DB) *DiscoveryStore {
	return &DiscoveryStore{db: db}
}

// jsonList marshals a string slice for a JSONB column. A nil slice is
// stored as an empty array, never as SQL NULL.
func jsonList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	return json.Marshal(v)
}

// Create inserts a completed discovery response.
func (s *DiscoveryStore) Create(d *models.DiscoveryResponse) (*models.DiscoveryResponse, error) {
	lists := make([][]byte, 0, 7)
	for _, src := range [][]string{
		d.StyleDirections, d.StyleReasons, d.InspirationURLs, d.AvoidFeatures,
		d.Challenges, d.OtherFrustrations, d.PagesNeeded,
	} {
		b, err := jsonList(src)
		if err != nil {
			return nil, fmt.Errorf("marshal discovery answers: %w", err)
		}
		lists = append(lists, b)
	}
	mustHave, err := jsonList(d.MustHaveFeatures)
	if err != nil {
		return nil, fmt.Errorf("marshal discovery answers: %w", err)
	}
	goals, err := jsonList(d.WebsiteGoals)
	if err != nil {
		return nil, fmt.Errorf("marshal discovery answers: %w", err)
	}

	var id uuid.UUID
	err = s.db.QueryRow(`
		INSERT INTO discovery_responses (
			lead_id, style_directions, style_reasons, inspiration_urls, avoid_features,
			dealbreakers, challenges, other_frustrations, problem_impact,
			pages_needed, other_pages, must_have_features, other_features,
			service_count, services_list, website_goals, wants_booking, has_booking,
			additional_notes, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`,
		d.LeadID, lists[0], lists[1], lists[2], lists[3],
		d.Dealbreakers, lists[4], lists[5], d.ProblemImpact,
		lists[6], d.OtherPages, mustHave, d.OtherFeatures,
		d.ServiceCount, d.ServicesList, goals, d.WantsBooking, d.HasBooking,
		d.AdditionalNotes, d.CompletedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create discovery response: %w", err)
	}
	return s.FindByID(id)
}

// FindByID retrieves a discovery response by UUID. Returns nil if not found.
func (s *DiscoveryStore) FindByID(id uuid.UUID) (*models.DiscoveryResponse, error) {
	row := s.db.QueryRow(`
		SELECT id, lead_id, style_directions, style_reasons, inspiration_urls, avoid_features,
			dealbreakers, challenges, other_frustrations, problem_impact,
			pages_needed, other_pages, must_have_features, other_features,
			service_count, services_list, website_goals, wants_booking, has_booking,
			additional_notes, completed_at, created_at
		FROM discovery_responses WHERE id = $1
	`, id)
	d, err := scanDiscovery(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find discovery response: %w", err)
	}
	return d, nil
}

// FindByLead returns the most recent discovery response for a lead, or nil
// if they have not completed the questionnaire.
func (s *DiscoveryStore) FindByLead(leadID uuid.UUID) (*models.DiscoveryResponse, error) {
	row := s.db.QueryRow(`
		SELECT id, lead_id, style_directions, style_reasons, inspiration_urls, avoid_features,
			dealbreakers, challenges, other_frustrations, problem_impact,
			pages_needed, other_pages, must_have_features, other_features,
			service_count, services_list, website_goals, wants_booking, has_booking,
			additional_notes, completed_at, created_at
		FROM discovery_responses WHERE lead_id = $1
		ORDER BY completed_at DESC LIMIT 1
	`, leadID)
	d, err := scanDiscovery(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find discovery by lead: %w", err)
	}
	return d, nil
}

// LinkLead attaches an anonymous discovery response to a lead after the
// prospect identifies themselves.
func (s *DiscoveryStore) LinkLead(id, leadID uuid.UUID) error {
	result, err := s.db.Exec(`
		UPDATE discovery_responses SET lead_id = $1 WHERE id = $2
	`, leadID, id)
	if err != nil {
		return fmt.Errorf("link discovery to lead: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("discovery response %s not found", id)
	}
	return nil
}

func scanDiscovery(row interface{ Scan(...any) error }) (*models.DiscoveryResponse, error) {
	d := &models.DiscoveryResponse{}
	var raw [9][]byte
	err := row.Scan(
		&d.ID, &d.LeadID, &raw[0], &raw[1], &raw[2], &raw[3],
		&d.Dealbreakers, &raw[4], &raw[5], &d.ProblemImpact,
		&raw[6], &d.OtherPages, &raw[7], &d.OtherFeatures,
		&d.ServiceCount, &d.ServicesList, &raw[8], &d.WantsBooking, &d.HasBooking,
		&d.AdditionalNotes, &d.CompletedAt, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	targets := []*[]string{
		&d.StyleDirections, &d.StyleReasons, &d.InspirationURLs, &d.AvoidFeatures,
		&d.Challenges, &d.OtherFrustrations, &d.PagesNeeded, &d.MustHaveFeatures,
		&d.WebsiteGoals,
	}
	for i, b := range raw {
		if len(b) == 0 {
			continue
		}
		if err := json.Unmarshal(b, targets[i]); err != nil {
			return nil, fmt.Errorf("unmarshal discovery answers: %w", err)
		}
	}
	return d, nil
}
