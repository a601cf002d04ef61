// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"customsnap/internal/models"
)

// LeadStore handles all lead-related database operations.
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore creates a new LeadStore with the given database connection.
func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

const leadColumns = `id, first_name, last_name, email, phone, current_website, source, status, notes, created_at, updated_at`

func scanLead(row interface{ Scan(...any) error }) (*models.Lead, error) {
	l := &models.Lead{}
	err := row.Scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone,
		&l.CurrentWebsite, &l.Source, &l.Status, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a new lead with the given contact details.
func (s *LeadStore) Create(firstName, lastName, email, phone string, currentWebsite *string, source models.LeadSource) (*models.Lead, error) {
	row := s.db.QueryRow(`
		INSERT INTO leads (first_name, last_name, email, phone, current_website, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+leadColumns+`
	`, firstName, lastName, email, phone, currentWebsite, source)
	l, err := scanLead(row)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return l, nil
}

// FindByID retrieves a lead by UUID. Returns nil if not found.
func (s *LeadStore) FindByID(id uuid.UUID) (*models.Lead, error) {
	row := s.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	l, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead by id: %w", err)
	}
	return l, nil
}

// FindByEmail retrieves a lead by email address. Returns nil if not found.
func (s *LeadStore) FindByEmail(email string) (*models.Lead, error) {
	row := s.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE email = $1`, email)
	l, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead by email: %w", err)
	}
	return l, nil
}

// List returns all leads, newest first. An empty status matches everything.
func (s *LeadStore) List(status models.LeadStatus) ([]models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, *l)
	}
	return leads, rows.Err()
}

// UpdateStatus moves a lead to a new funnel status.
func (s *LeadStore) UpdateStatus(id uuid.UUID, status models.LeadStatus) error {
	res, err := s.db.Exec(`
		UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update lead status: lead %s not found", id)
	}
	return nil
}

// SetNotes replaces the free-form notes on a lead.
func (s *LeadStore) SetNotes(id uuid.UUID, notes string) error {
	_, err := s.db.Exec(`
		UPDATE leads SET notes = $1, updated_at = NOW() WHERE id = $2
	`, notes, id)
	if err != nil {
		return fmt.Errorf("set lead notes: %w", err)
	}
	return nil
}

// Delete removes a lead by ID.
func (s *LeadStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
