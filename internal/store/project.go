// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"customsnap/internal/models"
)

// ProjectStore handles project and activity-log database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, lead_id, discovery_id, build_id, client_slug, status, progress, current_step, preview_url, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID, &p.LeadID, &p.DiscoveryID, &p.BuildID, &p.ClientSlug,
		&p.Status, &p.Progress, &p.CurrentStep, &p.PreviewURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create opens a new project for a lead, starting in the intake phase.
func (s *ProjectStore) Create(leadID uuid.UUID, discoveryID *uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`
		INSERT INTO projects (lead_id, discovery_id, status, progress, current_step)
		VALUES ($1, $2, 'intake', 0, 'Reviewing your discovery answers')
		RETURNING `+projectColumns+`
	`, leadID, discoveryID)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// FindByID retrieves a project by UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// FindByLead returns the most recent project owned by a lead, or nil.
// This is what the customer portal shows after login.
func (s *ProjectStore) FindByLead(leadID uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`
		SELECT `+projectColumns+` FROM projects
		WHERE lead_id = $1 ORDER BY created_at DESC LIMIT 1
	`, leadID)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by lead: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a project by its client slug. Returns nil if not found.
func (s *ProjectStore) FindBySlug(slug string) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE client_slug = $1`, slug)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}

// List returns all projects joined with their leads, newest first. An
// empty status matches everything.
func (s *ProjectStore) List(status models.ProjectStatus) ([]models.Project, error) {
	query := `
		SELECT p.id, p.lead_id, p.discovery_id, p.build_id, p.client_slug, p.status,
			p.progress, p.current_step, p.preview_url, p.created_at, p.updated_at,
			l.first_name, l.last_name, l.email, l.phone
		FROM projects p
		JOIN leads l ON l.id = p.lead_id`
	args := []any{}
	if status != "" {
		query += ` WHERE p.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var l models.Lead
		if err := rows.Scan(
			&p.ID, &p.LeadID, &p.DiscoveryID, &p.BuildID, &p.ClientSlug, &p.Status,
			&p.Progress, &p.CurrentStep, &p.PreviewURL, &p.CreatedAt, &p.UpdatedAt,
			&l.FirstName, &l.LastName, &l.Email, &l.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		l.ID = p.LeadID
		p.Lead = &l
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProgress sets the delivery status, progress percentage, and the
// step line shown in the portal.
func (s *ProjectStore) UpdateProgress(id uuid.UUID, status models.ProjectStatus, progress int, currentStep string) error {
	res, err := s.db.Exec(`
		UPDATE projects SET status = $1, progress = $2, current_step = $3, updated_at = NOW()
		WHERE id = $4
	`, status, progress, currentStep, id)
	if err != nil {
		return fmt.Errorf("update project progress: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update project progress: project %s not found", id)
	}
	return nil
}

// SetBuild links a project to its registered catalog build.
func (s *ProjectStore) SetBuild(id uuid.UUID, buildID string) error {
	_, err := s.db.Exec(`
		UPDATE projects SET build_id = $1, updated_at = NOW() WHERE id = $2
	`, buildID, id)
	if err != nil {
		return fmt.Errorf("set project build: %w", err)
	}
	return nil
}

// SetDiscovery attaches a discovery response to a project created before
// the questionnaire came in.
func (s *ProjectStore) SetDiscovery(id, discoveryID uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE projects SET discovery_id = $1, updated_at = NOW() WHERE id = $2
	`, discoveryID, id)
	if err != nil {
		return fmt.Errorf("set project discovery: %w", err)
	}
	return nil
}

// SetSlug assigns the project's client slug, used in portal and preview URLs.
func (s *ProjectStore) SetSlug(id uuid.UUID, slug string) error {
	_, err := s.db.Exec(`
		UPDATE projects SET client_slug = $1, updated_at = NOW() WHERE id = $2
	`, slug, id)
	if err != nil {
		return fmt.Errorf("set project slug: %w", err)
	}
	return nil
}

// SetPreviewURL publishes the staging link shown to the client.
func (s *ProjectStore) SetPreviewURL(id uuid.UUID, url string) error {
	_, err := s.db.Exec(`
		UPDATE projects SET preview_url = $1, updated_at = NOW() WHERE id = $2
	`, url, id)
	if err != nil {
		return fmt.Errorf("set project preview url: %w", err)
	}
	return nil
}

// LogActivity appends an entry to the project's activity timeline.
func (s *ProjectStore) LogActivity(projectID uuid.UUID, action, description string) error {
	_, err := s.db.Exec(`
		INSERT INTO activity_log (project_id, action, description)
		VALUES ($1, $2, $3)
	`, projectID, action, description)
	if err != nil {
		return fmt.Errorf("log activity: %w", err)
	}
	return nil
}

// Activities returns a project's activity log, newest first.
func (s *ProjectStore) Activities(projectID uuid.UUID) ([]models.Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, action, description, created_at
		FROM activity_log WHERE project_id = $1
		ORDER BY created_at DESC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var entries []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Action, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}
