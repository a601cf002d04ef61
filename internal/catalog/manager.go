// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// manager.go wraps the engine for a multi-threaded host. The engine itself
// is single-writer by contract, so the Manager serializes every mutation
// behind a mutex and persists the catalog after each successful change.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Store loads and persists the catalog document. The engine never touches
// storage itself; implementations live at the application edge.
type Store interface {
	Load(ctx context.Context) (*Catalog, error)
	Save(ctx context.Context, cat *Catalog) error
}

// Manager owns the in-memory catalog on behalf of concurrent HTTP
// handlers. All access goes through the mutex — reads too, since a
// mutation may be appending to Builds at any moment.
type Manager struct {
	mu    sync.Mutex
	store Store
	cat   *Catalog
}

// NewManager loads the catalog from the store. If the store holds no
// catalog yet, a fresh one with the default universe is created and saved.
func NewManager(ctx context.Context, store Store) (*Manager, error) {
	cat, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog load: %w", err)
	}
	if cat == nil {
		cat = New()
		if err := store.Save(ctx, cat); err != nil {
			return nil, fmt.Errorf("catalog init save: %w", err)
		}
	}

	return &Manager{store: store, cat: cat}, nil
}

// save persists the catalog, stamping LastUpdated with the current date.
// Date-only granularity is deliberate: the catalog file records "when did
// this last change" for humans, not an audit trail.
func (m *Manager) save(ctx context.Context) error {
	m.cat.LastUpdated = time.Now().Format("2006-01-02")
	if err := m.store.Save(ctx, m.cat); err != nil {
		return fmt.Errorf("catalog save: %w", err)
	}
	return nil
}

// Register runs the registration workflow and persists the catalog when a
// build was appended. A rejected registration performs no write.
func (m *Manager) Register(ctx context.Context, clientName string, industry Industry, ch Characteristics, opts AddOptions) (AddResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := AddBuild(m.cat, clientName, industry, ch, opts)
	if !res.Success {
		return res, nil
	}

	if err := m.save(ctx); err != nil {
		// Roll the append back so memory and storage stay in step.
		m.cat.Builds = m.cat.Builds[:len(m.cat.Builds)-1]
		return AddResult{}, err
	}
	return res, nil
}

// Finalize transitions a build to finalized. The bool reports whether the
// build existed; unknown IDs are not an error.
func (m *Manager) Finalize(ctx context.Context, buildID, url string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !FinalizeBuild(m.cat, buildID, url) {
		return false, nil
	}
	return true, m.save(ctx)
}

// MarkLive transitions a build to live at the given URL.
func (m *Manager) MarkLive(ctx context.Context, buildID, url string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !MarkBuildLive(m.cat, buildID, url) {
		return false, nil
	}
	return true, m.save(ctx)
}

// Check runs duplicate detection for a proposed fingerprint without
// registering anything. Suggestions are returned whenever similar builds
// exist so the caller can offer alternatives up front.
func (m *Manager) Check(ch Characteristics, threshold float64) (DuplicateCheck, []Characteristics) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	check := CheckForDuplicates(ch, m.cat.Builds, threshold)

	var suggestions []Characteristics
	if len(check.SimilarBuilds) > 0 {
		suggestions = SuggestVariations(ch, m.cat.Builds, m.cat)
	}
	return check, suggestions
}

// Universe returns a snapshot of the declared characteristic universe.
func (m *Manager) Universe() Universe {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cat.Characteristics
}

// Builds returns the catalog's builds filtered by the optional industry
// and status. Empty filter values match everything.
func (m *Manager) Builds(industry Industry, status BuildStatus) []*Build {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Build
	for _, b := range m.cat.Builds {
		if industry != "" && b.Industry != industry {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Stats returns the aggregate catalog snapshot.
func (m *Manager) Stats() CatalogStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats(m.cat)
}

// Summary returns the operator-facing text digest.
func (m *Manager) Summary() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Summary(m.cat)
}

// Recommend returns industry-scoped characteristic recommendations.
func (m *Manager) Recommend(industry Industry) Recommendation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return RecommendCharacteristics(m.cat, industry)
}

// Templates returns the catalog's template registry.
func (m *Manager) Templates() map[string]Template {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]Template, len(m.cat.Templates))
	for k, v := range m.cat.Templates {
		out[k] = v
	}
	return out
}
