// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"customsnap/internal/cache"
	"customsnap/internal/catalog"
	"customsnap/internal/database"
	"customsnap/internal/middleware"
	"customsnap/internal/models"
	"customsnap/internal/session"
	"customsnap/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "customsnap")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "customsnap")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "report:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB             *sql.DB
	Valkey         *redis.Client
	Sessions       *session.Store
	UserStore      *store.UserStore
	LeadStore      *store.LeadStore
	DiscoveryStore *store.DiscoveryStore
	ProjectStore   *store.ProjectStore
	AssetStore     *store.AssetStore
	Manager        *catalog.Manager
	Reports        *cache.ReportCache
	Auth           *Auth
	Leads          *Leads
	Discovery      *Discovery
	Projects       *Projects
	Catalog        *Catalog
	Portal         *Portal
	Users          *Users
}

// newTestEnv creates a complete test environment with all handler
// dependencies. The catalog document in the database is snapshotted and
// restored so catalog tests do not leak builds into the shared row.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	snapshotCatalog(t, db)

	sessions := session.NewStore(vk, false)
	userStore := store.NewUserStore(db)
	leadStore := store.NewLeadStore(db)
	discoveryStore := store.NewDiscoveryStore(db)
	projectStore := store.NewProjectStore(db)
	assetStore := store.NewAssetStore(db)
	catalogStore := store.NewCatalogStore(db)

	manager, err := catalog.NewManager(context.Background(), catalogStore)
	if err != nil {
		t.Fatalf("catalog.NewManager: %v", err)
	}
	reports := cache.NewReportCache(vk, 1*time.Minute)

	return &testEnv{
		DB:             db,
		Valkey:         vk,
		Sessions:       sessions,
		UserStore:      userStore,
		LeadStore:      leadStore,
		DiscoveryStore: discoveryStore,
		ProjectStore:   projectStore,
		AssetStore:     assetStore,
		Manager:        manager,
		Reports:        reports,
		Auth:           NewAuth(sessions, userStore),
		Leads:          NewLeads(leadStore, projectStore),
		Discovery:      NewDiscovery(discoveryStore, leadStore, projectStore),
		Projects:       NewProjects(projectStore, leadStore, discoveryStore, "https://preview.customsnap.dev"),
		Catalog:        NewCatalog(manager, projectStore, reports),
		Portal:         NewPortal(sessions, leadStore, projectStore, assetStore),
		Users:          NewUsers(userStore),
	}
}

// snapshotCatalog saves the catalog row and restores it on cleanup.
func snapshotCatalog(t *testing.T, db *sql.DB) {
	t.Helper()

	var saved []byte
	err := db.QueryRow(`SELECT document FROM catalog_data WHERE id = 1`).Scan(&saved)
	if err != nil && err != sql.ErrNoRows {
		t.Fatalf("catalog snapshot: %v", err)
	}

	t.Cleanup(func() {
		if saved == nil {
			db.Exec(`DELETE FROM catalog_data WHERE id = 1`)
			return
		}
		db.Exec(`
			INSERT INTO catalog_data (id, document, updated_at) VALUES (1, $1, NOW())
			ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()
		`, saved)
	})
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// staffSession creates a staff session.Data for testing.
func staffSession(userID uuid.UUID, role string) *session.Data {
	return &session.Data{
		Kind:        session.KindStaff,
		UserID:      userID,
		Email:       "staff@handler-test.local",
		DisplayName: "Test Staff",
		Role:        role,
		TwoFADone:   true,
	}
}

// portalSession creates a lead-scoped portal session.Data for testing.
func portalSession(leadID uuid.UUID, email string) *session.Data {
	return &session.Data{
		Kind:        session.KindPortal,
		Email:       email,
		DisplayName: "Test Client",
		LeadID:      &leadID,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// makeLead inserts a lead for a test and removes it (with its projects
// and discovery responses) on cleanup.
func makeLead(t *testing.T, env *testEnv, email string) *models.Lead {
	t.Helper()

	lead, err := env.LeadStore.Create("Handler", "Test", email, "+15550100", nil, models.LeadSourceLandingPage)
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}
	t.Cleanup(func() { cleanLead(t, env.DB, email) })
	return lead
}

// cleanLead removes a lead and every row hanging off it.
func cleanLead(t *testing.T, db *sql.DB, email string) {
	t.Helper()
	db.Exec(`DELETE FROM activity_log WHERE project_id IN
		(SELECT p.id FROM projects p JOIN leads l ON l.id = p.lead_id WHERE l.email = $1)`, email)
	db.Exec(`DELETE FROM assets WHERE project_id IN
		(SELECT p.id FROM projects p JOIN leads l ON l.id = p.lead_id WHERE l.email = $1)`, email)
	db.Exec(`DELETE FROM projects WHERE lead_id IN (SELECT id FROM leads WHERE email = $1)`, email)
	db.Exec(`DELETE FROM discovery_responses WHERE lead_id IN (SELECT id FROM leads WHERE email = $1)`, email)
	db.Exec(`DELETE FROM leads WHERE email = $1`, email)
}

// decodeBody unmarshals a recorded JSON response body.
func decodeBody(t *testing.T, body []byte, dst any) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, body)
	}
}

// sampleCharacteristics returns a valid wire-form fingerprint.
func sampleCharacteristics() characteristicsPayload {
	return characteristicsPayload{
		Layout:      string(catalog.LayoutSplitHero),
		ColorScheme: string(catalog.SchemeLightGradient),
		HeroStyle:   string(catalog.HeroTextLeftImageRight),
		Navigation:  string(catalog.NavStickyMinimal),
		PrimaryCTA:  string(catalog.CTASolidButton),
		Sections:    []string{string(catalog.SectionHero), string(catalog.SectionContactForm)},
	}
}
