// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// CustomSnap API. Routes are organized into three surfaces: public
// intake, the customer portal, and the staff admin area.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"customsnap/internal/handlers"
	"customsnap/internal/middleware"
	"customsnap/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(
	sessionStore *session.Store,
	rateLimiter *middleware.RateLimiter,
	auth *handlers.Auth,
	leads *handlers.Leads,
	discovery *handlers.Discovery,
	projects *handlers.Projects,
	catalogHandlers *handlers.Catalog,
	portal *handlers.Portal,
	users *handlers.Users,
	assets *handlers.Assets,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public intake — rate limited, no session required.
		r.Group(func(r chi.Router) {
			r.Use(rateLimiter.Middleware)
			r.Post("/leads", leads.Create)
			r.Post("/discovery", discovery.Submit)
		})

		// Customer portal. Login is public (and rate limited); the rest
		// needs a lead-scoped session.
		r.Route("/portal", func(r chi.Router) {
			r.With(rateLimiter.Middleware).Post("/auth", portal.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePortal)
				r.Get("/project", portal.Project)
				r.Post("/logout", portal.Logout)
			})
		})

		// Staff authentication.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})

		// Staff admin area — authenticated, 2FA-verified, CSRF-protected.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireStaff)
			r.Use(middleware.Require2FA)
			r.Use(middleware.CSRF)

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", leads.List)
				r.Get("/{id}", leads.Get)
				r.Patch("/{id}", leads.Update)
				r.Get("/{id}/discovery", discovery.ForLead)
			})

			r.Route("/discovery", func(r chi.Router) {
				r.Get("/{id}", discovery.Get)
				r.Post("/{id}/link", discovery.Link)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", projects.Create)
				r.Get("/", projects.List)
				r.Get("/{id}", projects.Get)
				r.Put("/{id}/progress", projects.UpdateProgress)
				r.Put("/{id}/preview", projects.SetPreview)

				r.Post("/{id}/assets", assets.Upload)
				r.Get("/{id}/assets", assets.List)
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/{assetID}/download", assets.Download)
				r.Delete("/{assetID}", assets.Delete)
			})

			r.Route("/catalog", func(r chi.Router) {
				r.Post("/builds", catalogHandlers.Register)
				r.Get("/builds", catalogHandlers.Builds)
				r.Post("/check", catalogHandlers.Check)
				r.Post("/builds/{id}/finalize", catalogHandlers.Finalize)
				r.Post("/builds/{id}/live", catalogHandlers.Live)
				r.Get("/stats", catalogHandlers.Stats)
				r.Get("/summary", catalogHandlers.Summary)
				r.Get("/recommend", catalogHandlers.Recommend)
				r.Get("/universe", catalogHandlers.Universe)
				r.Get("/templates", catalogHandlers.Templates)
			})

			// User management — admin only.
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", users.List)
				r.Post("/", users.Create)
				r.Post("/{id}/reset-2fa", users.ResetTOTP)
				r.Delete("/{id}", users.Delete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
