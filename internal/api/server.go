// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shadowtrails/shadow/internal/auth"
	"github.com/shadowtrails/shadow/internal/booking"
	"github.com/shadowtrails/shadow/internal/content"
	"github.com/shadowtrails/shadow/internal/guide"
	"github.com/shadowtrails/shadow/internal/payment"
	"github.com/shadowtrails/shadow/internal/platform/config"
	"github.com/shadowtrails/shadow/internal/platform/constants"
	"github.com/shadowtrails/shadow/internal/platform/middleware"
	"github.com/shadowtrails/shadow/internal/review"
	"github.com/shadowtrails/shadow/internal/tour"
	"github.com/shadowtrails/shadow/internal/users"
	"github.com/shadowtrails/shadow/internal/wishlist"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth issues session tokens.
	Auth *auth.Handler

	// Users manages accounts, roles, and the guide application flow.
	Users *users.Handler

	// Tour manages the tour package catalogue.
	Tour *tour.Handler

	// Wishlist manages per-user wishlist entries.
	Wishlist *wishlist.Handler

	// Guide manages guide profiles.
	Guide *guide.Handler

	// Booking manages bookings and their status lifecycle.
	Booking *booking.Handler

	// Review manages guide reviews.
	Review *review.Handler

	// Payment creates payment intents and records confirmed payments.
	Payment *payment.Handler

	// Content manages traveler stories and blog posts.
	Content *content.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Routes are registered flat at the root rather than under a versioned
// prefix: the deployed frontend calls /jwt, /package, /booking-post and
// friends directly, and those paths are the public contract.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, roles middleware.RoleLookup, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Route-level guards; RequireAdmin implies authentication.
	requireAuth := middleware.RequireAuth
	requireAdmin := middleware.RequireAdmin(roles)

	h.Auth.Register(r)
	h.Users.Register(r, requireAdmin)
	h.Tour.Register(r, requireAuth, requireAdmin)
	h.Wishlist.Register(r)
	h.Guide.Register(r, requireAuth)
	h.Booking.Register(r, requireAuth)
	h.Review.Register(r)
	h.Payment.Register(r, requireAuth, requireAdmin)
	h.Content.Register(r)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
