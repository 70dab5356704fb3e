// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Command api is the entry point for the Shadow Trails HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env honored in dev).
//  3. Connect to MongoDB.
//  4. Connect to Redis.
//  5. Run index migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shadowtrails/shadow/internal/api"
	"github.com/shadowtrails/shadow/internal/auth"
	"github.com/shadowtrails/shadow/internal/booking"
	"github.com/shadowtrails/shadow/internal/content"
	"github.com/shadowtrails/shadow/internal/guide"
	"github.com/shadowtrails/shadow/internal/payment"
	"github.com/shadowtrails/shadow/internal/platform/config"
	"github.com/shadowtrails/shadow/internal/platform/constants"
	"github.com/shadowtrails/shadow/internal/platform/migration"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	redisstore "github.com/shadowtrails/shadow/internal/platform/redis"
	"github.com/shadowtrails/shadow/internal/platform/sec"
	"github.com/shadowtrails/shadow/internal/review"
	"github.com/shadowtrails/shadow/internal/tour"
	"github.com/shadowtrails/shadow/internal/users"
	"github.com/shadowtrails/shadow/internal/wishlist"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Shadow Trails] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env is a development convenience; its absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Info("dotenv_loaded")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. MongoDB ────────────────────────────────────────────────────────
	client, err := mongostore.NewClient(startupCtx, cfg.MongoURL, log)
	must(log, err, "connect to mongodb")
	defer func() {
		log.Info("closing mongo client")
		mongostore.Disconnect(context.Background(), client, log)
	}()

	database := client.Database(cfg.MongoDatabase)

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.MongoURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.AccessTokenSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return mongostore.Ping(context.Background(), client)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userService := users.NewService(users.NewRepository(database.Collection(constants.CollectionUsers)))
	tourService := tour.NewService(
		tour.NewRepository(database.Collection(constants.CollectionPackages)),
		tour.NewTypeCache(rdb),
	)
	wishlistService := wishlist.NewService(wishlist.NewRepository(database.Collection(constants.CollectionWishlist)))
	guideService := guide.NewService(guide.NewRepository(database.Collection(constants.CollectionGuides)))
	bookingService := booking.NewService(booking.NewRepository(database.Collection(constants.CollectionBookings)))
	reviewService := review.NewService(review.NewRepository(database.Collection(constants.CollectionReviews)))
	paymentService := payment.NewService(
		payment.NewRepository(database.Collection(constants.CollectionPayments)),
		payment.NewStripeGateway(cfg.PaymentAPIURL, cfg.PaymentSecretKey),
	)
	contentService := content.NewService(
		content.NewRepository(database.Collection(constants.CollectionStories)),
		content.NewRepository(database.Collection(constants.CollectionBlogs)),
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(jwtSvc),
		Users:     users.NewHandler(userService),
		Tour:      tour.NewHandler(tourService),
		Wishlist:  wishlist.NewHandler(wishlistService),
		Guide:     guide.NewHandler(guideService),
		Booking:   booking.NewHandler(bookingService),
		Review:    review.NewHandler(reviewService),
		Payment:   payment.NewHandler(paymentService),
		Content:   content.NewHandler(contentService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, userService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
