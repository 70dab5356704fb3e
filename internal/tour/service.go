// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package tour

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	"github.com/shadowtrails/shadow/internal/platform/ctxutil"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
	"github.com/shadowtrails/shadow/pkg/slug"
)

// Service implements catalogue use cases.
type Service struct {
	repository Repository
	typeCache  TypeCache
}

// NewService constructs a new [Service].
func NewService(repository Repository, typeCache TypeCache) *Service {
	return &Service{repository: repository, typeCache: typeCache}
}

// CreateInput holds the data required to publish a tour package.
type CreateInput struct {
	Title       string
	TourType    string
	Price       float64
	Duration    string
	Photos      []string
	Description string
}

// Create validates and persists a new tour package.
//
// The URL slug is derived from the title; collisions are tolerated because
// packages are addressed by document id, never by slug.
func (service *Service) Create(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	v := &validate.Validator{}
	err := v.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("tourType", input.TourType).
		Positive("price", input.Price).
		Err()
	if err != nil {
		return nil, err
	}

	pkg := &Package{
		Title:       input.Title,
		Slug:        slug.From(input.Title),
		TourType:    input.TourType,
		Price:       input.Price,
		Duration:    input.Duration,
		Photos:      input.Photos,
		Description: input.Description,
	}

	insertedID, err := service.repository.Insert(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("tour_service_create_failed: %w", err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}

// Get fetches a single package by id.
func (service *Service) Get(ctx context.Context, id primitive.ObjectID) (*Package, error) {
	return service.repository.FindByID(ctx, id)
}

// List returns one page of packages matching the filter.
func (service *Service) List(ctx context.Context, filter ListFilter) ([]Package, error) {
	packages, err := service.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("tour_service_list_failed: %w", err)
	}
	return packages, nil
}

// SetWishlistFlag writes the per-package wishlist flag.
//
// This flag lives on the package document itself and is mutated
// independently of wishlist entries — the two are intentionally not
// reconciled here.
func (service *Service) SetWishlistFlag(ctx context.Context, id primitive.ObjectID, flagged bool) (*mongostore.UpdateSummary, error) {
	summary, err := service.repository.SetWishlistFlag(ctx, id, flagged)
	if err != nil {
		return nil, fmt.Errorf("tour_service_wishlist_flag_failed: %w", err)
	}
	return summary, nil
}

// ListTypes returns the tour-type reference list, read through the cache.
//
// A cache failure never fails the request: the list falls back to a
// distinct query against the store.
func (service *Service) ListTypes(ctx context.Context) ([]string, error) {
	logger := ctxutil.GetLogger(ctx)

	// ── 1. Cache Probe ────────────────────────────────────────────────────
	types, err := service.typeCache.Get(ctx)
	if err == nil {
		return types, nil
	}
	if !apperr.IsNotFound(err) {
		logger.Warn("tour_type_cache_read_failed", slog.Any("error", err))
	}

	// ── 2. Store Fallback ─────────────────────────────────────────────────
	types, err = service.repository.DistinctTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("tour_service_list_types_failed: %w", err)
	}

	// ── 3. Cache Fill (best effort) ───────────────────────────────────────
	if err := service.typeCache.Set(ctx, types); err != nil {
		logger.Warn("tour_type_cache_write_failed", slog.Any("error", err))
	}

	return types, nil
}

// Count returns the package count.
//
// Estimated whole-collection cardinality; ignores the type filter. Known
// production behavior kept for client compatibility.
func (service *Service) Count(ctx context.Context) (int64, error) {
	return service.repository.CountEstimated(ctx)
}
