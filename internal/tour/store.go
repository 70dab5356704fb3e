// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package tour

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// ListFilter narrows a package listing.
type ListFilter struct {
	// Type, when set, is an exact match on tourType.
	Type string

	Page pagination.Params
}

// Repository is the storage contract for tour package documents.
type Repository interface {
	// Insert stores a new package and returns its assigned id.
	Insert(ctx context.Context, pkg *Package) (interface{}, error)

	// FindByID returns the package with the given id, or apperr.NotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Package, error)

	// List returns one page of packages matching the filter.
	List(ctx context.Context, filter ListFilter) ([]Package, error)

	// SetWishlistFlag writes the wishlist flag of the package with the given
	// id. The write upserts, matching the production toggle.
	SetWishlistFlag(ctx context.Context, id primitive.ObjectID, flagged bool) (*mongostore.UpdateSummary, error)

	// DistinctTypes returns the distinct tourType values across the collection.
	DistinctTypes(ctx context.Context) ([]string, error)

	// CountEstimated returns the whole-collection cardinality from metadata.
	CountEstimated(ctx context.Context) (int64, error)
}

// TypeCache is the volatile cache contract for the tour-type list.
type TypeCache interface {
	// Get returns the cached type list, or apperr.NotFound on a miss.
	Get(ctx context.Context) ([]string, error)

	// Set stores the type list with the standard TTL.
	Set(ctx context.Context, types []string) error
}
