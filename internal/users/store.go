// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package users

import (
	"context"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// ListFilter narrows a user listing.
type ListFilter struct {
	// Search is matched case-insensitively as a substring of name OR email.
	Search string

	// Role, when set, is an exact match filter.
	Role string

	Page pagination.Params
}

// Update is the allow-listed field set an admin may merge onto a user.
//
// Nil fields are left untouched. Nothing outside this set ever reaches the
// store from a client payload.
type Update struct {
	Role   *Role
	Status *Status
}

// Repository is the storage contract for user documents.
type Repository interface {
	// FindByEmail returns the user with the given natural key, or
	// apperr.NotFound if no document matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert stores a new user document and returns its assigned id.
	Insert(ctx context.Context, user *User) (interface{}, error)

	// List returns one page of users matching the filter.
	List(ctx context.Context, filter ListFilter) ([]User, error)

	// UpdateByEmail merges the allow-listed update onto the matching document.
	UpdateByEmail(ctx context.Context, email string, update Update) (*mongostore.UpdateSummary, error)

	// SetStatusByEmail writes only the status field of the matching document.
	SetStatusByEmail(ctx context.Context, email string, status Status) (*mongostore.UpdateSummary, error)

	// UpsertByEmail writes the full document, inserting if absent.
	UpsertByEmail(ctx context.Context, email string, user *User) (*mongostore.UpdateSummary, error)

	// CountEstimated returns the whole-collection cardinality from collection
	// metadata. It ignores any filter; see the service-level count for the
	// caveat this carries.
	CountEstimated(ctx context.Context) (int64, error)
}
