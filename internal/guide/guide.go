// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package guide implements tour guide profiles.
package guide

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Guide is a stored guide profile document.
//
// Email is the natural key; like users, uniqueness is enforced by a
// check-then-insert at the application layer only.
type Guide struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Experience string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Languages  []string           `bson:"languages,omitempty" json:"languages,omitempty"`
	Bio        string             `bson:"bio,omitempty" json:"bio,omitempty"`
}

// Repository is the storage contract for guide profiles.
type Repository interface {
	// FindByEmail returns the profile with the given natural key, or
	// apperr.NotFound.
	FindByEmail(ctx context.Context, email string) (*Guide, error)

	// FindByID returns the profile with the given id, or apperr.NotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Guide, error)

	// Insert stores a new profile and returns its assigned id.
	Insert(ctx context.Context, guide *Guide) (interface{}, error)

	// List returns one page of profiles.
	List(ctx context.Context, page pagination.Params) ([]Guide, error)

	// Count returns the exact number of profiles.
	Count(ctx context.Context) (int64, error)
}
