// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package wishlist implements per-user wishlist entries.
//
// Entries are stored independently of the wishlist flag on package
// documents (see the tour package); production never reconciled the two.
package wishlist

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
)

// Entry is a stored wishlist entry document.
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	PackageID primitive.ObjectID `bson:"packageId" json:"packageId"`
	Title     string             `bson:"title" json:"title"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Price     float64            `bson:"price" json:"price"`
}

// Repository is the storage contract for wishlist entries.
type Repository interface {
	Insert(ctx context.Context, entry *Entry) (interface{}, error)
	ListByEmail(ctx context.Context, email string) ([]Entry, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongostore.DeleteSummary, error)
}
