// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package tour implements the tour package catalogue: package CRUD, the
// per-package wishlist flag, and the tour-type reference list.
package tour

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a stored tour package document.
//
// The Wishlisted flag is toggled directly on the package document,
// independently of the wishlist entry collection. The two are never
// reconciled; see the wishlist package for the entry side.
type Package struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	TourType    string             `bson:"tourType" json:"tourType"`
	Price       float64            `bson:"price" json:"price"`
	Duration    string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Photos      []string           `bson:"photos,omitempty" json:"photos,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Wishlisted  bool               `bson:"wishlist" json:"wishlist"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
