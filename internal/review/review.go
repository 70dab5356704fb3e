// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package review implements guide reviews. Reviews are append-only; there
// is no edit or delete surface.
package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a stored guide review document.
//
// GuideID is the guide's document id carried as its hex string, exactly as
// the frontend submits it; the reviews collection never joins back to the
// guides collection.
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserName    string             `bson:"userName" json:"userName"`
	GuideID     string             `bson:"guideId" json:"guideId"`
	UserRating  float64            `bson:"userRating" json:"userRating"`
	UserComment string             `bson:"userComment" json:"userComment"`
	UserPhoto   string             `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	Timestamp   int64              `bson:"timestamp" json:"timestamp"`
}

// Repository is the storage contract for reviews.
type Repository interface {
	Insert(ctx context.Context, review *Review) (interface{}, error)

	// List returns reviews, optionally narrowed to one guide. An empty
	// guideID means all reviews.
	List(ctx context.Context, guideID string) ([]Review, error)
}
