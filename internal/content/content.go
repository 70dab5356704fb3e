// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package content implements traveler stories and blog posts.
//
// Both share one document shape and differ only in which collection they
// land in; the package keeps one repository type bound per collection.
package content

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a stored story or blog document.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Repository is the storage contract for one post collection.
type Repository interface {
	Insert(ctx context.Context, post *Post) (interface{}, error)
	List(ctx context.Context) ([]Post, error)
}
