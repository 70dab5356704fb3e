// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package content

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements [Repository] against one post collection.
// Construct it once for stories and once for blogs.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates a MongoDB-backed post repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// Insert stores a new post.
func (repository *MongoRepository) Insert(ctx context.Context, post *Post) (interface{}, error) {
	result, err := repository.collection.InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("mongo_content_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// List returns every post in natural order.
func (repository *MongoRepository) List(ctx context.Context) ([]Post, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo_content_repo_list_failed: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("mongo_content_repo_list_decode_failed: %w", err)
	}

	return posts, nil
}
