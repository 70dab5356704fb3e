// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package review

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements [Repository] against the reviews collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates the MongoDB-backed review repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// Insert stores a new review.
func (repository *MongoRepository) Insert(ctx context.Context, review *Review) (interface{}, error) {
	result, err := repository.collection.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("mongo_review_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// List returns reviews in natural order, optionally narrowed to one guide.
func (repository *MongoRepository) List(ctx context.Context, guideID string) ([]Review, error) {
	filter := bson.M{}
	if guideID != "" {
		filter["guideId"] = guideID
	}

	cursor, err := repository.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo_review_repo_list_failed: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("mongo_review_repo_list_decode_failed: %w", err)
	}

	return reviews, nil
}
