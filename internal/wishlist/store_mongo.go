// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package wishlist

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
)

// MongoRepository implements [Repository] against the wishlist collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates the MongoDB-backed wishlist repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// Insert stores a new wishlist entry.
func (repository *MongoRepository) Insert(ctx context.Context, entry *Entry) (interface{}, error) {
	result, err := repository.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("mongo_wishlist_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// ListByEmail returns every wishlist entry owned by the given email.
func (repository *MongoRepository) ListByEmail(ctx context.Context, email string) ([]Entry, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("mongo_wishlist_repo_list_failed: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("mongo_wishlist_repo_list_decode_failed: %w", err)
	}

	return entries, nil
}

// DeleteByID removes at most one entry. A zero count is success.
func (repository *MongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongostore.DeleteSummary, error) {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("mongo_wishlist_repo_delete_failed: %w", err)
	}

	return mongostore.NewDeleteSummary(result), nil
}
