// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package guide

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// MongoRepository implements [Repository] against the guides collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates the MongoDB-backed guide repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// FindByEmail returns the profile with the given natural key.
func (repository *MongoRepository) FindByEmail(ctx context.Context, email string) (*Guide, error) {
	var guide Guide
	err := repository.collection.FindOne(ctx, bson.M{"email": email}).Decode(&guide)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Guide")
		}
		return nil, fmt.Errorf("mongo_guide_repo_find_email_failed: %w", err)
	}

	return &guide, nil
}

// FindByID returns the profile with the given id.
func (repository *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Guide, error) {
	var guide Guide
	err := repository.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&guide)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Guide")
		}
		return nil, fmt.Errorf("mongo_guide_repo_find_id_failed: %w", err)
	}

	return &guide, nil
}

// Insert stores a new profile and returns its assigned id.
func (repository *MongoRepository) Insert(ctx context.Context, guide *Guide) (interface{}, error) {
	result, err := repository.collection.InsertOne(ctx, guide)
	if err != nil {
		return nil, fmt.Errorf("mongo_guide_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// List returns one page of profiles in natural order.
func (repository *MongoRepository) List(ctx context.Context, page pagination.Params) ([]Guide, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{},
		options.Find().SetSkip(page.Skip()).SetLimit(page.Limit()))
	if err != nil {
		return nil, fmt.Errorf("mongo_guide_repo_list_failed: %w", err)
	}
	defer cursor.Close(ctx)

	guides := []Guide{}
	if err := cursor.All(ctx, &guides); err != nil {
		return nil, fmt.Errorf("mongo_guide_repo_list_decode_failed: %w", err)
	}

	return guides, nil
}

// Count returns the exact number of profiles.
func (repository *MongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := repository.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongo_guide_repo_count_failed: %w", err)
	}

	return count, nil
}
