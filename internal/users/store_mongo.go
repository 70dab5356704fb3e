// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// MongoDB implementation of the user storage layer.
//
// # Error Mapping
//
// Storage-specific errors (mongo.ErrNoDocuments) are mapped to
// domain-friendly [apperr.AppError] types so nothing above this layer ever
// inspects driver sentinels.
package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
)

// MongoRepository implements [Repository] against the Users collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates the MongoDB-backed user repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// FindByEmail retrieves a user document by its natural key.
func (repository *MongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := repository.collection.FindOne(ctx, bson.M{"email": email}).Decode(user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("mongo_user_repo_find_by_email_failed: %w", err)
	}

	return user, nil
}

// Insert stores a new user document.
func (repository *MongoRepository) Insert(ctx context.Context, user *User) (interface{}, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	result, err := repository.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("mongo_user_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// List returns one page of users matching the filter.
//
// Search is applied as a case-insensitive substring regex over name OR
// email; the pattern is quoted so user input cannot smuggle regex syntax.
func (repository *MongoRepository) List(ctx context.Context, filter ListFilter) ([]User, error) {
	query := bson.M{}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		}
	}

	if filter.Role != "" {
		query["role"] = filter.Role
	}

	findOptions := options.Find().
		SetSkip(filter.Page.Skip()).
		SetLimit(filter.Page.Limit())

	cursor, err := repository.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo_user_repo_list_failed: %w", err)
	}
	defer cursor.Close(ctx)

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo_user_repo_list_decode_failed: %w", err)
	}

	return users, nil
}

// UpdateByEmail merges the allow-listed update onto the matching document.
func (repository *MongoRepository) UpdateByEmail(ctx context.Context, email string, update Update) (*mongostore.UpdateSummary, error) {
	set := bson.M{}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	result, err := repository.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, fmt.Errorf("mongo_user_repo_update_failed: %w", err)
	}

	return mongostore.NewUpdateSummary(result), nil
}

// SetStatusByEmail writes only the status field of the matching document.
func (repository *MongoRepository) SetStatusByEmail(ctx context.Context, email string, status Status) (*mongostore.UpdateSummary, error) {
	result, err := repository.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return nil, fmt.Errorf("mongo_user_repo_set_status_failed: %w", err)
	}

	return mongostore.NewUpdateSummary(result), nil
}

// UpsertByEmail writes the full document, inserting if absent.
func (repository *MongoRepository) UpsertByEmail(ctx context.Context, email string, user *User) (*mongostore.UpdateSummary, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	set := bson.M{
		"email":     user.Email,
		"name":      user.Name,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	}
	if user.Photo != "" {
		set["photo"] = user.Photo
	}
	if user.Status != "" {
		set["status"] = user.Status
	}

	result, err := repository.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo_user_repo_upsert_failed: %w", err)
	}

	return mongostore.NewUpdateSummary(result), nil
}

// CountEstimated returns the whole-collection cardinality from metadata.
func (repository *MongoRepository) CountEstimated(ctx context.Context) (int64, error) {
	count, err := repository.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("mongo_user_repo_count_failed: %w", err)
	}

	return count, nil
}
