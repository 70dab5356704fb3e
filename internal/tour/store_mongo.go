// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package tour

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
)

// MongoRepository implements [Repository] against the packages collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates the MongoDB-backed package repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// Insert stores a new package document.
func (repository *MongoRepository) Insert(ctx context.Context, pkg *Package) (interface{}, error) {
	if pkg.CreatedAt.IsZero() {
		pkg.CreatedAt = time.Now()
	}

	result, err := repository.collection.InsertOne(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("mongo_package_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// FindByID retrieves a package document by id.
func (repository *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Package, error) {
	pkg := &Package{}
	err := repository.collection.FindOne(ctx, bson.M{"_id": id}).Decode(pkg)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Package")
		}
		return nil, fmt.Errorf("mongo_package_repo_find_failed: %w", err)
	}

	return pkg, nil
}

// List returns one page of packages matching the filter.
func (repository *MongoRepository) List(ctx context.Context, filter ListFilter) ([]Package, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["tourType"] = filter.Type
	}

	findOptions := options.Find().
		SetSkip(filter.Page.Skip()).
		SetLimit(filter.Page.Limit())

	cursor, err := repository.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo_package_repo_list_failed: %w", err)
	}
	defer cursor.Close(ctx)

	packages := []Package{}
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("mongo_package_repo_list_decode_failed: %w", err)
	}

	return packages, nil
}

// SetWishlistFlag writes the wishlist flag of the package with the given id.
func (repository *MongoRepository) SetWishlistFlag(ctx context.Context, id primitive.ObjectID, flagged bool) (*mongostore.UpdateSummary, error) {
	result, err := repository.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"wishlist": flagged}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo_package_repo_wishlist_flag_failed: %w", err)
	}

	return mongostore.NewUpdateSummary(result), nil
}

// DistinctTypes returns the distinct tourType values across the collection.
func (repository *MongoRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	raw, err := repository.collection.Distinct(ctx, "tourType", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo_package_repo_distinct_types_failed: %w", err)
	}

	types := make([]string, 0, len(raw))
	for _, value := range raw {
		if s, ok := value.(string); ok && s != "" {
			types = append(types, s)
		}
	}

	return types, nil
}

// CountEstimated returns the whole-collection cardinality from metadata.
func (repository *MongoRepository) CountEstimated(ctx context.Context) (int64, error) {
	count, err := repository.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("mongo_package_repo_count_failed: %w", err)
	}

	return count, nil
}
