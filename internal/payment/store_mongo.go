// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package payment

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shadowtrails/shadow/pkg/pagination"
)

// MongoRepository implements [Repository] against the payments collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates the MongoDB-backed payment repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// Insert stores a new payment record.
func (repository *MongoRepository) Insert(ctx context.Context, payment *Payment) (interface{}, error) {
	result, err := repository.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("mongo_payment_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// List returns one page of payment records across all users.
func (repository *MongoRepository) List(ctx context.Context, page pagination.Params) ([]Payment, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{},
		options.Find().SetSkip(page.Skip()).SetLimit(page.Limit()))
	if err != nil {
		return nil, fmt.Errorf("mongo_payment_repo_list_failed: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("mongo_payment_repo_list_decode_failed: %w", err)
	}

	return payments, nil
}

// ListByEmail returns every payment record owned by the given email.
func (repository *MongoRepository) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("mongo_payment_repo_list_email_failed: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("mongo_payment_repo_list_email_decode_failed: %w", err)
	}

	return payments, nil
}
