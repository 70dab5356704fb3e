// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// MongoRepository implements [Repository] against the booking collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates the MongoDB-backed booking repository.
func NewRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// Insert stores a new booking.
func (repository *MongoRepository) Insert(ctx context.Context, booking *Booking) (interface{}, error) {
	result, err := repository.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("mongo_booking_repo_insert_failed: %w", err)
	}

	return result.InsertedID, nil
}

// ListByEmail returns every booking owned by the traveler, unpaginated.
func (repository *MongoRepository) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("mongo_booking_repo_list_email_failed: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("mongo_booking_repo_list_email_decode_failed: %w", err)
	}

	return bookings, nil
}

// ListByGuideName returns one page of bookings assigned to the guide.
func (repository *MongoRepository) ListByGuideName(ctx context.Context, guideName string, page pagination.Params) ([]Booking, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{"guideName": guideName},
		options.Find().SetSkip(page.Skip()).SetLimit(page.Limit()))
	if err != nil {
		return nil, fmt.Errorf("mongo_booking_repo_list_guide_failed: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("mongo_booking_repo_list_guide_decode_failed: %w", err)
	}

	return bookings, nil
}

// SetStatus writes the status field on the given id, upserting when the id
// matches nothing. Upsert-on-write is how production behaved; a status
// PATCH against an unknown id creates a status-only stub document.
func (repository *MongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status Status) (*mongostore.UpdateSummary, error) {
	result, err := repository.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("mongo_booking_repo_set_status_failed: %w", err)
	}

	return mongostore.NewUpdateSummary(result), nil
}

// DeleteByID removes at most one booking. A zero count is success.
func (repository *MongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongostore.DeleteSummary, error) {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("mongo_booking_repo_delete_failed: %w", err)
	}

	return mongostore.NewDeleteSummary(result), nil
}

// CountByEmail returns the exact number of bookings owned by the traveler.
func (repository *MongoRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	count, err := repository.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("mongo_booking_repo_count_failed: %w", err)
	}

	return count, nil
}
