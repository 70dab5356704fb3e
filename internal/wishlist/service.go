// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package wishlist

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
)

// Service implements wishlist entry use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the allow-listed payload of a wishlist entry.
type CreateInput struct {
	Email     string
	PackageID primitive.ObjectID
	Title     string
	Photo     string
	Price     float64
}

// Create stores a new wishlist entry.
//
// Duplicate entries for the same email/package pair are allowed; the
// frontend deletes by entry id, so each save stands alone.
func (service *Service) Create(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	v := &validate.Validator{}
	err := v.
		Required("email", input.Email).
		Email("email", input.Email).
		Custom("packageId", input.PackageID.IsZero(), "This field is required").
		Err()
	if err != nil {
		return nil, err
	}

	insertedID, err := service.repository.Insert(ctx, &Entry{
		Email:     input.Email,
		PackageID: input.PackageID,
		Title:     input.Title,
		Photo:     input.Photo,
		Price:     input.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist_service_create_failed: %w", err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}

// ListByEmail returns every entry owned by the given email.
func (service *Service) ListByEmail(ctx context.Context, email string) ([]Entry, error) {
	entries, err := service.repository.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("wishlist_service_list_failed: %w", err)
	}
	return entries, nil
}

// Delete removes at most one entry by id.
func (service *Service) Delete(ctx context.Context, id primitive.ObjectID) (*mongostore.DeleteSummary, error) {
	summary, err := service.repository.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("wishlist_service_delete_failed: %w", err)
	}
	return summary, nil
}
