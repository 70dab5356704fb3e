// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package guide

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Service implements guide profile use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its storage dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the allow-listed payload of a new guide profile.
type CreateInput struct {
	Email      string
	Name       string
	Photo      string
	Experience string
	Languages  []string
	Bio        string
}

// CreateIfAbsent provisions a guide profile keyed by email.
//
// Same sentinel contract as user sign-up: an existing email is not an
// error, the response carries a nil InsertedID and a message. The
// check-then-insert race is also inherited unchanged.
func (service *Service) CreateIfAbsent(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	v := &validate.Validator{}
	err := v.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("name", input.Name).
		Err()
	if err != nil {
		return nil, err
	}

	_, err = service.repository.FindByEmail(ctx, input.Email)
	if err == nil {
		return &mongostore.InsertSummary{InsertedID: nil, Message: "guide already exists"}, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("guide_service_create_lookup_failed: %w", err)
	}

	insertedID, err := service.repository.Insert(ctx, &Guide{
		Email:      input.Email,
		Name:       input.Name,
		Photo:      input.Photo,
		Experience: input.Experience,
		Languages:  input.Languages,
		Bio:        input.Bio,
	})
	if err != nil {
		return nil, fmt.Errorf("guide_service_create_failed: %w", err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}

// Get fetches a single profile by id.
func (service *Service) Get(ctx context.Context, id primitive.ObjectID) (*Guide, error) {
	return service.repository.FindByID(ctx, id)
}

// List returns one page of guide profiles.
func (service *Service) List(ctx context.Context, page pagination.Params) ([]Guide, error) {
	guides, err := service.repository.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("guide_service_list_failed: %w", err)
	}
	return guides, nil
}

// Count returns the exact number of guide profiles.
func (service *Service) Count(ctx context.Context) (int64, error) {
	return service.repository.Count(ctx)
}
