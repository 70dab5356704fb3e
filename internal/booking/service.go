// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Service implements booking use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its storage dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the allow-listed payload of a new booking.
type CreateInput struct {
	Email        string
	TouristName  string
	GuideName    string
	PackageTitle string
	Photo        string
	Date         string
	Price        float64
}

// Create stores a new booking. The status is always forced to Requested
// regardless of the payload; clients cannot book pre-accepted.
func (service *Service) Create(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	v := &validate.Validator{}
	err := v.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("guideName", input.GuideName).
		Err()
	if err != nil {
		return nil, err
	}

	insertedID, err := service.repository.Insert(ctx, &Booking{
		Email:        input.Email,
		TouristName:  input.TouristName,
		GuideName:    input.GuideName,
		PackageTitle: input.PackageTitle,
		Photo:        input.Photo,
		Date:         input.Date,
		Price:        input.Price,
		Status:       StatusRequested,
	})
	if err != nil {
		return nil, fmt.Errorf("booking_service_create_failed: %w", err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}

// ListByEmail returns every booking owned by the traveler.
func (service *Service) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	bookings, err := service.repository.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("booking_service_list_failed: %w", err)
	}
	return bookings, nil
}

// ListAssigned returns one page of bookings assigned to the named guide.
func (service *Service) ListAssigned(ctx context.Context, guideName string, page pagination.Params) ([]Booking, error) {
	bookings, err := service.repository.ListByGuideName(ctx, guideName, page)
	if err != nil {
		return nil, fmt.Errorf("booking_service_assigned_failed: %w", err)
	}
	return bookings, nil
}

// SetStatus writes the requested status onto the booking.
//
// Last-writer-wins: the prior status is never consulted, so Accepted can
// move back to Requested and concurrent writers race freely. Only the
// status vocabulary itself is validated.
func (service *Service) SetStatus(ctx context.Context, id primitive.ObjectID, status Status) (*mongostore.UpdateSummary, error) {
	v := &validate.Validator{}
	err := v.
		OneOf("status", string(status),
			string(StatusRequested), string(StatusAccepted), string(StatusRejected)).
		Err()
	if err != nil {
		return nil, err
	}

	summary, err := service.repository.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("booking_service_set_status_failed: %w", err)
	}
	return summary, nil
}

// Delete removes at most one booking by id. Dependent payment records are
// left in place; there is no cascade.
func (service *Service) Delete(ctx context.Context, id primitive.ObjectID) (*mongostore.DeleteSummary, error) {
	summary, err := service.repository.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking_service_delete_failed: %w", err)
	}
	return summary, nil
}

// CountByEmail returns the exact number of bookings owned by the traveler.
func (service *Service) CountByEmail(ctx context.Context, email string) (int64, error) {
	return service.repository.CountByEmail(ctx, email)
}
