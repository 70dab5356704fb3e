// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package booking implements tour bookings and their status lifecycle.
package booking

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Status is the booking lifecycle label.
//
// Transitions are last-writer-wins: any status may overwrite any other.
// There is deliberately no guard on the prior state.
type Status string

const (
	StatusRequested Status = "Requested"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
)

// Booking is a stored booking document. Email identifies the traveler who
// owns it; GuideName identifies the assigned guide (by display name, not
// id — an inherited production quirk).
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	TouristName  string             `bson:"touristName,omitempty" json:"touristName,omitempty"`
	GuideName    string             `bson:"guideName" json:"guideName"`
	PackageTitle string             `bson:"packageTitle,omitempty" json:"packageTitle,omitempty"`
	Photo        string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Date         string             `bson:"date,omitempty" json:"date,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Status       Status             `bson:"status" json:"status"`
}

// Repository is the storage contract for bookings.
type Repository interface {
	// Insert stores a new booking and returns its assigned id.
	Insert(ctx context.Context, booking *Booking) (interface{}, error)

	// ListByEmail returns every booking owned by the traveler.
	ListByEmail(ctx context.Context, email string) ([]Booking, error)

	// ListByGuideName returns one page of bookings assigned to the guide.
	ListByGuideName(ctx context.Context, guideName string, page pagination.Params) ([]Booking, error)

	// SetStatus writes the status on the document with the given id,
	// upserting when no document matches.
	SetStatus(ctx context.Context, id primitive.ObjectID, status Status) (*mongostore.UpdateSummary, error)

	// DeleteByID removes at most one booking. A zero count is success.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongostore.DeleteSummary, error)

	// CountByEmail returns the exact number of bookings for the traveler.
	CountByEmail(ctx context.Context, email string) (int64, error)
}
