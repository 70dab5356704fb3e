// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package users implements the account domain: sign-in provisioning,
// role management, and the guide-application flow.
package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Roles

// Role is the authorization level stored on a user document.
type Role string

const (
	// RoleAdmin has unrestricted access to administrative endpoints.
	RoleAdmin Role = "admin"

	// RoleGuide can view and act on bookings assigned to them.
	RoleGuide Role = "guide"

	// RoleTourist is the default role assigned on first sign-in.
	RoleTourist Role = "tourist"
)

// # Statuses

// Status tracks the guide-application lifecycle on a user document.
type Status string

const (
	// StatusRequested marks a pending guide application.
	StatusRequested Status = "Requested"

	// StatusVerified marks an approved account.
	StatusVerified Status = "Verified"
)

// User is a stored account document.
//
// Email is the natural key, enforced at the application layer with a
// check-then-insert — the store itself carries no uniqueness constraint.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      Role               `bson:"role" json:"role"`
	Status    Status             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
