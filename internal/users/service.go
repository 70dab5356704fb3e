// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Service layer for the account domain.
//
// # Architecture
//
// Services orchestrate domain entities and interact with repositories
// through interfaces. They are technology-agnostic and do not know about
// HTTP or BSON.
package users

import (
	"context"
	"fmt"
	"time"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
)

// Service implements account use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its storage dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the data provided on first sign-in.
type CreateInput struct {
	Email string
	Name  string
	Photo string
}

// CreateIfAbsent provisions a user document on first sign-in.
//
// # Duplicate Suppression
//
// An existing email is NOT an error: the operation responds with a nil
// InsertedID sentinel and a message, so sign-in stays idempotent from the
// client's perspective.
//
// # Known Race
//
// The existence check and the insert are two store operations. Two
// concurrent first sign-ins with the same email can both pass the check and
// both insert; the email index is non-unique on purpose, so the store
// accepts the duplicate. Accepted trade-off, inherited from production.
func (service *Service) CreateIfAbsent(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	// ── 1. Boundary Validation ────────────────────────────────────────────
	v := &validate.Validator{}
	if err := v.Required("email", input.Email).Email("email", input.Email).Err(); err != nil {
		return nil, err
	}

	// ── 2. Existence Check (non-atomic) ───────────────────────────────────
	_, err := service.repository.FindByEmail(ctx, input.Email)
	if err == nil {
		return &mongostore.InsertSummary{InsertedID: nil, Message: "user already exists"}, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("users_service_create_lookup_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────
	user := &User{
		Email:     input.Email,
		Name:      input.Name,
		Photo:     input.Photo,
		Role:      RoleTourist, // Rule: default role on first sign-in
		CreatedAt: time.Now(),
	}

	// ── 4. Persistence ────────────────────────────────────────────────────
	insertedID, err := service.repository.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("users_service_create_failed: %w", err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}

// SaveInput holds the allow-listed payload of the upsert-merge operation.
type SaveInput struct {
	Email  string
	Name   string
	Photo  string
	Status Status
}

// SaveResult is the outcome of [Service.Save]. Exactly one field is set:
// User echoes the unchanged stored document when the write was a no-op;
// Result summarizes the status-only update or the upsert.
type SaveResult struct {
	User   *User                     `json:"user,omitempty"`
	Result *mongostore.UpdateSummary `json:"result,omitempty"`
}

// Save performs the upsert-merge operation behind PUT /user.
//
// # Contract
//
//   - Document exists and incoming status is "Requested": update ONLY the
//     status field (a self-service guide application), leaving every other
//     field untouched.
//   - Document exists with any other status: write nothing; echo the stored
//     document verbatim.
//   - Document absent: upsert the full allow-listed payload.
func (service *Service) Save(ctx context.Context, input SaveInput) (*SaveResult, error) {
	v := &validate.Validator{}
	if err := v.Required("email", input.Email).Email("email", input.Email).Err(); err != nil {
		return nil, err
	}

	existing, err := service.repository.FindByEmail(ctx, input.Email)
	if err == nil {
		if input.Status == StatusRequested {
			summary, err := service.repository.SetStatusByEmail(ctx, input.Email, input.Status)
			if err != nil {
				return nil, fmt.Errorf("users_service_save_status_failed: %w", err)
			}
			return &SaveResult{Result: summary}, nil
		}

		// No-op echo: the stored document wins over the payload.
		return &SaveResult{User: existing}, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("users_service_save_lookup_failed: %w", err)
	}

	user := &User{
		Email:  input.Email,
		Name:   input.Name,
		Photo:  input.Photo,
		Role:   RoleTourist,
		Status: input.Status,
	}

	summary, err := service.repository.UpsertByEmail(ctx, input.Email, user)
	if err != nil {
		return nil, fmt.Errorf("users_service_save_upsert_failed: %w", err)
	}

	return &SaveResult{Result: summary}, nil
}

// List returns one page of users matching the filter.
func (service *Service) List(ctx context.Context, filter ListFilter) ([]User, error) {
	users, err := service.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("users_service_list_failed: %w", err)
	}
	return users, nil
}

// GetByEmail fetches a single user by natural key.
func (service *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return service.repository.FindByEmail(ctx, email)
}

// AdminUpdate merges an allow-listed role/status update onto a user.
func (service *Service) AdminUpdate(ctx context.Context, email string, update Update) (*mongostore.UpdateSummary, error) {
	v := &validate.Validator{}
	if update.Role != nil {
		v.OneOf("role", string(*update.Role), string(RoleTourist), string(RoleGuide), string(RoleAdmin))
	}
	if update.Status != nil {
		v.OneOf("status", string(*update.Status), string(StatusRequested), string(StatusVerified))
	}
	if update.Role == nil && update.Status == nil {
		v.Custom("role", true, "At least one of role or status is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	summary, err := service.repository.UpdateByEmail(ctx, email, update)
	if err != nil {
		return nil, fmt.Errorf("users_service_admin_update_failed: %w", err)
	}
	return summary, nil
}

// Count returns the user count.
//
// This is the estimated whole-collection cardinality, NOT a filtered count
// — it ignores search/role parameters entirely. The discrepancy is a known
// production behavior kept for client compatibility.
func (service *Service) Count(ctx context.Context) (int64, error) {
	return service.repository.CountEstimated(ctx)
}

// RoleByEmail resolves the stored role for the admin guard.
//
// It satisfies [middleware.RoleLookup]; the guard calls it on every
// admin-gated request so role revocation is effective immediately.
func (service *Service) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := service.repository.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return string(user.Role), nil
}
