// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package payment

import (
	"context"
	"fmt"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Service implements payment use cases.
type Service struct {
	repository Repository
	gateway    Gateway
}

// NewService constructs a new [Service] with its storage and gateway
// dependencies.
func NewService(repository Repository, gateway Gateway) *Service {
	return &Service{repository: repository, gateway: gateway}
}

// CreateIntent asks the gateway for a payment intent covering the price.
//
// The price arrives in whole currency units and is converted to minor
// units by truncation before it reaches the gateway.
func (service *Service) CreateIntent(ctx context.Context, price float64) (*Intent, error) {
	v := &validate.Validator{}
	if err := v.Positive("price", price).Err(); err != nil {
		return nil, err
	}

	intent, err := service.gateway.CreateIntent(ctx, MinorUnits(price))
	if err != nil {
		return nil, fmt.Errorf("payment_service_intent_failed: %w", err)
	}

	return intent, nil
}

// RecordInput holds the allow-listed payload of a confirmed payment.
type RecordInput struct {
	Email         string
	Amount        float64
	TransactionID string
	PackageTitle  string
	Date          string
}

// Record stores a confirmed payment. The transaction id is taken on
// trust; there is no verification round-trip to the gateway.
func (service *Service) Record(ctx context.Context, input RecordInput) (*mongostore.InsertSummary, error) {
	v := &validate.Validator{}
	err := v.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("transactionId", input.TransactionID).
		Err()
	if err != nil {
		return nil, err
	}

	insertedID, err := service.repository.Insert(ctx, &Payment{
		Email:         input.Email,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
		PackageTitle:  input.PackageTitle,
		Date:          input.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("payment_service_record_failed: %w", err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}

// List returns one page of payment records across all users.
func (service *Service) List(ctx context.Context, page pagination.Params) ([]Payment, error) {
	payments, err := service.repository.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("payment_service_list_failed: %w", err)
	}
	return payments, nil
}

// ListByEmail returns every payment record owned by the given email.
func (service *Service) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	payments, err := service.repository.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("payment_service_list_email_failed: %w", err)
	}
	return payments, nil
}
