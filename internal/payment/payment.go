// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package payment implements payment intents and payment records.
package payment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Payment is a stored payment record. It is written by the frontend after
// the gateway confirms the charge; the backend never verifies the
// transaction id against the gateway.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PackageTitle  string             `bson:"packageTitle,omitempty" json:"packageTitle,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}

// Repository is the storage contract for payment records.
type Repository interface {
	Insert(ctx context.Context, payment *Payment) (interface{}, error)
	List(ctx context.Context, page pagination.Params) ([]Payment, error)
	ListByEmail(ctx context.Context, email string) ([]Payment, error)
}

// MinorUnits converts a decimal price to gateway minor units (cents).
//
// The conversion truncates, matching the arithmetic the frontend relied
// on: 10.999 becomes 1099, not 1100.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}
