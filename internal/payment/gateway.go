// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
)

// Intent is a gateway payment intent. Only the client secret travels back
// to the frontend; everything else stays on the gateway.
type Intent struct {
	ClientSecret string `json:"clientSecret"`
}

// Gateway creates payment intents with an external card processor.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64) (*Intent, error)
}

// StripeGateway implements [Gateway] against the Stripe HTTP API.
//
// Currency is fixed to USD and there is no idempotency key on the create
// call; a client retry can mint a second intent.
type StripeGateway struct {
	client *resty.Client
}

// NewStripeGateway configures the gateway client with the account secret.
func NewStripeGateway(apiURL, secretKey string) *StripeGateway {
	client := resty.New().
		SetBaseURL(apiURL).
		SetAuthToken(secretKey).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")

	return &StripeGateway{client: client}
}

// stripeIntentResponse is the subset of the gateway payload we consume.
type stripeIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates a card payment intent for the given amount.
func (gateway *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64) (*Intent, error) {
	var payload stripeIntentResponse

	response, err := gateway.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amountMinorUnits, 10),
			"currency":               "usd",
			"payment_method_types[]": "card",
		}).
		SetResult(&payload).
		SetError(&payload).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("stripe_gateway_request_failed: %w", err)
	}

	if response.IsError() {
		return nil, apperr.Internal(
			fmt.Errorf("stripe_gateway_rejected: status=%d message=%q",
				response.StatusCode(), payload.Error.Message))
	}

	return &Intent{ClientSecret: payload.ClientSecret}, nil
}
