// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowtrails/shadow/internal/payment"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

/*
TestMinorUnits verifies the truncating conversion from decimal prices to
gateway minor units.
*/
func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected int64
	}{
		{"whole_amount", 10, 1000},
		{"two_decimals", 19.99, 1999},
		{"truncates_not_rounds", 10.999, 1099},
		{"sub_cent", 0.009, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, payment.MinorUnits(tt.price))
		})
	}
}

/*
TestStripeGateway_CreateIntent verifies the gateway request shape and
response decoding against a stub server.
*/
func TestStripeGateway_CreateIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/v1/payment_intents", request.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", request.Header.Get("Authorization"))

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "1099", request.PostForm.Get("amount"))
		assert.Equal(t, "usd", request.PostForm.Get("currency"))

		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
	defer server.Close()

	gateway := payment.NewStripeGateway(server.URL, "sk_test_secret")

	intent, err := gateway.CreateIntent(context.Background(), 1099)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
}

/*
TestStripeGateway_CreateIntent_Rejected verifies that gateway errors surface
as internal errors, never as a zero-value intent.
*/
func TestStripeGateway_CreateIntent_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusPaymentRequired)
		writer.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	gateway := payment.NewStripeGateway(server.URL, "sk_test_secret")

	_, err := gateway.CreateIntent(context.Background(), 1099)
	assert.Error(t, err)
}

// stubGateway records the amount it was asked to charge.
type stubGateway struct {
	amount int64
}

func (s *stubGateway) CreateIntent(_ context.Context, amountMinorUnits int64) (*payment.Intent, error) {
	s.amount = amountMinorUnits
	return &payment.Intent{ClientSecret: "secret"}, nil
}

// stubRepository is an append-only in-memory payment.Repository.
type stubRepository struct {
	records []payment.Payment
}

func (s *stubRepository) Insert(_ context.Context, record *payment.Payment) (interface{}, error) {
	s.records = append(s.records, *record)
	return len(s.records), nil
}

func (s *stubRepository) List(_ context.Context, _ pagination.Params) ([]payment.Payment, error) {
	return s.records, nil
}

func (s *stubRepository) ListByEmail(_ context.Context, email string) ([]payment.Payment, error) {
	result := []payment.Payment{}
	for _, record := range s.records {
		if record.Email == email {
			result = append(result, record)
		}
	}
	return result, nil
}

/*
TestService_CreateIntent verifies price validation and the minor-unit
conversion handed to the gateway.
*/
func TestService_CreateIntent(t *testing.T) {
	gateway := &stubGateway{}
	service := payment.NewService(&stubRepository{}, gateway)
	ctx := context.Background()

	intent, err := service.CreateIntent(ctx, 10.999)
	require.NoError(t, err)
	assert.Equal(t, "secret", intent.ClientSecret)
	assert.Equal(t, int64(1099), gateway.amount)

	_, err = service.CreateIntent(ctx, 0)
	assert.Error(t, err)

	_, err = service.CreateIntent(ctx, -5)
	assert.Error(t, err)
}

/*
TestService_Record verifies the allow-listed payment record write.
*/
func TestService_Record(t *testing.T) {
	repository := &stubRepository{}
	service := payment.NewService(repository, &stubGateway{})

	result, err := service.Record(context.Background(), payment.RecordInput{
		Email:         "traveler@shadowtrails.app",
		Amount:        120,
		TransactionID: "pi_123",
		PackageTitle:  "Sajek Valley",
	})
	require.NoError(t, err)
	assert.NotNil(t, result.InsertedID)
	require.Len(t, repository.records, 1)
	assert.Equal(t, "pi_123", repository.records[0].TransactionID)

	// Missing transaction id is rejected.
	_, err = service.Record(context.Background(), payment.RecordInput{
		Email: "traveler@shadowtrails.app",
	})
	assert.Error(t, err)
}
