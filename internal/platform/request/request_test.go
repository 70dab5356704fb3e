// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package requestutil_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
)

func newBody(s string) io.Reader {
	return strings.NewReader(s)
}

/*
TestObjectID verifies that route ids parse to document ids and that
malformed values yield a structured 400, not a store error.
*/
func TestObjectID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		isValid bool
	}{
		{"valid_hex", "65f1a0b2c3d4e5f6a7b8c9d0", true},
		{"too_short", "abc", false},
		{"not_hex", "zzzzzzzzzzzzzzzzzzzzzzzz", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/package/"+tt.raw, nil)

			routeCtx := chi.NewRouteContext()
			routeCtx.URLParams.Add("id", tt.raw)
			request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))

			id, err := requestutil.ObjectID(request, "id")

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, id.Hex())
			} else {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, 400, ae.HTTPStatus)
			}
		})
	}
}

/*
TestDecodeJSON verifies body decoding and the invalid-payload error.
*/
func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	t.Run("valid_body", func(t *testing.T) {
		request := httptest.NewRequest("POST", "/users", newBody(`{"email":"a@b.com"}`))

		var decoded payload
		require.NoError(t, requestutil.DecodeJSON(request, &decoded))
		assert.Equal(t, "a@b.com", decoded.Email)
	})

	t.Run("invalid_body", func(t *testing.T) {
		request := httptest.NewRequest("POST", "/users", newBody(`{not json`))

		var decoded payload
		err := requestutil.DecodeJSON(request, &decoded)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})
}
