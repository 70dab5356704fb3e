// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowtrails/shadow/internal/auth"
	"github.com/shadowtrails/shadow/internal/platform/sec"
)

/*
TestHandler_Issue verifies that POST /jwt returns a verifiable token
carrying the submitted identity.
*/
func TestHandler_Issue(t *testing.T) {
	tokens, err := sec.NewTokenService("unit-test-secret", "shadowtrails.app")
	require.NoError(t, err)

	router := chi.NewRouter()
	auth.NewHandler(tokens).Register(router)

	request := httptest.NewRequest("POST", "/jwt",
		strings.NewReader(`{"email":"traveler@shadowtrails.app","name":"Traveler"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	claims, err := tokens.VerifyToken(envelope.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "traveler@shadowtrails.app", claims.Email)
	assert.Equal(t, "Traveler", claims.Name)
}

/*
TestHandler_Issue_RequiresEmail verifies that identity-free requests are
rejected before signing.
*/
func TestHandler_Issue_RequiresEmail(t *testing.T) {
	tokens, err := sec.NewTokenService("unit-test-secret", "shadowtrails.app")
	require.NoError(t, err)

	router := chi.NewRouter()
	auth.NewHandler(tokens).Register(router)

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`} {
		request := httptest.NewRequest("POST", "/jwt", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	}
}
