// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowtrails/shadow/internal/platform/sec"
)

const testSecret = "unit-test-signing-secret"

/*
TestTokenService_RoundTrip verifies that a generated token carries the
identity claims back out through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "shadowtrails.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("traveler@shadowtrails.app", "Traveler", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "traveler@shadowtrails.app", claims.Email)
	assert.Equal(t, "Traveler", claims.Name)
	assert.Equal(t, "shadowtrails.app", claims.Issuer)
	assert.Equal(t, "traveler@shadowtrails.app", claims.Subject)
}

/*
TestTokenService_Expiry verifies that an expired token is rejected.
*/
func TestTokenService_Expiry(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "shadowtrails.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("traveler@shadowtrails.app", "", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret verifies that a token signed with a different
secret fails verification.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuing, err := sec.NewTokenService("secret-a", "shadowtrails.app")
	require.NoError(t, err)
	verifying, err := sec.NewTokenService("secret-b", "shadowtrails.app")
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken("traveler@shadowtrails.app", "", time.Hour)
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Garbage verifies that malformed token strings are rejected.
*/
func TestTokenService_Garbage(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "shadowtrails.app")
	require.NoError(t, err)

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := service.VerifyToken(tokenString)
		assert.Error(t, err)
	}
}

/*
TestNewTokenService_EmptySecret verifies the constructor guard.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "shadowtrails.app")
	assert.Error(t, err)
}
