// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/users"
)

// fakeRepository is an in-memory users.Repository keyed by email.
type fakeRepository struct {
	docs map[string]*users.User

	statusWrites int
	upsertWrites int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{docs: map[string]*users.User{}}
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*users.User, error) {
	user, ok := f.docs[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepository) Insert(_ context.Context, user *users.User) (interface{}, error) {
	id := primitive.NewObjectID()
	user.ID = id
	f.docs[user.Email] = user
	return id, nil
}

func (f *fakeRepository) List(_ context.Context, _ users.ListFilter) ([]users.User, error) {
	result := []users.User{}
	for _, user := range f.docs {
		result = append(result, *user)
	}
	return result, nil
}

func (f *fakeRepository) UpdateByEmail(_ context.Context, email string, update users.Update) (*mongostore.UpdateSummary, error) {
	user, ok := f.docs[email]
	if !ok {
		return &mongostore.UpdateSummary{}, nil
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	return &mongostore.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRepository) SetStatusByEmail(_ context.Context, email string, status users.Status) (*mongostore.UpdateSummary, error) {
	f.statusWrites++
	user, ok := f.docs[email]
	if !ok {
		return &mongostore.UpdateSummary{}, nil
	}
	user.Status = status
	return &mongostore.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRepository) UpsertByEmail(_ context.Context, email string, user *users.User) (*mongostore.UpdateSummary, error) {
	f.upsertWrites++
	if _, ok := f.docs[email]; ok {
		f.docs[email] = user
		return &mongostore.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	id := primitive.NewObjectID()
	user.ID = id
	f.docs[email] = user
	return &mongostore.UpdateSummary{UpsertedID: id}, nil
}

func (f *fakeRepository) CountEstimated(_ context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

/*
TestService_CreateIfAbsent verifies first-sign-in provisioning and its
duplicate suppression sentinel.
*/
func TestService_CreateIfAbsent(t *testing.T) {
	repository := newFakeRepository()
	service := users.NewService(repository)
	ctx := context.Background()

	input := users.CreateInput{Email: "traveler@shadowtrails.app", Name: "Traveler"}

	// First sign-in inserts with the default role.
	first, err := service.CreateIfAbsent(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, first.InsertedID)
	assert.Empty(t, first.Message)
	assert.Equal(t, users.RoleTourist, repository.docs[input.Email].Role)

	// Second sign-in is a no-op with the null-id sentinel, never an error.
	second, err := service.CreateIfAbsent(ctx, input)
	require.NoError(t, err)
	assert.Nil(t, second.InsertedID)
	assert.Equal(t, "user already exists", second.Message)
	assert.Len(t, repository.docs, 1)
}

/*
TestService_CreateIfAbsent_InvalidEmail verifies boundary validation.
*/
func TestService_CreateIfAbsent_InvalidEmail(t *testing.T) {
	service := users.NewService(newFakeRepository())

	_, err := service.CreateIfAbsent(context.Background(), users.CreateInput{Email: "not-an-email"})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_Save covers the three branches of the upsert-merge contract.
*/
func TestService_Save(t *testing.T) {
	t.Run("existing_requested_updates_only_status", func(t *testing.T) {
		repository := newFakeRepository()
		service := users.NewService(repository)
		ctx := context.Background()

		_, err := service.CreateIfAbsent(ctx, users.CreateInput{
			Email: "traveler@shadowtrails.app",
			Name:  "Original Name",
			Photo: "original.jpg",
		})
		require.NoError(t, err)

		result, err := service.Save(ctx, users.SaveInput{
			Email:  "traveler@shadowtrails.app",
			Name:   "Attacker Controlled",
			Photo:  "other.jpg",
			Status: users.StatusRequested,
		})
		require.NoError(t, err)

		// A write summary comes back, not an echo.
		assert.Nil(t, result.User)
		require.NotNil(t, result.Result)
		assert.Equal(t, int64(1), result.Result.ModifiedCount)
		assert.Equal(t, 1, repository.statusWrites)

		// Only status changed; name and photo are untouched.
		stored := repository.docs["traveler@shadowtrails.app"]
		assert.Equal(t, users.StatusRequested, stored.Status)
		assert.Equal(t, "Original Name", stored.Name)
		assert.Equal(t, "original.jpg", stored.Photo)
	})

	t.Run("existing_other_status_is_noop_echo", func(t *testing.T) {
		repository := newFakeRepository()
		service := users.NewService(repository)
		ctx := context.Background()

		_, err := service.CreateIfAbsent(ctx, users.CreateInput{
			Email: "traveler@shadowtrails.app",
			Name:  "Original Name",
		})
		require.NoError(t, err)

		result, err := service.Save(ctx, users.SaveInput{
			Email:  "traveler@shadowtrails.app",
			Name:   "New Name",
			Status: users.StatusVerified,
		})
		require.NoError(t, err)

		// The stored document wins and comes back verbatim.
		assert.Nil(t, result.Result)
		require.NotNil(t, result.User)
		assert.Equal(t, "Original Name", result.User.Name)
		assert.Equal(t, 0, repository.statusWrites)
		assert.Equal(t, 0, repository.upsertWrites)
	})

	t.Run("absent_upserts_full_payload", func(t *testing.T) {
		repository := newFakeRepository()
		service := users.NewService(repository)

		result, err := service.Save(context.Background(), users.SaveInput{
			Email:  "new@shadowtrails.app",
			Name:   "New Traveler",
			Status: users.StatusRequested,
		})
		require.NoError(t, err)

		assert.Nil(t, result.User)
		require.NotNil(t, result.Result)
		assert.NotNil(t, result.Result.UpsertedID)
		assert.Equal(t, 1, repository.upsertWrites)
		assert.Equal(t, users.RoleTourist, repository.docs["new@shadowtrails.app"].Role)
	})
}

/*
TestService_AdminUpdate verifies the allow-listed role/status merge and its
vocabulary validation.
*/
func TestService_AdminUpdate(t *testing.T) {
	repository := newFakeRepository()
	service := users.NewService(repository)
	ctx := context.Background()

	_, err := service.CreateIfAbsent(ctx, users.CreateInput{Email: "traveler@shadowtrails.app"})
	require.NoError(t, err)

	t.Run("promotes_to_guide", func(t *testing.T) {
		role := users.RoleGuide
		status := users.StatusVerified

		summary, err := service.AdminUpdate(ctx, "traveler@shadowtrails.app", users.Update{
			Role:   &role,
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.ModifiedCount)
		assert.Equal(t, users.RoleGuide, repository.docs["traveler@shadowtrails.app"].Role)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		role := users.Role("superuser")
		_, err := service.AdminUpdate(ctx, "traveler@shadowtrails.app", users.Update{Role: &role})
		assert.Error(t, err)
	})

	t.Run("rejects_empty_update", func(t *testing.T) {
		_, err := service.AdminUpdate(ctx, "traveler@shadowtrails.app", users.Update{})
		assert.Error(t, err)
	})
}

/*
TestService_RoleByEmail verifies the guard-facing role lookup.
*/
func TestService_RoleByEmail(t *testing.T) {
	repository := newFakeRepository()
	service := users.NewService(repository)
	ctx := context.Background()

	_, err := service.CreateIfAbsent(ctx, users.CreateInput{Email: "traveler@shadowtrails.app"})
	require.NoError(t, err)

	role, err := service.RoleByEmail(ctx, "traveler@shadowtrails.app")
	require.NoError(t, err)
	assert.Equal(t, "tourist", role)

	_, err = service.RoleByEmail(ctx, "ghost@shadowtrails.app")
	assert.Error(t, err)
}
