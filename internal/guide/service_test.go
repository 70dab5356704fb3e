// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package guide_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/internal/guide"
	"github.com/shadowtrails/shadow/internal/platform/apperr"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// fakeRepository is an in-memory guide.Repository keyed by email.
type fakeRepository struct {
	docs map[string]*guide.Guide
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{docs: map[string]*guide.Guide{}}
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*guide.Guide, error) {
	profile, ok := f.docs[email]
	if !ok {
		return nil, apperr.NotFound("Guide")
	}
	return profile, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id primitive.ObjectID) (*guide.Guide, error) {
	for _, profile := range f.docs {
		if profile.ID == id {
			return profile, nil
		}
	}
	return nil, apperr.NotFound("Guide")
}

func (f *fakeRepository) Insert(_ context.Context, profile *guide.Guide) (interface{}, error) {
	id := primitive.NewObjectID()
	profile.ID = id
	f.docs[profile.Email] = profile
	return id, nil
}

func (f *fakeRepository) List(_ context.Context, _ pagination.Params) ([]guide.Guide, error) {
	result := []guide.Guide{}
	for _, profile := range f.docs {
		result = append(result, *profile)
	}
	return result, nil
}

func (f *fakeRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

/*
TestService_CreateIfAbsent verifies guide registration and the duplicate
suppression sentinel shared with user sign-up.
*/
func TestService_CreateIfAbsent(t *testing.T) {
	repository := newFakeRepository()
	service := guide.NewService(repository)
	ctx := context.Background()

	input := guide.CreateInput{
		Email: "rahim@shadowtrails.app",
		Name:  "Rahim Uddin",
	}

	first, err := service.CreateIfAbsent(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, first.InsertedID)
	assert.Empty(t, first.Message)

	second, err := service.CreateIfAbsent(ctx, input)
	require.NoError(t, err)
	assert.Nil(t, second.InsertedID)
	assert.Equal(t, "guide already exists", second.Message)
	assert.Len(t, repository.docs, 1)
}

/*
TestService_CreateIfAbsent_Validation verifies the required fields.
*/
func TestService_CreateIfAbsent_Validation(t *testing.T) {
	service := guide.NewService(newFakeRepository())

	// Missing name
	_, err := service.CreateIfAbsent(context.Background(), guide.CreateInput{
		Email: "rahim@shadowtrails.app",
	})
	assert.Error(t, err)

	// Bad email
	_, err = service.CreateIfAbsent(context.Background(), guide.CreateInput{
		Email: "not-an-email",
		Name:  "Rahim Uddin",
	})
	assert.Error(t, err)
}

/*
TestService_Get verifies lookup by id and the not-found path.
*/
func TestService_Get(t *testing.T) {
	repository := newFakeRepository()
	service := guide.NewService(repository)
	ctx := context.Background()

	created, err := service.CreateIfAbsent(ctx, guide.CreateInput{
		Email: "rahim@shadowtrails.app",
		Name:  "Rahim Uddin",
	})
	require.NoError(t, err)

	profile, err := service.Get(ctx, created.InsertedID.(primitive.ObjectID))
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", profile.Name)

	_, err = service.Get(ctx, primitive.NewObjectID())
	assert.True(t, apperr.IsNotFound(err))
}
