// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowtrails/shadow/internal/review"
)

// fakeRepository is an append-only in-memory review.Repository.
type fakeRepository struct {
	reviews []review.Review
}

func (f *fakeRepository) Insert(_ context.Context, item *review.Review) (interface{}, error) {
	f.reviews = append(f.reviews, *item)
	return len(f.reviews), nil
}

func (f *fakeRepository) List(_ context.Context, guideID string) ([]review.Review, error) {
	result := []review.Review{}
	for _, item := range f.reviews {
		if guideID == "" || item.GuideID == guideID {
			result = append(result, item)
		}
	}
	return result, nil
}

/*
TestService_Create verifies the allow-listed review write, rating bounds,
and the server-side timestamp fallback.
*/
func TestService_Create(t *testing.T) {
	repository := &fakeRepository{}
	service := review.NewService(repository)
	ctx := context.Background()

	result, err := service.Create(ctx, review.CreateInput{
		UserName:   "Traveler",
		GuideID:    "65f1a0b2c3d4e5f6a7b8c9d0",
		UserRating: 4.5,
	})
	require.NoError(t, err)
	assert.NotNil(t, result.InsertedID)

	// Omitted timestamp is filled server-side.
	require.Len(t, repository.reviews, 1)
	assert.NotZero(t, repository.reviews[0].Timestamp)

	// Out-of-range rating is rejected.
	_, err = service.Create(ctx, review.CreateInput{
		UserName:   "Traveler",
		GuideID:    "65f1a0b2c3d4e5f6a7b8c9d0",
		UserRating: 6,
	})
	assert.Error(t, err)

	// Missing guide id is rejected.
	_, err = service.Create(ctx, review.CreateInput{UserName: "Traveler"})
	assert.Error(t, err)
}

/*
TestService_List verifies the optional guide filter.
*/
func TestService_List(t *testing.T) {
	repository := &fakeRepository{}
	service := review.NewService(repository)
	ctx := context.Background()

	for _, guideID := range []string{"guide-a", "guide-a", "guide-b"} {
		_, err := service.Create(ctx, review.CreateInput{
			UserName:   "Traveler",
			GuideID:    guideID,
			UserRating: 5,
		})
		require.NoError(t, err)
	}

	all, err := service.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := service.List(ctx, "guide-a")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}
