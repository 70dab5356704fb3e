// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/internal/booking"
	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// fakeRepository is an in-memory booking.Repository keyed by document id.
type fakeRepository struct {
	docs map[primitive.ObjectID]*booking.Booking
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{docs: map[primitive.ObjectID]*booking.Booking{}}
}

func (f *fakeRepository) Insert(_ context.Context, item *booking.Booking) (interface{}, error) {
	id := primitive.NewObjectID()
	item.ID = id
	f.docs[id] = item
	return id, nil
}

func (f *fakeRepository) ListByEmail(_ context.Context, email string) ([]booking.Booking, error) {
	result := []booking.Booking{}
	for _, item := range f.docs {
		if item.Email == email {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (f *fakeRepository) ListByGuideName(_ context.Context, guideName string, _ pagination.Params) ([]booking.Booking, error) {
	result := []booking.Booking{}
	for _, item := range f.docs {
		if item.GuideName == guideName {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (f *fakeRepository) SetStatus(_ context.Context, id primitive.ObjectID, status booking.Status) (*mongostore.UpdateSummary, error) {
	item, ok := f.docs[id]
	if !ok {
		// Upsert-on-write: an unknown id mints a status-only stub.
		f.docs[id] = &booking.Booking{ID: id, Status: status}
		return &mongostore.UpdateSummary{UpsertedID: id}, nil
	}
	item.Status = status
	return &mongostore.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (*mongostore.DeleteSummary, error) {
	if _, ok := f.docs[id]; !ok {
		return &mongostore.DeleteSummary{DeletedCount: 0}, nil
	}
	delete(f.docs, id)
	return &mongostore.DeleteSummary{DeletedCount: 1}, nil
}

func (f *fakeRepository) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	for _, item := range f.docs {
		if item.Email == email {
			count++
		}
	}
	return count, nil
}

/*
TestService_Create verifies that new bookings always start as Requested.
*/
func TestService_Create(t *testing.T) {
	repository := newFakeRepository()
	service := booking.NewService(repository)

	result, err := service.Create(context.Background(), booking.CreateInput{
		Email:     "traveler@shadowtrails.app",
		GuideName: "Rahim Uddin",
		Price:     120,
	})
	require.NoError(t, err)
	require.NotNil(t, result.InsertedID)

	stored := repository.docs[result.InsertedID.(primitive.ObjectID)]
	assert.Equal(t, booking.StatusRequested, stored.Status)
}

/*
TestService_Create_MissingGuide verifies boundary validation.
*/
func TestService_Create_MissingGuide(t *testing.T) {
	service := booking.NewService(newFakeRepository())

	_, err := service.Create(context.Background(), booking.CreateInput{
		Email: "traveler@shadowtrails.app",
	})
	assert.Error(t, err)
}

/*
TestService_SetStatus_LastWriterWins verifies that transitions are not
guarded: Accepted then Rejected ends at Rejected.
*/
func TestService_SetStatus_LastWriterWins(t *testing.T) {
	repository := newFakeRepository()
	service := booking.NewService(repository)
	ctx := context.Background()

	created, err := service.Create(ctx, booking.CreateInput{
		Email:     "traveler@shadowtrails.app",
		GuideName: "Rahim Uddin",
	})
	require.NoError(t, err)
	id := created.InsertedID.(primitive.ObjectID)

	_, err = service.SetStatus(ctx, id, booking.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusAccepted, repository.docs[id].Status)

	_, err = service.SetStatus(ctx, id, booking.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusRejected, repository.docs[id].Status)

	// Even moving back to Requested is allowed.
	_, err = service.SetStatus(ctx, id, booking.StatusRequested)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusRequested, repository.docs[id].Status)
}

/*
TestService_SetStatus_UnknownVocabulary verifies that only the three status
labels are accepted.
*/
func TestService_SetStatus_UnknownVocabulary(t *testing.T) {
	service := booking.NewService(newFakeRepository())

	_, err := service.SetStatus(context.Background(), primitive.NewObjectID(), booking.Status("Paused"))
	assert.Error(t, err)
}

/*
TestService_Delete verifies deletion counts: 1 for a real document, 0 for a
missing one — both successful.
*/
func TestService_Delete(t *testing.T) {
	repository := newFakeRepository()
	service := booking.NewService(repository)
	ctx := context.Background()

	created, err := service.Create(ctx, booking.CreateInput{
		Email:     "traveler@shadowtrails.app",
		GuideName: "Rahim Uddin",
	})
	require.NoError(t, err)
	id := created.InsertedID.(primitive.ObjectID)

	first, err := service.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.DeletedCount)

	second, err := service.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.DeletedCount)
}

/*
TestService_CountByEmail verifies the exact per-traveler count.
*/
func TestService_CountByEmail(t *testing.T) {
	repository := newFakeRepository()
	service := booking.NewService(repository)
	ctx := context.Background()

	for range [3]struct{}{} {
		_, err := service.Create(ctx, booking.CreateInput{
			Email:     "traveler@shadowtrails.app",
			GuideName: "Rahim Uddin",
		})
		require.NoError(t, err)
	}
	_, err := service.Create(ctx, booking.CreateInput{
		Email:     "other@shadowtrails.app",
		GuideName: "Rahim Uddin",
	})
	require.NoError(t, err)

	count, err := service.CountByEmail(ctx, "traveler@shadowtrails.app")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
