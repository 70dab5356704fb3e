// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package review

import (
	"context"
	"fmt"
	"time"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
)

// Service implements review use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateInput holds the allow-listed payload of a new review.
type CreateInput struct {
	UserName    string
	GuideID     string
	UserRating  float64
	UserComment string
	UserPhoto   string
	Timestamp   int64
}

// Create stores a new review. A zero timestamp is filled server-side so
// older frontend builds that omit it still produce ordered reviews.
func (service *Service) Create(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	v := &validate.Validator{}
	err := v.
		Required("userName", input.UserName).
		Required("guideId", input.GuideID).
		Custom("userRating", input.UserRating < 0 || input.UserRating > 5, "Must be between 0 and 5").
		Err()
	if err != nil {
		return nil, err
	}

	if input.Timestamp == 0 {
		input.Timestamp = time.Now().UnixMilli()
	}

	insertedID, err := service.repository.Insert(ctx, &Review{
		UserName:    input.UserName,
		GuideID:     input.GuideID,
		UserRating:  input.UserRating,
		UserComment: input.UserComment,
		UserPhoto:   input.UserPhoto,
		Timestamp:   input.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("review_service_create_failed: %w", err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}

// List returns reviews, optionally narrowed to one guide.
func (service *Service) List(ctx context.Context, guideID string) ([]Review, error) {
	reviews, err := service.repository.List(ctx, guideID)
	if err != nil {
		return nil, fmt.Errorf("review_service_list_failed: %w", err)
	}
	return reviews, nil
}
