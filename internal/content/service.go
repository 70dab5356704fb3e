// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package content

import (
	"context"
	"fmt"
	"time"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	"github.com/shadowtrails/shadow/internal/platform/validate"
)

// Service implements story and blog use cases over two post collections.
type Service struct {
	stories Repository
	blogs   Repository
}

// NewService constructs a new [Service] with both collection repositories.
func NewService(stories, blogs Repository) *Service {
	return &Service{stories: stories, blogs: blogs}
}

// CreateInput holds the allow-listed payload of a new post.
type CreateInput struct {
	Title   string
	Author  string
	Email   string
	Image   string
	Content string
}

// CreateStory stores a traveler story.
func (service *Service) CreateStory(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	return service.create(ctx, service.stories, input, "content_service_story_create_failed")
}

// CreateBlog stores a blog post.
func (service *Service) CreateBlog(ctx context.Context, input CreateInput) (*mongostore.InsertSummary, error) {
	return service.create(ctx, service.blogs, input, "content_service_blog_create_failed")
}

// ListStories returns every traveler story.
func (service *Service) ListStories(ctx context.Context) ([]Post, error) {
	posts, err := service.stories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("content_service_story_list_failed: %w", err)
	}
	return posts, nil
}

// ListBlogs returns every blog post.
func (service *Service) ListBlogs(ctx context.Context) ([]Post, error) {
	posts, err := service.blogs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("content_service_blog_list_failed: %w", err)
	}
	return posts, nil
}

func (service *Service) create(ctx context.Context, repository Repository, input CreateInput, wrap string) (*mongostore.InsertSummary, error) {
	v := &validate.Validator{}
	err := v.
		Required("title", input.Title).
		Required("content", input.Content).
		Err()
	if err != nil {
		return nil, err
	}

	insertedID, err := repository.Insert(ctx, &Post{
		Title:     input.Title,
		Author:    input.Author,
		Email:     input.Email,
		Image:     input.Image,
		Content:   input.Content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", wrap, err)
	}

	return &mongostore.InsertSummary{InsertedID: insertedID}, nil
}
