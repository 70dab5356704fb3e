// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package content

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	mongostore "github.com/shadowtrails/shadow/internal/platform/mongo"
	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
)

// Handler implements story and blog HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the content routes. All four are open.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/story", handler.createStory)
	router.Get("/story", handler.listStories)
	router.Post("/blogs", handler.createBlog)
	router.Get("/blogs", handler.listBlogs)
}

// createRequest is the JSON payload for posting a story or blog.
type createRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Email   string `json:"email"`
	Image   string `json:"image"`
	Content string `json:"content"`
}

// createStory handles POST /story requests.
func (handler *Handler) createStory(writer http.ResponseWriter, request *http.Request) {
	handler.create(writer, request, handler.service.CreateStory)
}

// createBlog handles POST /blogs requests.
func (handler *Handler) createBlog(writer http.ResponseWriter, request *http.Request) {
	handler.create(writer, request, handler.service.CreateBlog)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request, save func(context.Context, CreateInput) (*mongostore.InsertSummary, error)) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := save(request.Context(), CreateInput{
		Title:   input.Title,
		Author:  input.Author,
		Email:   input.Email,
		Image:   input.Image,
		Content: input.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// listStories handles GET /story requests.
func (handler *Handler) listStories(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListStories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, posts)
}

// listBlogs handles GET /blogs requests.
func (handler *Handler) listBlogs(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListBlogs(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, posts)
}
