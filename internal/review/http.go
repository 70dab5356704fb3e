// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
)

// Handler implements review HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the review routes. Both are open.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/reviews", handler.create)
	router.Get("/reviews", handler.list)
}

// createRequest is the JSON payload for posting a review.
type createRequest struct {
	UserName    string  `json:"userName"`
	GuideID     string  `json:"guideId"`
	UserRating  float64 `json:"userRating"`
	UserComment string  `json:"userComment"`
	UserPhoto   string  `json:"userPhoto"`
	Timestamp   int64   `json:"timestamp"`
}

// create handles POST /reviews requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Create(request.Context(), CreateInput{
		UserName:    input.UserName,
		GuideID:     input.GuideID,
		UserRating:  input.UserRating,
		UserComment: input.UserComment,
		UserPhoto:   input.UserPhoto,
		Timestamp:   input.Timestamp,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// list handles GET /reviews requests, optionally filtered by guideId.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.service.List(request.Context(), request.URL.Query().Get("guideId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reviews)
}
