// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package wishlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shadowtrails/shadow/internal/platform/apperr"
	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
)

// Handler implements wishlist entry HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the wishlist entry routes. All three are open: wishlist
// state is scoped by email, not by session, matching production.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/wishlist-post", handler.create)
	router.Get("/wishlist/{email}", handler.listByEmail)
	router.Delete("/wishlist-delete/{id}", handler.delete)
}

// createRequest is the JSON payload for a new wishlist entry.
type createRequest struct {
	Email     string  `json:"email"`
	PackageID string  `json:"packageId"`
	Title     string  `json:"title"`
	Photo     string  `json:"photo"`
	Price     float64 `json:"price"`
}

// create handles POST /wishlist-post requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	packageID, err := primitive.ObjectIDFromHex(input.PackageID)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Malformed document id",
			apperr.FieldError{Field: "packageId", Message: "Must be a 24-character hex id"}))
		return
	}

	result, err := handler.service.Create(request.Context(), CreateInput{
		Email:     input.Email,
		PackageID: packageID,
		Title:     input.Title,
		Photo:     input.Photo,
		Price:     input.Price,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// listByEmail handles GET /wishlist/{email} requests.
func (handler *Handler) listByEmail(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.ListByEmail(request.Context(), requestutil.Param(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

// delete handles DELETE /wishlist-delete/{id} requests.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}
