// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package guide

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Handler implements guide profile HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the guide routes. Browsing profiles is open; only the
// count endpoint requires a session.
func (handler *Handler) Register(router chi.Router, requireAuth func(http.Handler) http.Handler) {
	router.Post("/guide", handler.create)
	router.Get("/guides", handler.list)
	router.Get("/guide/{id}", handler.get)
	router.With(requireAuth).Get("/guides-count", handler.count)
}

// createRequest is the JSON payload for registering a guide profile.
type createRequest struct {
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Photo      string   `json:"photo"`
	Experience string   `json:"experience"`
	Languages  []string `json:"languages"`
	Bio        string   `json:"bio"`
}

// create handles POST /guide requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.CreateIfAbsent(request.Context(), CreateInput{
		Email:      input.Email,
		Name:       input.Name,
		Photo:      input.Photo,
		Experience: input.Experience,
		Languages:  input.Languages,
		Bio:        input.Bio,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// list handles GET /guides requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	guides, err := handler.service.List(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, guides, pagination.NewMeta(page.Page, len(guides)))
}

// get handles GET /guide/{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// count handles GET /guides-count requests.
func (handler *Handler) count(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int64{"count": total})
}
