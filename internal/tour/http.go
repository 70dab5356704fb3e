// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package tour

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Handler implements catalogue HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the catalogue routes.
//
// Two PATCH routes write the same wishlist flag: /wishlist-add/{id} takes
// the flag value from the body, /wishlists/{id} forces it to false
// (the "cancel" path used by the frontend).
func (handler *Handler) Register(router chi.Router, requireAuth func(http.Handler) http.Handler, requireAdmin func(http.Handler) http.Handler) {
	router.Get("/package", handler.list)
	router.With(requireAdmin).Post("/package", handler.create)
	router.Get("/package/{id}", handler.get)
	router.Patch("/wishlist-add/{id}", handler.setWishlistFlag)
	router.Patch("/wishlists/{id}", handler.clearWishlistFlag)
	router.Get("/types", handler.listTypes)
	router.With(requireAuth).Get("/packages-count", handler.count)
}

// createRequest is the JSON payload for publishing a tour package.
type createRequest struct {
	Title       string   `json:"title"`
	TourType    string   `json:"tourType"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
}

// create handles POST /package requests (admin only).
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Create(request.Context(), CreateInput{
		Title:       input.Title,
		TourType:    input.TourType,
		Price:       input.Price,
		Duration:    input.Duration,
		Photos:      input.Photos,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// list handles GET /package requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	packages, err := handler.service.List(request.Context(), ListFilter{
		Type: request.URL.Query().Get("type"),
		Page: page,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, packages, pagination.NewMeta(page.Page, len(packages)))
}

// get handles GET /package/{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pkg, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pkg)
}

// wishlistFlagRequest is the JSON payload for PATCH /wishlist-add/{id}.
type wishlistFlagRequest struct {
	Wishlist bool `json:"wishlist"`
}

// setWishlistFlag handles PATCH /wishlist-add/{id} requests.
func (handler *Handler) setWishlistFlag(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input wishlistFlagRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.SetWishlistFlag(request.Context(), id, input.Wishlist)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

// clearWishlistFlag handles PATCH /wishlists/{id} requests.
func (handler *Handler) clearWishlistFlag(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.SetWishlistFlag(request.Context(), id, false)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

// listTypes handles GET /types requests.
func (handler *Handler) listTypes(writer http.ResponseWriter, request *http.Request) {
	types, err := handler.service.ListTypes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, types)
}

// count handles GET /packages-count requests.
func (handler *Handler) count(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int64{"count": total})
}
