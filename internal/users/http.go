// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// HTTP delivery layer for the account domain.
//
// Handlers are the "gatekeepers" to the system. They are responsible for:
//   - JSON request parsing and strict input validation.
//   - Mapping HTTP contexts to service layer method calls.
//   - Standardizing JSON response formats via the [respond] package.
//
// They contain NO business logic or database queries.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Handler implements account-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the account routes.
//
// Route-level guards mirror the production authorization matrix: listing,
// admin updates, and counts are admin-gated; provisioning and the
// upsert-merge save stay open because they run before a session exists.
func (handler *Handler) Register(router chi.Router, requireAdmin func(http.Handler) http.Handler) {
	router.With(requireAdmin).Get("/users", handler.list)
	router.Post("/users", handler.create)
	router.Get("/user-role/{email}", handler.getByEmail)
	router.With(requireAdmin).Patch("/users/update/{email}", handler.adminUpdate)
	router.Put("/user", handler.save)
	router.With(requireAdmin).Get("/users-count", handler.count)
}

// createRequest is the JSON payload for first sign-in provisioning.
type createRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// create handles POST /users requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.CreateIfAbsent(request.Context(), CreateInput{
		Email: input.Email,
		Name:  input.Name,
		Photo: input.Photo,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// saveRequest is the JSON payload for the PUT /user upsert-merge.
type saveRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Photo  string `json:"photo"`
	Status string `json:"status"`
}

// save handles PUT /user requests.
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var input saveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Save(request.Context(), SaveInput{
		Email:  input.Email,
		Name:   input.Name,
		Photo:  input.Photo,
		Status: Status(input.Status),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// list handles GET /users requests (admin only).
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	users, err := handler.service.List(request.Context(), ListFilter{
		Search: request.URL.Query().Get("search"),
		Role:   request.URL.Query().Get("role"),
		Page:   page,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(page.Page, len(users)))
}

// getByEmail handles GET /user-role/{email} requests.
func (handler *Handler) getByEmail(writer http.ResponseWriter, request *http.Request) {
	email := requestutil.Param(request, "email")

	user, err := handler.service.GetByEmail(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// adminUpdateRequest is the JSON payload for PATCH /users/update/{email}.
type adminUpdateRequest struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// adminUpdate handles PATCH /users/update/{email} requests (admin only).
func (handler *Handler) adminUpdate(writer http.ResponseWriter, request *http.Request) {
	var input adminUpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	update := Update{}
	if input.Role != nil {
		role := Role(*input.Role)
		update.Role = &role
	}
	if input.Status != nil {
		status := Status(*input.Status)
		update.Status = &status
	}

	summary, err := handler.service.AdminUpdate(request.Context(), requestutil.Param(request, "email"), update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

// count handles GET /users-count requests (admin only).
func (handler *Handler) count(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int64{"count": total})
}
