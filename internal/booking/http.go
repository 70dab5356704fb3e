// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Handler implements booking HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the booking routes.
//
// /booking/{email} and /booking-get/{email} are aliases kept for two
// frontend call sites. /booking-accepted/{id} carries no guard; the other
// write routes require a session.
func (handler *Handler) Register(router chi.Router, requireAuth func(http.Handler) http.Handler) {
	router.With(requireAuth).Post("/booking-post", handler.create)
	router.With(requireAuth).Get("/booking/{email}", handler.listByEmail)
	router.With(requireAuth).Get("/booking-get/{email}", handler.listByEmail)
	router.With(requireAuth).Get("/assign/{name}", handler.listAssigned)
	router.With(requireAuth).Patch("/booking-status/{id}", handler.setStatus)
	router.Patch("/booking-accepted/{id}", handler.accept)
	router.With(requireAuth).Delete("/booking-delete/{id}", handler.delete)
	router.With(requireAuth).Get("/bookings-count/{email}", handler.countByEmail)
}

// createRequest is the JSON payload for placing a booking.
type createRequest struct {
	Email        string  `json:"email"`
	TouristName  string  `json:"touristName"`
	GuideName    string  `json:"guideName"`
	PackageTitle string  `json:"packageTitle"`
	Photo        string  `json:"photo"`
	Date         string  `json:"date"`
	Price        float64 `json:"price"`
}

// create handles POST /booking-post requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Create(request.Context(), CreateInput{
		Email:        input.Email,
		TouristName:  input.TouristName,
		GuideName:    input.GuideName,
		PackageTitle: input.PackageTitle,
		Photo:        input.Photo,
		Date:         input.Date,
		Price:        input.Price,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// listByEmail handles GET /booking/{email} and GET /booking-get/{email}.
func (handler *Handler) listByEmail(writer http.ResponseWriter, request *http.Request) {
	bookings, err := handler.service.ListByEmail(request.Context(), requestutil.Param(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookings)
}

// listAssigned handles GET /assign/{name} requests.
func (handler *Handler) listAssigned(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	bookings, err := handler.service.ListAssigned(request.Context(), requestutil.Param(request, "name"), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bookings, pagination.NewMeta(page.Page, len(bookings)))
}

// statusRequest is the JSON payload for PATCH /booking-status/{id}.
type statusRequest struct {
	Status Status `json:"status"`
}

// setStatus handles PATCH /booking-status/{id} requests.
func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input statusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.SetStatus(request.Context(), id, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

// accept handles PATCH /booking-accepted/{id} requests.
func (handler *Handler) accept(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.SetStatus(request.Context(), id, StatusAccepted)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

// delete handles DELETE /booking-delete/{id} requests.
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

// countByEmail handles GET /bookings-count/{email} requests.
func (handler *Handler) countByEmail(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.CountByEmail(request.Context(), requestutil.Param(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int64{"count": total})
}
