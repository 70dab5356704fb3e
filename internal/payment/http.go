// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
	"github.com/shadowtrails/shadow/pkg/pagination"
)

// Handler implements payment HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the payment routes. Intent creation and record writes
// need a session; the full ledger is admin-only.
func (handler *Handler) Register(router chi.Router, requireAuth func(http.Handler) http.Handler, requireAdmin func(http.Handler) http.Handler) {
	router.With(requireAuth).Post("/create-payment-intent", handler.createIntent)
	router.With(requireAuth).Post("/payments", handler.record)
	router.With(requireAdmin).Get("/payments", handler.list)
	router.With(requireAuth).Get("/payments/{email}", handler.listByEmail)
}

// intentRequest is the JSON payload for POST /create-payment-intent.
type intentRequest struct {
	Price float64 `json:"price"`
}

// createIntent handles POST /create-payment-intent requests.
func (handler *Handler) createIntent(writer http.ResponseWriter, request *http.Request) {
	var input intentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	intent, err := handler.service.CreateIntent(request.Context(), input.Price)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, intent)
}

// recordRequest is the JSON payload for POST /payments.
type recordRequest struct {
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
	PackageTitle  string  `json:"packageTitle"`
	Date          string  `json:"date"`
}

// record handles POST /payments requests.
func (handler *Handler) record(writer http.ResponseWriter, request *http.Request) {
	var input recordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Record(request.Context(), RecordInput{
		Email:         input.Email,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
		PackageTitle:  input.PackageTitle,
		Date:          input.Date,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// list handles GET /payments requests (admin only).
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	payments, err := handler.service.List(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, payments, pagination.NewMeta(page.Page, len(payments)))
}

// listByEmail handles GET /payments/{email} requests.
func (handler *Handler) listByEmail(writer http.ResponseWriter, request *http.Request) {
	payments, err := handler.service.ListByEmail(request.Context(), requestutil.Param(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, payments)
}
