// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package auth exposes the token issuance endpoint.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shadowtrails/shadow/internal/platform/constants"
	requestutil "github.com/shadowtrails/shadow/internal/platform/request"
	"github.com/shadowtrails/shadow/internal/platform/respond"
	"github.com/shadowtrails/shadow/internal/platform/sec"
	"github.com/shadowtrails/shadow/internal/platform/validate"
)

// Handler implements the token endpoint.
type Handler struct {
	tokens *sec.TokenService
}

// NewHandler constructs a new [Handler] with the signing service.
func NewHandler(tokens *sec.TokenService) *Handler {
	return &Handler{tokens: tokens}
}

// Register mounts the token route. It is open: identity is asserted by the
// frontend after its own sign-in flow, the backend only vouches for the
// claims it was handed. That trust model is inherited from production.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/jwt", handler.issue)
}

// issueRequest is the JSON payload for POST /jwt.
type issueRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// issueResponse carries the signed token back to the client.
type issueResponse struct {
	Token string `json:"token"`
}

// issue handles POST /jwt requests.
func (handler *Handler) issue(writer http.ResponseWriter, request *http.Request) {
	var input issueRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if err := v.Required("email", input.Email).Email("email", input.Email).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.tokens.GenerateAccessToken(input.Email, input.Name, constants.AccessTokenTTL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, issueResponse{Token: token})
}
