// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Every list endpoint in the API paginates the same way: a 0-indexed "page"
// query parameter and a fixed page size of 10 documents, translated into
// skip/limit on the store query. An absent or invalid page parameter always
// means page 0 — there is no unbounded listing mode.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// PageSize is the fixed number of documents per page across all endpoints.
	PageSize = 10

	// DefaultPage is the starting page (0-indexed).
	DefaultPage = 0
)

// Params holds the parsed page index from a request's query string.
type Params struct {
	Page int
}

// Skip returns the number of documents to skip for the current page.
func (p Params) Skip() int64 {
	if p.Page <= 0 {
		return 0
	}
	return int64(p.Page) * PageSize
}

// Limit returns the maximum number of documents per page.
//
// There is no upper bound on the page index; a page past the end of the
// collection yields an empty result, never an error.
func (p Params) Limit() int64 {
	return PageSize
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Count int `json:"count"`
}

// NewMeta constructs pagination metadata for a response.
//
// Count is the number of documents actually returned on this page, which is
// how clients detect the final page (count < size).
func NewMeta(page, count int) Meta {
	return Meta{
		Page:  page,
		Size:  PageSize,
		Count: count,
	}
}

// FromRequest parses the "page" query parameter from an HTTP request.
//
// Invalid or negative values fall back to [DefaultPage].
func FromRequest(r *http.Request) Params {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return Params{Page: DefaultPage}
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return Params{Page: DefaultPage}
	}

	return Params{Page: page}
}
