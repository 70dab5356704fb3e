// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowtrails/shadow/pkg/pagination"
)

/*
TestParams_SkipLimit verifies the skip/limit arithmetic for page windows.
*/
func TestParams_SkipLimit(t *testing.T) {
	tests := []struct {
		name string
		page int
		skip int64
	}{
		{"first_page", 0, 0},
		{"second_page", 1, 10},
		{"tenth_page", 9, 90},
		{"negative_clamped", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Params{Page: tt.page}
			assert.Equal(t, tt.skip, p.Skip())
			assert.Equal(t, int64(pagination.PageSize), p.Limit())
		})
	}
}

/*
TestParams_DisjointWindows verifies that consecutive pages select disjoint,
gap-free document windows: for 15 documents, page 0 covers [0,10) and
page 1 covers [10,15).
*/
func TestParams_DisjointWindows(t *testing.T) {
	total := int64(15)

	first := pagination.Params{Page: 0}
	second := pagination.Params{Page: 1}

	// Page 0 window
	assert.Equal(t, int64(0), first.Skip())
	assert.Equal(t, int64(10), first.Skip()+first.Limit())

	// Page 1 starts exactly where page 0 ends
	assert.Equal(t, first.Skip()+first.Limit(), second.Skip())

	// Page 1 holds the 5 remaining documents
	remaining := total - second.Skip()
	assert.Equal(t, int64(5), remaining)

	// Page 2 is past the end: empty, not an error
	third := pagination.Params{Page: 2}
	assert.GreaterOrEqual(t, third.Skip(), total)
}

/*
TestFromRequest verifies query-string parsing and its fallbacks.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected int
	}{
		{"absent", "/guides", 0},
		{"zero", "/guides?page=0", 0},
		{"positive", "/guides?page=4", 4},
		{"negative", "/guides?page=-2", 0},
		{"not_a_number", "/guides?page=abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.target, nil)
			assert.Equal(t, tt.expected, pagination.FromRequest(request).Page)
		})
	}
}

/*
TestNewMeta verifies the response metadata shape.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 5)

	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, pagination.PageSize, meta.Size)
	assert.Equal(t, 5, meta.Count)
}
