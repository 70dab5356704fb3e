// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowtrails/shadow/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline on titles the catalogue
actually sees.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "Sundarbans Mangrove Cruise", "sundarbans-mangrove-cruise"},
		{"accents", "Café à São Paulo", "cafe-a-sao-paulo"},
		{"punctuation", "7 Days & 6 Nights!", "7-days-6-nights"},
		{"extra_spacing", "  Sajek   Valley  ", "sajek-valley"},
		{"already_slug", "cox-bazar-beach", "cox-bazar-beach"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
