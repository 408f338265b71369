package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortConfigNormalize(t *testing.T) {
	cfg := DefaultSortConfig()

	tests := []struct {
		name      string
		field     string
		direction string
		wantField string
		wantDir   string
	}{
		{"allowed field asc", "title", "asc", "title", "ASC"},
		{"allowed field upper asc", "vendor", "ASC", "vendor", "ASC"},
		{"allowed field desc", "type", "desc", "type", "DESC"},
		{"unknown field falls back", "price", "asc", "updated_at", "ASC"},
		{"injection attempt falls back", "title; DROP TABLE products", "asc", "updated_at", "ASC"},
		{"unknown direction is desc", "title", "sideways", "title", "DESC"},
		{"empty input", "", "", "updated_at", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, dir := cfg.Normalize(tt.field, tt.direction)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}
