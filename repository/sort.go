package repository

import "strings"

// SortConfig is the immutable allow-list for caller-supplied sort input.
// The sort field is interpolated into the ORDER BY clause rather than
// bound as a parameter, so the allow-list is the injection guard.
type SortConfig struct {
	allowedFields map[string]bool
	defaultField  string
}

// DefaultSortConfig allows sorting on title, vendor, type and updated_at,
// falling back to updated_at for anything else.
func DefaultSortConfig() SortConfig {
	return SortConfig{
		allowedFields: map[string]bool{
			"title":      true,
			"vendor":     true,
			"type":       true,
			"updated_at": true,
		},
		defaultField: "updated_at",
	}
}

// Normalize maps caller-supplied sort input onto a safe ORDER BY pair.
// Unknown fields silently fall back to the default; any direction other
// than a case-insensitive "asc" means descending.
func (c SortConfig) Normalize(field, direction string) (string, string) {
	if !c.allowedFields[field] {
		field = c.defaultField
	}
	if strings.EqualFold(direction, "asc") {
		return field, "ASC"
	}
	return field, "DESC"
}
