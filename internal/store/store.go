// Package store implements the entity repository and relationship maintainer
// over a gorm handle. Handlers hand it whitelisted JSON payloads as generic
// maps; it validates them fully before touching any table.
package store

import (
	"fmt"

	"github.com/skillbridge-dev/skillbridge/internal/apperrors"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// validateFields rejects payloads missing a required field or carrying any
// field outside required+optional. Runs before any mutation.
func validateFields(entity string, data map[string]any, required, optional []string) error {
	for _, field := range required {
		if _, ok := data[field]; !ok {
			return apperrors.MissingRequired(entity, required)
		}
	}

	valid := make(map[string]bool, len(required)+len(optional))
	for _, field := range required {
		valid[field] = true
	}
	for _, field := range optional {
		valid[field] = true
	}

	for field := range data {
		if !valid[field] {
			return apperrors.UnknownFields(append(append([]string{}, required...), optional...))
		}
	}

	return nil
}

func stringField(data map[string]any, field string) (string, error) {
	raw, ok := data[field]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &apperrors.ValidationError{
			Message:     "bad_entry",
			Description: fmt.Sprintf("Field %q must be a string", field),
		}
	}
	return s, nil
}

// uintField reads a JSON number as an unsigned id.
func uintField(data map[string]any, field string) (uint, error) {
	raw, ok := data[field]
	if !ok {
		return 0, nil
	}
	f, ok := raw.(float64)
	if !ok || f < 0 || f != float64(uint(f)) {
		return 0, &apperrors.ValidationError{
			Message:     "bad_entry",
			Description: fmt.Sprintf("Field %q must be a non-negative integer", field),
		}
	}
	return uint(f), nil
}

// popUintSlice removes a pseudo-field holding a JSON array of ids.
func popUintSlice(data map[string]any, field string) ([]uint, error) {
	raw, ok := data[field]
	if !ok {
		return nil, nil
	}
	delete(data, field)

	items, ok := raw.([]any)
	if !ok {
		return nil, &apperrors.ValidationError{
			Message:     "bad_entry",
			Description: fmt.Sprintf("Field %q must be a list of ids", field),
		}
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok || f < 0 || f != float64(uint(f)) {
			return nil, &apperrors.ValidationError{
				Message:     "bad_entry",
				Description: fmt.Sprintf("Field %q must be a list of ids", field),
			}
		}
		ids = append(ids, uint(f))
	}
	return ids, nil
}

// popStringSlice removes a pseudo-field holding a JSON array of tag names.
func popStringSlice(data map[string]any, field string) ([]string, error) {
	raw, ok := data[field]
	if !ok {
		return nil, nil
	}
	delete(data, field)

	items, ok := raw.([]any)
	if !ok {
		return nil, &apperrors.ValidationError{
			Message:     "bad_entry",
			Description: fmt.Sprintf("Field %q must be a list of names", field),
		}
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &apperrors.ValidationError{
				Message:     "bad_entry",
				Description: fmt.Sprintf("Field %q must be a list of names", field),
			}
		}
		names = append(names, s)
	}
	return names, nil
}

// strip drops empty values from an outward-facing entity view: empty strings,
// zero ids and empty collections are omitted rather than serialized.
func strip(entity map[string]any) map[string]any {
	stripped := make(map[string]any, len(entity))
	for key, value := range entity {
		switch v := value.(type) {
		case string:
			if v == "" {
				continue
			}
		case uint:
			if v == 0 {
				continue
			}
		case []uint:
			if len(v) == 0 {
				continue
			}
		case []string:
			if len(v) == 0 {
				continue
			}
		case nil:
			continue
		}
		stripped[key] = value
	}
	return stripped
}
