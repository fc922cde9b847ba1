package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidID is returned when an identifier is not a valid document id.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrNotFound is the base error for any missing document.
	ErrNotFound = errors.New("not found")

	// ErrClientNotFound indicates a referenced client does not exist.
	ErrClientNotFound = fmt.Errorf("Client %w", ErrNotFound)

	// ErrCampaignNotFound indicates a campaign, looked up directly or as a
	// parent reference, does not exist.
	ErrCampaignNotFound = fmt.Errorf("Campaign %w", ErrNotFound)
)

// FieldError describes a single invalid payload field. Field uses the JSON
// name of the field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload fails schema validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StorageError wraps a failure reported by the document store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
