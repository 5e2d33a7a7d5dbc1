package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAccountNotFound  = errors.New("account not found")

	ErrUnauthorized          = errors.New("user is not authorised")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrProvinceAlreadyExists = errors.New("a category already exists for this province")

	ErrImageStoreFailure = errors.New("image store request failed")
	ErrDatabaseError     = errors.New("database error")
)

// ValidationError carries per-field detail so the boundary layer can
// report every failing field at once.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (v *ValidationError) Add(field, message string) {
	v.Fields[field] = message
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v.Fields[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
