package services

import (
	"errors"

	apperrors "github.com/CampusPrep-2025/placement-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Account errors
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is deliberately undifferentiated between an
	// unknown email and a wrong secret, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials, please check your email and password")
	ErrUserNotFound       = errors.New("user not found")

	// Roadmap errors
	ErrRoadmapExists = errors.New("a roadmap for this role already exists")

	// Drive errors
	ErrDriveNotFound = errors.New("drive not found")

	// Store errors
	ErrStoreUnavailable = errors.New("the backing store could not be read or written")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrDriveNotFound)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrRoadmapExists)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}
