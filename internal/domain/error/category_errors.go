package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist or
	// belongs to another user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a user already has a category
	// with the same name, compared case-insensitively.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrNegativeBudget is returned when a category budget is below zero.
	ErrNegativeBudget = errors.New("budget must not be negative")
)

// Category error codes.
// Format: CAT-XXYYYY where XX is the area and YYYY the specific error.
const (
	ErrCodeCategoryNotFound    = "CAT-010001"
	ErrCodeCategoryNameExists  = "CAT-010002"
	ErrCodeNegativeBudget      = "CAT-010003"
	ErrCodeInvalidCategoryName = "CAT-010004"
)

// NewCategoryNotFound creates the not-found error for categories.
func NewCategoryNotFound() *DomainError {
	return New(KindNotFound, ErrCodeCategoryNotFound, "category not found", ErrCategoryNotFound)
}

// NewCategoryNameExists creates the conflict error for duplicate names.
func NewCategoryNameExists() *DomainError {
	return New(KindConflict, ErrCodeCategoryNameExists, "a category with this name already exists", ErrCategoryNameExists)
}
