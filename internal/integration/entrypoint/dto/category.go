package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
// A missing budget defaults to zero.
type CreateCategoryRequest struct {
	Name   string           `json:"name" binding:"required,min=1,max=60"`
	Budget *decimal.Decimal `json:"budget,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name   *string          `json:"name,omitempty" binding:"omitempty,min=1,max=60"`
	Budget *decimal.Decimal `json:"budget,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		Budget: category.Budget,
	}
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return CategoryListResponse{Categories: responses}
}
