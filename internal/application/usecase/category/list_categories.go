package category

import (
	"context"
	"slices"
	"strings"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for category listing.
type ListCategoriesInput struct {
	UserID string
}

// ListCategoriesOutput represents the output of category listing.
type ListCategoriesOutput struct {
	Categories []entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns the user's categories sorted by name ascending.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]entity.Category, 0, len(categories))
	for _, category := range categories {
		if category.UserID == input.UserID {
			owned = append(owned, category)
		}
	}
	// Case-insensitive, stable so equal names keep insertion order.
	slices.SortStableFunc(owned, func(a, b entity.Category) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return &ListCategoriesOutput{Categories: owned}, nil
}
