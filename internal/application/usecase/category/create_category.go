// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 60

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID string
	Name   string
	Budget decimal.Decimal // Optional, defaults to 0
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. Name uniqueness is checked inside
// the collection's critical section so concurrent creates cannot both pass.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxCategoryNameLength {
		return nil, domainerror.New(
			domainerror.KindValidation,
			domainerror.ErrCodeInvalidCategoryName,
			fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength),
			nil,
		)
	}
	if input.Budget.IsNegative() {
		return nil, domainerror.New(
			domainerror.KindValidation,
			domainerror.ErrCodeNegativeBudget,
			"budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	var created *entity.Category
	err := uc.categoryRepo.Update(ctx, func(categories []entity.Category) ([]entity.Category, error) {
		if nameTaken(categories, input.UserID, name, "") {
			return nil, domainerror.NewCategoryNameExists()
		}
		created = entity.NewCategory(input.UserID, name, input.Budget)
		return append(categories, *created), nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateCategoryOutput{Category: created}, nil
}

// nameTaken reports whether another category of the same user already uses
// the name, compared case-insensitively. excludeID skips the category being
// renamed.
func nameTaken(categories []entity.Category, userID, name, excludeID string) bool {
	for _, category := range categories {
		if category.UserID != userID || category.ID == excludeID {
			continue
		}
		if category.NameEquals(name) {
			return true
		}
	}
	return false
}
