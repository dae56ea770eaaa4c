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

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged.
type UpdateCategoryInput struct {
	CategoryID string
	UserID     string
	Name       *string
	Budget     *decimal.Decimal
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update. A category owned by another user is
// reported as not found, never as forbidden.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxCategoryNameLength {
			return nil, domainerror.New(
				domainerror.KindValidation,
				domainerror.ErrCodeInvalidCategoryName,
				fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength),
				nil,
			)
		}
	}
	if input.Budget != nil && input.Budget.IsNegative() {
		return nil, domainerror.New(
			domainerror.KindValidation,
			domainerror.ErrCodeNegativeBudget,
			"budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	var updated *entity.Category
	err := uc.categoryRepo.Update(ctx, func(categories []entity.Category) ([]entity.Category, error) {
		index := indexOwnedBy(categories, input.CategoryID, input.UserID)
		if index < 0 {
			return nil, domainerror.NewCategoryNotFound()
		}
		next := categories[index]
		if input.Name != nil {
			// A renamed category must still be unique among the user's
			// other categories.
			if nameTaken(categories, input.UserID, name, next.ID) {
				return nil, domainerror.NewCategoryNameExists()
			}
			next.Name = name
		}
		if input.Budget != nil {
			next.Budget = *input.Budget
		}
		categories[index] = next
		updated = &next
		return categories, nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateCategoryOutput{Category: updated}, nil
}

// indexOwnedBy returns the index of the category with the given id and
// owner, or -1.
func indexOwnedBy(categories []entity.Category, id, userID string) int {
	for i, category := range categories {
		if category.ID == id && category.UserID == userID {
			return i
		}
	}
	return -1
}
