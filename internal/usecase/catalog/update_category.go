package catalog

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type UpdateCategory struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUpdateCategory(
	repo domain.Repository,
	audit *audit.Logger,
) *UpdateCategory {
	return &UpdateCategory{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update; nil fields keep their stored value.
func (uc *UpdateCategory) Execute(
	ctx context.Context,
	actor *models.User,
	categoryID uint,
	in CategoryInput,
) (*models.ServiceCategory, error) {

	category, err := uc.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if in.CategoryName != nil {
		name := trimmedName(in.CategoryName)
		if err := domain.CheckCategoryName(ctx, uc.repo, name, category.ID); err != nil {
			return nil, err
		}
		category.CategoryName = name
	}
	if in.Description != nil {
		category.Description = in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if err := uc.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorID(actor),
		Action:   "category_updated",
		Entity:   "service_category",
		EntityID: category.ID,
	})

	return category, nil
}
