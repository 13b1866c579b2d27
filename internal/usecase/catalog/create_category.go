package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type CategoryInput struct {
	CategoryName *string
	Description  *string
	IsActive     *bool
}

type CreateCategory struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewCreateCategory(
	repo domain.Repository,
	audit *audit.Logger,
) *CreateCategory {
	return &CreateCategory{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateCategory) Execute(
	ctx context.Context,
	actor *models.User,
	in CategoryInput,
) (*models.ServiceCategory, error) {

	name := trimmedName(in.CategoryName)

	if err := domain.CheckCategoryName(ctx, uc.repo, name, 0); err != nil {
		return nil, err
	}

	category := &models.ServiceCategory{
		CategoryName: name,
		Description:  in.Description,
		IsActive:     true,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if err := uc.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorID(actor),
		Action:   "category_created",
		Entity:   "service_category",
		EntityID: category.ID,
	})

	return category, nil
}

// trimmedName strips surrounding whitespace so padded names compare and
// store like their bare form. A nil name is blank.
func trimmedName(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func actorID(actor *models.User) *uint {
	if actor == nil {
		return nil
	}
	id := actor.ID
	return &id
}
