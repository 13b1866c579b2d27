package catalog

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type DeleteCategory struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDeleteCategory(
	repo domain.Repository,
	audit *audit.Logger,
) *DeleteCategory {
	return &DeleteCategory{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes the category and, with it, all of its services.
func (uc *DeleteCategory) Execute(
	ctx context.Context,
	actor *models.User,
	categoryID uint,
) error {

	if err := uc.repo.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorID(actor),
		Action:   "category_deleted",
		Entity:   "service_category",
		EntityID: categoryID,
	})
	return nil
}

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDeleteService(
	repo domain.Repository,
	audit *audit.Logger,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteService) Execute(
	ctx context.Context,
	actor *models.User,
	serviceID uint,
) error {

	if err := uc.repo.DeleteService(ctx, serviceID); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorID(actor),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: serviceID,
	})
	return nil
}
