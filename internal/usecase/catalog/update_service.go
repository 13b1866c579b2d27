package catalog

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUpdateService(
	repo domain.Repository,
	audit *audit.Logger,
) *UpdateService {
	return &UpdateService{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. The uniqueness rule runs against the
// resulting (category, name) pair, excluding the service itself.
func (uc *UpdateService) Execute(
	ctx context.Context,
	actor *models.User,
	serviceID uint,
	in ServiceInput,
) (*models.Service, error) {

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	category := service.Category
	if in.CategoryID != nil && *in.CategoryID != service.CategoryID {
		loaded, err := domain.LoadCategory(ctx, uc.repo, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		category = *loaded
	}

	name := service.ServiceName
	if in.ServiceName != nil {
		name = trimmedName(in.ServiceName)
	}

	if err := domain.CheckServiceUnique(ctx, uc.repo, category.ID, name, service.ID); err != nil {
		return nil, err
	}

	service.CategoryID = category.ID
	service.Category = category
	service.ServiceName = name
	if in.Description != nil {
		service.Description = in.Description
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}

	if err := uc.repo.UpdateService(ctx, service); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorID(actor),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: service.ID,
	})

	return service, nil
}
