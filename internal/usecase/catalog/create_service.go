package catalog

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type ServiceInput struct {
	CategoryID  *uint
	ServiceName *string
	Description *string
	IsActive    *bool
}

type CreateService struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewCreateService(
	repo domain.Repository,
	audit *audit.Logger,
) *CreateService {
	return &CreateService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	actor *models.User,
	in ServiceInput,
) (*models.Service, error) {

	missing := &httperr.ValidationError{}
	if in.CategoryID == nil {
		missing.Add("category", "This field is required.")
	}
	if in.ServiceName == nil {
		missing.Add("service_name", "This field is required.")
	}
	if err := missing.OrNil(); err != nil {
		return nil, err
	}

	category, err := domain.LoadCategory(ctx, uc.repo, *in.CategoryID)
	if err != nil {
		return nil, err
	}

	name := trimmedName(in.ServiceName)
	if err := domain.CheckServiceUnique(ctx, uc.repo, category.ID, name, 0); err != nil {
		return nil, err
	}

	service := &models.Service{
		CategoryID:  category.ID,
		ServiceName: name,
		Description: in.Description,
		IsActive:    true,
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}

	if err := uc.repo.CreateService(ctx, service); err != nil {
		return nil, err
	}
	service.Category = *category

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorID(actor),
		Action:   "service_created",
		Entity:   "service",
		EntityID: service.ID,
		Metadata: map[string]any{"category_id": category.ID},
	})

	return service, nil
}
