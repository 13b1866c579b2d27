package account

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

// UpdateSystemManager edits another manager's account on behalf of an
// admin. The target must own a system manager profile.
type UpdateSystemManager struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUpdateSystemManager(
	repo domain.Repository,
	audit *audit.Logger,
) *UpdateSystemManager {
	return &UpdateSystemManager{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateSystemManager) Execute(
	ctx context.Context,
	actor *models.User,
	userID uint,
	in UpdateInfoInput,
) (*models.SystemManager, error) {

	manager, err := uc.repo.FindSystemManager(ctx, userID)
	if err != nil {
		return nil, err
	}

	in.CompanyName = nil
	p := &Profile{User: &manager.User, Manager: manager}
	if err := applyContactFields(ctx, uc.repo, p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAccount(ctx, p.User, nil, manager); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorRef(actor),
		Action:   "system_manager_updated",
		Entity:   "user",
		EntityID: userID,
	})

	return manager, nil
}

type DeleteSystemManager struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDeleteSystemManager(
	repo domain.Repository,
	audit *audit.Logger,
) *DeleteSystemManager {
	return &DeleteSystemManager{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the manager's user record, and with it the profile.
func (uc *DeleteSystemManager) Execute(
	ctx context.Context,
	actor *models.User,
	userID uint,
) error {

	if _, err := uc.repo.FindSystemManager(ctx, userID); err != nil {
		return err
	}

	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorRef(actor),
		Action:   "system_manager_deleted",
		Entity:   "user",
		EntityID: userID,
	})
	return nil
}

func actorRef(actor *models.User) *uint {
	if actor == nil {
		return nil
	}
	id := actor.ID
	return &id
}
