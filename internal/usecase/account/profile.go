package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	"github.com/BruksfildServices01/connect-marketplace/internal/validators"
)

// Profile is a user with whichever role profiles it owns.
type Profile struct {
	User     *models.User
	Provider *models.ServiceProvider
	Manager  *models.SystemManager
}

// LoadProfile fetches the user and its profiles; missing profiles are nil.
func LoadProfile(ctx context.Context, repo domain.Repository, userID uint) (*Profile, error) {
	user, err := repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &Profile{User: user}

	provider, err := repo.FindServiceProvider(ctx, userID)
	switch {
	case err == nil:
		p.Provider = provider
	case !httperr.IsNotFound(err):
		return nil, err
	}

	manager, err := repo.FindSystemManager(ctx, userID)
	switch {
	case err == nil:
		p.Manager = manager
	case !httperr.IsNotFound(err):
		return nil, err
	}

	return p, nil
}

type UpdateInfoInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	CompanyName *string
}

type UpdateInfo struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUpdateInfo(
	repo domain.Repository,
	audit *audit.Logger,
) *UpdateInfo {
	return &UpdateInfo{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies any subset of the contact fields to the user. The phone
// number goes to whichever profile exists; the company name only applies
// to a service provider profile.
func (uc *UpdateInfo) Execute(
	ctx context.Context,
	actor *models.User,
	userID uint,
	in UpdateInfoInput,
) (*Profile, error) {

	p, err := LoadProfile(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}

	if err := applyContactFields(ctx, uc.repo, p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAccount(ctx, p.User, p.Provider, p.Manager); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorRef(actor),
		Action:   "user_info_updated",
		Entity:   "user",
		EntityID: p.User.ID,
	})

	return p, nil
}

func applyContactFields(ctx context.Context, repo domain.Repository, p *Profile, in UpdateInfoInput) error {
	if err := domain.CheckProfileFields(in.PhoneNumber, in.CompanyName); err != nil {
		return err
	}

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if err := domain.CheckEmailAvailable(ctx, repo, email, p.User.ID); err != nil {
			return err
		}
		p.User.Email = email
		p.User.Username = email
	}
	if in.FirstName != nil {
		p.User.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		p.User.LastName = strings.TrimSpace(*in.LastName)
	}

	if in.PhoneNumber != nil {
		phone := validators.NormalizePhone(*in.PhoneNumber)
		if p.Provider != nil {
			p.Provider.PhoneNumber = phone
		}
		if p.Manager != nil {
			p.Manager.PhoneNumber = phone
		}
	}
	if in.CompanyName != nil && p.Provider != nil {
		p.Provider.CompanyName = trimmedOrNil(in.CompanyName)
	}
	return nil
}

type ChangePassword struct {
	repo   domain.Repository
	hasher auth.PasswordHasher
	audit  *audit.Logger
}

func NewChangePassword(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	audit *audit.Logger,
) *ChangePassword {
	return &ChangePassword{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *ChangePassword) Execute(
	ctx context.Context,
	userID uint,
	previous string,
	next string,
	confirm string,
) error {

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := domain.CheckPasswordChange(uc.hasher, user.PasswordHash, previous, next, confirm); err != nil {
		return err
	}

	hash, err := uc.hasher.Hash(next)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		ActorID:  &user.ID,
		Action:   "password_changed",
		Entity:   "user",
		EntityID: user.ID,
	})
	return nil
}
