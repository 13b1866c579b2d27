package account

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	"github.com/BruksfildServices01/connect-marketplace/internal/observability/metrics"
	"github.com/BruksfildServices01/connect-marketplace/internal/validators"
)

type RegistrationInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	CompanyName *string
}

type RegisterServiceProvider struct {
	repo   domain.Repository
	hasher auth.PasswordHasher
	audit  *audit.Logger
}

func NewRegisterServiceProvider(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	audit *audit.Logger,
) *RegisterServiceProvider {
	return &RegisterServiceProvider{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

// Execute creates the user and its provider profile atomically.
func (uc *RegisterServiceProvider) Execute(
	ctx context.Context,
	in RegistrationInput,
) (*models.ServiceProvider, error) {

	user, err := prepareUser(ctx, uc.repo, uc.hasher, in, models.RoleServiceProvider)
	if err != nil {
		return nil, err
	}

	profile := &models.ServiceProvider{
		PhoneNumber: validators.NormalizePhone(in.PhoneNumber),
		CompanyName: trimmedOrNil(in.CompanyName),
	}

	if err := uc.repo.CreateServiceProvider(ctx, user, profile); err != nil {
		return nil, err
	}

	metrics.ObserveRegistration(user.Role)
	uc.audit.Record(ctx, audit.Event{
		ActorID:  &user.ID,
		Action:   "service_provider_registered",
		Entity:   "user",
		EntityID: user.ID,
	})

	return profile, nil
}

type SystemManagerInput struct {
	RegistrationInput
	Superuser bool
}

type RegisterSystemManager struct {
	repo   domain.Repository
	hasher auth.PasswordHasher
	audit  *audit.Logger
}

func NewRegisterSystemManager(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	audit *audit.Logger,
) *RegisterSystemManager {
	return &RegisterSystemManager{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

// Execute creates an admin user with a system manager profile. actor is the
// admin performing the call, nil when bootstrapping from the CLI.
func (uc *RegisterSystemManager) Execute(
	ctx context.Context,
	actor *models.User,
	in SystemManagerInput,
) (*models.SystemManager, error) {

	in.CompanyName = nil
	user, err := prepareUser(ctx, uc.repo, uc.hasher, in.RegistrationInput, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if in.Superuser {
		user.IsStaff = true
		user.IsSuperuser = true
	}

	profile := &models.SystemManager{
		PhoneNumber: validators.NormalizePhone(in.PhoneNumber),
	}

	if err := uc.repo.CreateSystemManager(ctx, user, profile); err != nil {
		return nil, err
	}

	metrics.ObserveRegistration(user.Role)
	uc.audit.Record(ctx, audit.Event{
		ActorID:  actorRef(actor),
		Action:   "system_manager_created",
		Entity:   "user",
		EntityID: user.ID,
	})

	return profile, nil
}

// prepareUser runs the registration rules and returns an unsaved user with
// a hashed password.
func prepareUser(
	ctx context.Context,
	repo domain.Repository,
	hasher auth.PasswordHasher,
	in RegistrationInput,
	role string,
) (*models.User, error) {

	v := &httperr.ValidationError{}
	if strings.TrimSpace(in.FirstName) == "" {
		v.Add("first_name", "This field is required.")
	}
	if strings.TrimSpace(in.LastName) == "" {
		v.Add("last_name", "This field is required.")
	}
	if utf8.RuneCountInString(in.Password) < domain.MinPasswordLength {
		v.Add("password", domain.MsgPasswordTooShort())
	}
	if err := domain.CheckProfileFields(&in.PhoneNumber, in.CompanyName); err != nil {
		if fields, ok := httperr.AsValidation(err); ok {
			for field, msgs := range fields.Fields {
				for _, msg := range msgs {
					v.Add(field, msg)
				}
			}
		}
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	email := validators.NormalizeEmail(in.Email)
	if err := domain.CheckEmailAvailable(ctx, repo, email, 0); err != nil {
		return nil, err
	}

	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Email:        email,
		Username:     email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
