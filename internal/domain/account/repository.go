package account

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// EmailTaken reports whether another user (excludeUserID aside) already
	// holds the exact address. Pass 0 to check against every user.
	EmailTaken(
		ctx context.Context,
		email string,
		excludeUserID uint,
	) (bool, error)

	UpdatePassword(
		ctx context.Context,
		userID uint,
		passwordHash string,
	) error

	// DeleteUser removes the user together with its profiles.
	DeleteUser(
		ctx context.Context,
		userID uint,
	) error

	// -------- Profiles --------
	CreateServiceProvider(
		ctx context.Context,
		user *models.User,
		profile *models.ServiceProvider,
	) error

	CreateSystemManager(
		ctx context.Context,
		user *models.User,
		profile *models.SystemManager,
	) error

	FindServiceProvider(
		ctx context.Context,
		userID uint,
	) (*models.ServiceProvider, error)

	FindSystemManager(
		ctx context.Context,
		userID uint,
	) (*models.SystemManager, error)

	ListSystemManagers(
		ctx context.Context,
	) ([]models.SystemManager, error)

	// SaveAccount persists the user and whichever profiles are non-nil in
	// one transaction.
	SaveAccount(
		ctx context.Context,
		user *models.User,
		provider *models.ServiceProvider,
		manager *models.SystemManager,
	) error
}
