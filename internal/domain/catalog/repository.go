package catalog

import (
	"context"

	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type Repository interface {
	// -------- Categories --------
	ListCategories(
		ctx context.Context,
	) ([]models.ServiceCategory, error)

	GetCategory(
		ctx context.Context,
		id uint,
	) (*models.ServiceCategory, error)

	CategoryNameTaken(
		ctx context.Context,
		name string,
		excludeID uint,
	) (bool, error)

	CreateCategory(
		ctx context.Context,
		category *models.ServiceCategory,
	) error

	UpdateCategory(
		ctx context.Context,
		category *models.ServiceCategory,
	) error

	// DeleteCategory removes the category and every service under it.
	DeleteCategory(
		ctx context.Context,
		id uint,
	) error

	// -------- Services --------
	ListServices(
		ctx context.Context,
		categoryID *uint,
	) ([]models.Service, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// ServiceNameTaken compares names case-insensitively within one
	// category, skipping excludeID (0 for none).
	ServiceNameTaken(
		ctx context.Context,
		categoryID uint,
		name string,
		excludeID uint,
	) (bool, error)

	CreateService(
		ctx context.Context,
		service *models.Service,
	) error

	UpdateService(
		ctx context.Context,
		service *models.Service,
	) error

	DeleteService(
		ctx context.Context,
		id uint,
	) error
}
