package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *CatalogGormRepository) ListCategories(
	ctx context.Context,
) ([]models.ServiceCategory, error) {

	var categories []models.ServiceCategory
	if err := r.db.WithContext(ctx).
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogGormRepository) GetCategory(
	ctx context.Context,
	id uint,
) (*models.ServiceCategory, error) {

	var category models.ServiceCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, lookupErr(err, "Service category")
	}
	return &category, nil
}

func (r *CatalogGormRepository) CategoryNameTaken(
	ctx context.Context,
	name string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.ServiceCategory{}).
		Where("category_name = ?", name)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogGormRepository) CreateCategory(
	ctx context.Context,
	category *models.ServiceCategory,
) error {

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.Invalid("category_name", domain.MsgCategoryNameTaken)
		}
		return fmt.Errorf("failed to create service category: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) UpdateCategory(
	ctx context.Context,
	category *models.ServiceCategory,
) error {

	if err := updateRow(r.db.WithContext(ctx), category, "Service category"); err != nil {
		if httperr.IsNotFound(err) {
			return err
		}
		if isUniqueViolation(err) {
			return httperr.Invalid("category_name", domain.MsgCategoryNameTaken)
		}
		return fmt.Errorf("failed to update service category: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) DeleteCategory(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Service{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.ServiceCategory{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("Service category")
		}
		return nil
	})
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	categoryID *uint,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Preload("Category")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	var services []models.Service
	if err := q.
		Order("service_name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&service, id).Error; err != nil {
		return nil, lookupErr(err, "Service")
	}
	return &service, nil
}

func (r *CatalogGormRepository) ServiceNameTaken(
	ctx context.Context,
	categoryID uint,
	name string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("category_id = ? AND LOWER(service_name) = LOWER(?)", categoryID, name)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	service *models.Service,
) error {

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(service).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.Invalid(httperr.NonFieldErrors, domain.MsgServiceExists)
		}
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	service *models.Service,
) error {

	if err := updateRow(r.db.WithContext(ctx), service, "Service"); err != nil {
		if httperr.IsNotFound(err) {
			return err
		}
		if isUniqueViolation(err) {
			return httperr.Invalid(httperr.NonFieldErrors, domain.MsgServiceExists)
		}
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("Service")
	}
	return nil
}
