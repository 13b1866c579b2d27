package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AccountGormRepository)(nil)

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AccountGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, lookupErr(err, "User")
	}
	return &user, nil
}

func (r *AccountGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, lookupErr(err, "User")
	}
	return &user, nil
}

func (r *AccountGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	excludeUserID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email)

	if excludeUserID != 0 {
		q = q.Where("id <> ?", excludeUserID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) UpdatePassword(
	ctx context.Context,
	userID uint,
	passwordHash string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("User")
	}
	return nil
}

func (r *AccountGormRepository) DeleteUser(
	ctx context.Context,
	userID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ServiceProvider{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.SystemManager{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("User")
		}
		return nil
	})
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *AccountGormRepository) CreateServiceProvider(
	ctx context.Context,
	user *models.User,
	profile *models.ServiceProvider,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, user); err != nil {
			return err
		}

		profile.UserID = user.ID
		if err := tx.Omit(clause.Associations).Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create service provider: %w", err)
		}
		profile.User = *user
		return nil
	})
}

func (r *AccountGormRepository) CreateSystemManager(
	ctx context.Context,
	user *models.User,
	profile *models.SystemManager,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, user); err != nil {
			return err
		}

		profile.UserID = user.ID
		if err := tx.Omit(clause.Associations).Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create system manager: %w", err)
		}
		profile.User = *user
		return nil
	})
}

func (r *AccountGormRepository) FindServiceProvider(
	ctx context.Context,
	userID uint,
) (*models.ServiceProvider, error) {

	var profile models.ServiceProvider
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, lookupErr(err, "Service provider")
	}
	return &profile, nil
}

func (r *AccountGormRepository) FindSystemManager(
	ctx context.Context,
	userID uint,
) (*models.SystemManager, error) {

	var profile models.SystemManager
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, lookupErr(err, "System manager")
	}
	return &profile, nil
}

func (r *AccountGormRepository) ListSystemManagers(
	ctx context.Context,
) ([]models.SystemManager, error) {

	var managers []models.SystemManager
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("user_id ASC").
		Find(&managers).Error; err != nil {
		return nil, err
	}
	return managers, nil
}

func (r *AccountGormRepository) SaveAccount(
	ctx context.Context,
	user *models.User,
	provider *models.ServiceProvider,
	manager *models.SystemManager,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRow(tx, user, "User"); err != nil {
			if httperr.IsNotFound(err) {
				return err
			}
			if isUniqueViolation(err) {
				return httperr.Invalid("email", domain.MsgEmailTaken)
			}
			return fmt.Errorf("failed to save user: %w", err)
		}

		if provider != nil {
			if err := updateRow(tx, provider, "Service provider"); err != nil {
				if httperr.IsNotFound(err) {
					return err
				}
				return fmt.Errorf("failed to save service provider: %w", err)
			}
		}
		if manager != nil {
			if err := updateRow(tx, manager, "System manager"); err != nil {
				if httperr.IsNotFound(err) {
					return err
				}
				return fmt.Errorf("failed to save system manager: %w", err)
			}
		}
		return nil
	})
}

// createUser inserts the user; a unique violation on email or username
// (always the email) becomes the email field error.
func createUser(tx *gorm.DB, user *models.User) error {
	if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.Invalid("email", domain.MsgEmailTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
