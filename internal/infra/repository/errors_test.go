package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/connect-marketplace/internal/db/dbtest"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestLookupErr(t *testing.T) {
	assert.True(t, httperr.IsNotFound(lookupErr(gorm.ErrRecordNotFound, "Service")))

	err := lookupErr(errors.New("conn reset"), "Service")
	assert.False(t, httperr.IsNotFound(err))
	assert.ErrorContains(t, err, "failed to load Service")
}

func TestCreateCategory_PostgresUniqueViolationBecomesFieldError(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:pg_unique", func(tx *gorm.DB) {
		_ = tx.AddError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_service_categories_category_name"})
	}))
	repo := NewCatalogGormRepository(db)

	err := repo.CreateCategory(context.Background(), &models.ServiceCategory{CategoryName: "Plumbing", IsActive: true})
	v, ok := httperr.AsValidation(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, []string{domain.MsgCategoryNameTaken}, v.Fields["category_name"])
}
