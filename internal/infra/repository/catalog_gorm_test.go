package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/connect-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

func seedCategory(t *testing.T, repo *CatalogGormRepository, name string) *models.ServiceCategory {
	t.Helper()
	c := &models.ServiceCategory{CategoryName: name, IsActive: true}
	require.NoError(t, repo.CreateCategory(context.Background(), c))
	return c
}

func seedService(t *testing.T, repo *CatalogGormRepository, categoryID uint, name string) *models.Service {
	t.Helper()
	s := &models.Service{CategoryID: categoryID, ServiceName: name, IsActive: true}
	require.NoError(t, repo.CreateService(context.Background(), s))
	return s
}

func TestCatalogRepo_CategoriesOrderedByName(t *testing.T) {
	repo := NewCatalogGormRepository(dbtest.New(t))
	seedCategory(t, repo, "Plumbing")
	seedCategory(t, repo, "Electrical")

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electrical", categories[0].CategoryName)
	assert.Equal(t, "Plumbing", categories[1].CategoryName)
}

func TestCatalogRepo_CategoryNameTaken(t *testing.T) {
	repo := NewCatalogGormRepository(dbtest.New(t))
	ctx := context.Background()
	c := seedCategory(t, repo, "Plumbing")

	taken, err := repo.CategoryNameTaken(ctx, "Plumbing", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.CategoryNameTaken(ctx, "Plumbing", c.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	require.Error(t, repo.CreateCategory(ctx, &models.ServiceCategory{CategoryName: "Plumbing"}))
}

func TestCatalogRepo_ServiceNameTakenIgnoresCase(t *testing.T) {
	repo := NewCatalogGormRepository(dbtest.New(t))
	ctx := context.Background()
	plumbing := seedCategory(t, repo, "Plumbing")
	electrical := seedCategory(t, repo, "Electrical")
	s := seedService(t, repo, plumbing.ID, "Pipe Repair")

	taken, err := repo.ServiceNameTaken(ctx, plumbing.ID, "pipe repair", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ServiceNameTaken(ctx, plumbing.ID, "pipe repair", s.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ServiceNameTaken(ctx, electrical.ID, "Pipe Repair", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestCatalogRepo_ListServicesFilter(t *testing.T) {
	repo := NewCatalogGormRepository(dbtest.New(t))
	ctx := context.Background()
	plumbing := seedCategory(t, repo, "Plumbing")
	electrical := seedCategory(t, repo, "Electrical")
	seedService(t, repo, plumbing.ID, "Pipe Repair")
	seedService(t, repo, plumbing.ID, "Drain Cleaning")
	seedService(t, repo, electrical.ID, "Wiring")

	all, err := repo.ListServices(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	only, err := repo.ListServices(ctx, &plumbing.ID)
	require.NoError(t, err)
	require.Len(t, only, 2)
	assert.Equal(t, "Drain Cleaning", only[0].ServiceName)
	assert.Equal(t, "Plumbing", only[0].Category.CategoryName)
}

func TestCatalogRepo_DeleteCategoryCascades(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()
	plumbing := seedCategory(t, repo, "Plumbing")
	electrical := seedCategory(t, repo, "Electrical")
	seedService(t, repo, plumbing.ID, "Pipe Repair")
	kept := seedService(t, repo, electrical.ID, "Wiring")

	require.NoError(t, repo.DeleteCategory(ctx, plumbing.ID))

	_, err := repo.GetCategory(ctx, plumbing.ID)
	assert.True(t, httperr.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Where("category_id = ?", plumbing.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err = repo.GetService(ctx, kept.ID)
	assert.NoError(t, err)

	assert.True(t, httperr.IsNotFound(repo.DeleteCategory(ctx, plumbing.ID)))
}

func TestCatalogRepo_DeleteService(t *testing.T) {
	repo := NewCatalogGormRepository(dbtest.New(t))
	ctx := context.Background()
	c := seedCategory(t, repo, "Plumbing")
	s := seedService(t, repo, c.ID, "Pipe Repair")

	require.NoError(t, repo.DeleteService(ctx, s.ID))
	assert.True(t, httperr.IsNotFound(repo.DeleteService(ctx, s.ID)))

	_, err := repo.GetCategory(ctx, c.ID)
	assert.NoError(t, err)
}

func TestCatalogRepo_UpdateAfterDeleteDoesNotResurrect(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()
	c := seedCategory(t, repo, "Plumbing")
	s := seedService(t, repo, c.ID, "Pipe Repair")

	loadedService, err := repo.GetService(ctx, s.ID)
	require.NoError(t, err)
	loadedCategory, err := repo.GetCategory(ctx, c.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCategory(ctx, c.ID))

	loadedService.ServiceName = "Leak Repair"
	assert.True(t, httperr.IsNotFound(repo.UpdateService(ctx, loadedService)))
	loadedCategory.IsActive = false
	assert.True(t, httperr.IsNotFound(repo.UpdateCategory(ctx, loadedCategory)))

	var services, categories int64
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&models.ServiceCategory{}).Count(&categories).Error)
	assert.Zero(t, services)
	assert.Zero(t, categories)
}

func TestCatalogRepo_UpdateWritesZeroValues(t *testing.T) {
	repo := NewCatalogGormRepository(dbtest.New(t))
	ctx := context.Background()
	c := seedCategory(t, repo, "Plumbing")

	c.IsActive = false
	require.NoError(t, repo.UpdateCategory(ctx, c))

	stored, err := repo.GetCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
