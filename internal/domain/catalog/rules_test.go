package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type stubRepo struct {
	Repository
	categories map[uint]*models.ServiceCategory
	names      map[string]uint
	services   map[uint]map[string]uint
}

func (r stubRepo) GetCategory(_ context.Context, id uint) (*models.ServiceCategory, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, httperr.ErrNotFound("Service category")
}

func (r stubRepo) CategoryNameTaken(_ context.Context, name string, exclude uint) (bool, error) {
	id, ok := r.names[name]
	return ok && id != exclude, nil
}

func (r stubRepo) ServiceNameTaken(_ context.Context, categoryID uint, name string, exclude uint) (bool, error) {
	id, ok := r.services[categoryID][strings.ToLower(name)]
	return ok && id != exclude, nil
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, CheckName("service_name", "Pipe Repair"))

	v, ok := httperr.AsValidation(CheckName("service_name", "   "))
	require.True(t, ok)
	assert.Equal(t, []string{MsgBlank}, v.Fields["service_name"])

	v, ok = httperr.AsValidation(CheckName("service_name", strings.Repeat("a", MaxNameLength+1)))
	require.True(t, ok)
	assert.Equal(t, []string{MsgTooLong()}, v.Fields["service_name"])
}

func TestCheckCategoryName_ExactMatch(t *testing.T) {
	repo := stubRepo{names: map[string]uint{"Plumbing": 1}}
	ctx := context.Background()

	v, ok := httperr.AsValidation(CheckCategoryName(ctx, repo, "Plumbing", 0))
	require.True(t, ok)
	assert.Equal(t, []string{MsgCategoryNameTaken}, v.Fields["category_name"])

	assert.NoError(t, CheckCategoryName(ctx, repo, "plumbing", 0))
	assert.NoError(t, CheckCategoryName(ctx, repo, "Plumbing", 1))
}

func TestCheckServiceUnique_CaseInsensitive(t *testing.T) {
	repo := stubRepo{services: map[uint]map[string]uint{
		1: {"pipe repair": 10},
	}}
	ctx := context.Background()

	v, ok := httperr.AsValidation(CheckServiceUnique(ctx, repo, 1, "PIPE REPAIR", 0))
	require.True(t, ok)
	assert.Equal(t, []string{MsgServiceExists}, v.Fields[httperr.NonFieldErrors])

	assert.NoError(t, CheckServiceUnique(ctx, repo, 2, "Pipe Repair", 0))
	assert.NoError(t, CheckServiceUnique(ctx, repo, 1, "Pipe Repair", 10))
}

func TestLoadCategory_MissingIsFieldError(t *testing.T) {
	repo := stubRepo{categories: map[uint]*models.ServiceCategory{
		1: {ID: 1, CategoryName: "Plumbing"},
	}}

	c, err := LoadCategory(context.Background(), repo, 1)
	require.NoError(t, err)
	assert.Equal(t, "Plumbing", c.CategoryName)

	_, err = LoadCategory(context.Background(), repo, 99)
	v, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{MsgCategoryMissing(99)}, v.Fields["category"])
	assert.False(t, httperr.IsNotFound(err))
}
