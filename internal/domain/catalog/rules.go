package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

const MaxNameLength = 255

const (
	MsgCategoryNameTaken = "service category with this category name already exists."
	MsgServiceExists     = "This service already exists in the selected category."
	MsgBlank             = "This field may not be blank."
)

func MsgCategoryMissing(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

func MsgTooLong() string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", MaxNameLength)
}

// CheckName rejects blank or over-long names.
func CheckName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return httperr.Invalid(field, MsgBlank)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return httperr.Invalid(field, MsgTooLong())
	}
	return nil
}

// CheckCategoryName applies the field rules and the exact-match uniqueness
// rule, ignoring excludeID.
func CheckCategoryName(ctx context.Context, repo Repository, name string, excludeID uint) error {
	if err := CheckName("category_name", name); err != nil {
		return err
	}

	taken, err := repo.CategoryNameTaken(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.Invalid("category_name", MsgCategoryNameTaken)
	}
	return nil
}

// CheckServiceUnique rejects a name colliding case-insensitively with
// another service of the same category. The error does not say which
// record collided.
func CheckServiceUnique(ctx context.Context, repo Repository, categoryID uint, name string, excludeID uint) error {
	if err := CheckName("service_name", name); err != nil {
		return err
	}

	taken, err := repo.ServiceNameTaken(ctx, categoryID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.Invalid(httperr.NonFieldErrors, MsgServiceExists)
	}
	return nil
}

// LoadCategory fetches the referenced category, reporting a missing one as
// a field error on "category" rather than a 404.
func LoadCategory(ctx context.Context, repo Repository, categoryID uint) (*models.ServiceCategory, error) {
	category, err := repo.GetCategory(ctx, categoryID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.Invalid("category", MsgCategoryMissing(categoryID))
		}
		return nil, err
	}
	return category, nil
}
