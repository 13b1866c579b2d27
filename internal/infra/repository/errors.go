package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
)

const pgUniqueViolation = "23505"

// isUniqueViolation recognises a raw postgres unique_violation, as returned
// by the production connection, and the translated gorm error the SQLite
// test dialect produces.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// updateRow writes every column of an already loaded record. Unlike Save it
// never falls back to an insert: a row deleted in the meantime is NotFound.
func updateRow(tx *gorm.DB, record any, resource string) error {
	res := tx.Model(record).Select("*").Omit(clause.Associations).Updates(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(resource)
	}
	return nil
}

func lookupErr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(resource)
	}
	return fmt.Errorf("failed to load %s: %w", resource, err)
}
