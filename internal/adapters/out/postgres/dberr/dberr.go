// Package dberr maps gorm and driver errors onto the errs taxonomy.
// It requires gorm to be opened with TranslateError enabled, so unique
// violations surface as gorm.ErrDuplicatedKey.
package dberr

import (
	"context"
	"errors"

	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// Resource is the name reported in errs.UnavailableError.
const Resource = "postgres"

// Translate converts err for callers of a repository. paramName names the
// unique field reported on a duplicate key.
func Translate(err error, paramName string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewConflictErrorWithCause(paramName, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return errs.NewUnavailableError(Resource, err)
	}
}

// NotFound converts gorm.ErrRecordNotFound into errs.ObjectNotFoundError and
// translates everything else.
func NotFound(err error, paramName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return Translate(err, paramName)
}
