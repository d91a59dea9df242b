package shared

import (
	"errors"

	"salon-site/internal/infra"
	"salon-site/internal/infra/db"
	"salon-site/internal/pkg/errs"
)

// Store outcome sentinels shared by command and query usecases.
// ErrStoreNotConfigured / ErrSchemaNotApplied are operational failures
// (deployment must be fixed); ErrStoreFailure is everything else the
// store rejected. The handler maps the first two to configuration
// errors and never exposes the underlying detail.
var (
	ErrStoreNotConfigured = errs.New("store is not configured")
	ErrSchemaNotApplied   = errs.New("store schema is not applied")
	ErrStoreFailure       = errs.New("store operation failed")
)

// MarkStoreError converts infrastructure error kinds into the shared
// sentinels. DUPLICATE_KEY and NOT_FOUND are left untouched so callers
// can attach operation-specific meaning to them.
func MarkStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotConfigured):
		return errs.Mark(err, ErrStoreNotConfigured)
	case infra.IsKind(err, infra.KindNotConfigured):
		return errs.Mark(err, ErrStoreNotConfigured)
	case infra.IsKind(err, infra.KindMissingRelation):
		return errs.Mark(err, ErrSchemaNotApplied)
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindNotFound):
		return err
	default:
		return errs.Mark(err, ErrStoreFailure)
	}
}
