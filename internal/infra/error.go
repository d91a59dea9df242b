package infra

import (
	"errors"

	"salon-site/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound       RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure      RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey   RepositoryErrorKind = "DUPLICATE_KEY"
	KindNotConfigured  RepositoryErrorKind = "NOT_CONFIGURED"
	KindMissingRelation RepositoryErrorKind = "MISSING_RELATION"
)

// PostgreSQL error codes translated to kinds
const (
	pgCodeUniqueViolation = "23505"
	pgCodeUndefinedTable  = "42P01"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	} else if err != nil {
		kind = classifyPgError(err)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// classifyPgError maps the store's error codes onto kinds the usecase
// layer can switch on. An undefined relation means the schema was never
// applied: an operational problem, not a data one.
func classifyPgError(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case pgCodeUniqueViolation:
		return KindDuplicateKey
	case pgCodeUndefinedTable:
		return KindMissingRelation
	default:
		return KindDBFailure
	}
}
