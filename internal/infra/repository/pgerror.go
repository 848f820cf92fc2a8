package repository

import (
	"errors"

	"parkspace/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

// kindOf classifies a low-level Postgres error into a repository kind.
// Exclusion violations are the storage constraint arbitrating confirmation
// races and must stay distinguishable from plain failures.
func kindOf(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return infra.KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return infra.KindForeignKeyViolated
	case pgErrCodeExclusionViolation:
		return infra.KindConflict
	default:
		return infra.KindDBFailure
	}
}
