package repository

import (
	"errors"

	"tour-booking-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

// wrapErr classifies a pgx error into a repository error kind.
func wrapErr(msg string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	case isPgCode(err, pgCodeUniqueViolation):
		return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
	case isPgCode(err, pgCodeForeignKeyViolation):
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
	default:
		return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
	}
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
