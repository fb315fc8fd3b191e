package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// translateUniqueViolation maps a postgres unique-constraint violation onto
// the given domain error so integrity failures keep their own class in the
// taxonomy. Any other error passes through unchanged.
func translateUniqueViolation(err, domainErr error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return domainErr
	}
	return err
}
