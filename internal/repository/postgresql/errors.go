package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kurochkinivan/file_storage/internal/domain"
)

const uniqueViolationCode = "23505"

func createQueryError(op string, err error) error {
	return fmt.Errorf("%s: failed to create query: %w", op, err)
}

func executeQueryError(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: duplicate storage key: %w", op, err)
	}
	return fmt.Errorf("%s: failed to execute query: %w", op, err)
}

func scanRowError(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: duplicate storage key: %w", op, err)
	}
	return fmt.Errorf("%s: failed to scan row: %w", op, err)
}

// collectFileError reports a missing row as domain.ErrFileNotFound.
func collectFileError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrFileNotFound)
	}
	return fmt.Errorf("%s: failed to collect rows: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
