package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")

	// ErrDuplicateKey fires on unique-index violations (23505).
	ErrDuplicateKey = errors.New("duplicate value for unique field")
	// ErrForeignKeyViolation fires when a referenced row does not exist (23503).
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classifyWriteError maps driver-level constraint failures onto the package
// sentinels so callers can branch with errors.Is. The sqlite string checks
// keep the same sentinels firing under the test driver.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKeyViolation, pgErr.ConstraintName)
		}
		return err
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, msg)
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return fmt.Errorf("%w: %s", ErrForeignKeyViolation, msg)
	}
	return err
}
