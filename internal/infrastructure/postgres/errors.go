package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de la capa de datos, independientes del driver.
const (
	CodeDuplicateKey        = "duplicate_key"
	CodeForeignKeyViolation = "foreign_key_violation"
	CodeNotNullViolation    = "not_null_violation"
	CodeCheckViolation      = "check_violation"
	CodeNoRows              = "no_rows"
	CodeQueueFull           = "pool_queue_full"
	CodeTimeout             = "timeout"
	CodeUnknown             = "unknown"
)

// DatabaseError error clasificado de PostgreSQL. SQLState, Constraint y Table solo
// vienen informados cuando el servidor respondió con un error.
type DatabaseError struct {
	Code       string
	SQLState   string
	Constraint string
	Table      string
	Err        error
}

func (e *DatabaseError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("db %s (%s): %v", e.Code, e.Constraint, e.Err)
	}
	return fmt.Sprintf("db %s: %v", e.Code, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// IsCode indica si err es un DatabaseError con el código dado.
func IsCode(err error, code string) bool {
	var dbErr *DatabaseError
	return errors.As(err, &dbErr) && dbErr.Code == code
}

var errQueueFull = errors.New("cola de espera de conexiones llena")

// classify convierte un error de pgx en *DatabaseError. Es idempotente.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DatabaseError{Code: CodeNoRows, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &DatabaseError{Code: CodeTimeout, Err: err}
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return &DatabaseError{Code: CodeUnknown, Err: err}
	}
	out := &DatabaseError{
		Code:       CodeUnknown,
		SQLState:   pgErr.Code,
		Constraint: pgErr.ConstraintName,
		Table:      pgErr.TableName,
		Err:        err,
	}
	switch pgErr.Code {
	case "23505":
		out.Code = CodeDuplicateKey
	case "23503":
		out.Code = CodeForeignKeyViolation
	case "23502":
		out.Code = CodeNotNullViolation
	case "23514":
		out.Code = CodeCheckViolation
	}
	return out
}
