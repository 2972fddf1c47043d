package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_CodigosPostgres(t *testing.T) {
	cases := []struct {
		sqlState string
		want     string
	}{
		{"23505", CodeDuplicateKey},
		{"23503", CodeForeignKeyViolation},
		{"23502", CodeNotNullViolation},
		{"23514", CodeCheckViolation},
		{"42P01", CodeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.sqlState, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.sqlState, ConstraintName: "customers_identification_number_key", TableName: "customers"}
			err := classify(fmt.Errorf("insert: %w", pgErr))

			var dbErr *DatabaseError
			require.True(t, errors.As(err, &dbErr))
			assert.Equal(t, tc.want, dbErr.Code)
			assert.Equal(t, tc.sqlState, dbErr.SQLState)
			assert.Equal(t, "customers", dbErr.Table)
			assert.True(t, errors.As(err, &pgErr), "el error original sigue accesible")
		})
	}
}

func TestClassify_SinFilasYTimeout(t *testing.T) {
	assert.True(t, IsCode(classify(pgx.ErrNoRows), CodeNoRows))
	assert.True(t, IsCode(classify(fmt.Errorf("q: %w", context.DeadlineExceeded)), CodeTimeout))
	assert.True(t, IsCode(classify(errors.New("conexión rechazada")), CodeUnknown))
	assert.NoError(t, classify(nil))
}

func TestClassify_Idempotente(t *testing.T) {
	orig := &DatabaseError{Code: CodeQueueFull, Err: errQueueFull}
	assert.Same(t, orig, classify(orig))
}

func TestIsCode_ErrorEnvuelto(t *testing.T) {
	err := fmt.Errorf("list customers: %w", &DatabaseError{Code: CodeDuplicateKey, Err: errors.New("x")})
	assert.True(t, IsCode(err, CodeDuplicateKey))
	assert.False(t, IsCode(err, CodeNoRows))
	assert.False(t, IsCode(errors.New("x"), CodeDuplicateKey))
}
