package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/semaphore"
)

// DBOptions límites de la capa de acceso a datos.
type DBOptions struct {
	MaxConns     int           // tamaño del pool
	MaxQueued    int           // peticiones esperando conexión; 0 = sin límite
	QueryTimeout time.Duration // 0 = sin timeout
}

// Result resultado de una sentencia de escritura.
type Result struct {
	InsertID     int64
	RowsAffected int64
}

// DB envuelve el pool: cada sentencia toma una conexión y la devuelve al terminar,
// también cuando falla. Todos los errores salen como *DatabaseError.
type DB struct {
	pool    *pgxpool.Pool
	gate    *semaphore.Weighted // nil = cola sin límite
	timeout time.Duration
}

// NewDB construye la capa de acceso sobre un pool ya creado.
func NewDB(pool *pgxpool.Pool, opts DBOptions) *DB {
	db := &DB{pool: pool, timeout: opts.QueryTimeout}
	if opts.MaxQueued > 0 {
		maxConns := opts.MaxConns
		if maxConns < 1 {
			maxConns = int(pool.Config().MaxConns)
		}
		db.gate = semaphore.NewWeighted(int64(maxConns + opts.MaxQueued))
	}
	return db
}

// withConn ejecuta fn con una conexión del pool respetando la cola y el timeout.
func (d *DB) withConn(ctx context.Context, fn func(ctx context.Context, conn *pgxpool.Conn) error) error {
	if d.gate != nil {
		if !d.gate.TryAcquire(1) {
			return &DatabaseError{Code: CodeQueueFull, Err: errQueueFull}
		}
		defer d.gate.Release(1)
	}
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		return classify(fmt.Errorf("obtener conexión: %w", err))
	}
	defer conn.Release()

	return classify(fn(ctx, conn))
}

// Exec ejecuta una sentencia sin filas de retorno.
func (d *DB) Exec(ctx context.Context, sql string, args ...any) (Result, error) {
	var res Result
	err := d.withConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		res.RowsAffected = tag.RowsAffected()
		return nil
	})
	return res, err
}

// InsertReturning ejecuta un INSERT ... RETURNING <id> y devuelve el id generado.
func (d *DB) InsertReturning(ctx context.Context, sql string, args ...any) (Result, error) {
	var res Result
	err := d.withConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		if err := conn.QueryRow(ctx, sql, args...).Scan(&res.InsertID); err != nil {
			return err
		}
		res.RowsAffected = 1
		return nil
	})
	return res, err
}

// Query ejecuta una consulta y mapea cada fila a T por nombre de columna (tag db).
// Sin filas devuelve un slice vacío, nunca nil.
func Query[T any](ctx context.Context, d *DB, sql string, args ...any) ([]T, error) {
	out := []T{}
	err := d.withConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		list, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
		if err != nil {
			return err
		}
		out = append(out, list...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryOne como Query pero espera exactamente una fila; sin filas devuelve CodeNoRows.
func QueryOne[T any](ctx context.Context, d *DB, sql string, args ...any) (*T, error) {
	var out T
	err := d.withConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryScalar devuelve un único valor (ej. COUNT(*)).
func QueryScalar[T any](ctx context.Context, d *DB, sql string, args ...any) (T, error) {
	var out T
	err := d.withConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, sql, args...).Scan(&out)
	})
	return out, err
}

// WithTx inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (d *DB) WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return d.withConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// Ping comprueba que la base responde.
func (d *DB) Ping(ctx context.Context) error {
	return d.withConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		return conn.Ping(ctx)
	})
}

// Stat estadísticas del pool (métricas).
func (d *DB) Stat() *pgxpool.Stat {
	return d.pool.Stat()
}

// Close cierra el pool.
func (d *DB) Close() {
	d.pool.Close()
}
