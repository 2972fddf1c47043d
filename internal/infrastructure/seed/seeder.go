// Package seed carga datos de ejemplo desde un archivo plano (CSV) a las tablas
// platforms, customers, invoices y transactions.
package seed

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
	"github.com/jhoicas/recaudo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/recaudo-api/pkg/logger"
)

//go:embed fixtures/transactions.csv
var fixtures embed.FS

const defaultFixture = "fixtures/transactions.csv"

// Options origen de los datos. File vacío usa el fixture embebido.
type Options struct {
	File     string
	Encoding string
}

// Seeder ejecuta la carga completa en una sola transacción. Es idempotente:
// repetirla no duplica filas.
type Seeder struct {
	db   *postgres.DB
	opts Options
	log  *logger.Logger
}

// New construye el seeder.
func New(db *postgres.DB, opts Options, log *logger.Logger) *Seeder {
	return &Seeder{db: db, opts: opts, log: log}
}

// Run lee el archivo, normaliza y persiste. Devuelve las cantidades cargadas.
func (s *Seeder) Run(ctx context.Context) (dto.SeedSummary, error) {
	records, err := s.read()
	if err != nil {
		return dto.SeedSummary{}, err
	}

	var summary dto.SeedSummary
	err = s.db.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		summary, err = Load(ctx, tx, records)
		return err
	})
	if err != nil {
		return dto.SeedSummary{}, fmt.Errorf("seed: %w", err)
	}

	s.log.Info().
		Str("source", s.source()).
		Int("rows", summary.Rows).
		Int("customers", summary.Customers).
		Int("invoices", summary.Invoices).
		Int("transactions", summary.Transactions).
		Msg("carga de datos completada")
	return summary, nil
}

func (s *Seeder) source() string {
	if s.opts.File != "" {
		return s.opts.File
	}
	return "embedded:" + defaultFixture
}

func (s *Seeder) read() ([]Record, error) {
	var src io.Reader
	if s.opts.File != "" {
		f, err := os.Open(s.opts.File)
		if err != nil {
			return nil, fmt.Errorf("abrir archivo de carga: %w", err)
		}
		defer f.Close()
		src = f
	} else {
		data, err := fixtures.ReadFile(defaultFixture)
		if err != nil {
			return nil, fmt.Errorf("leer fixture: %w", err)
		}
		src = bytes.NewReader(data)
	}

	decoded, err := DecodingReader(src, s.opts.Encoding)
	if err != nil {
		return nil, err
	}
	records, err := ParseCSV(decoded)
	if err != nil {
		return nil, fmt.Errorf("archivo de carga: %w", err)
	}
	return records, nil
}

// Querier subconjunto de pgx.Tx usado por Load.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	upsertPlatform = `
		INSERT INTO platforms (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING platform_id`

	upsertCustomer = `
		INSERT INTO customers (name, identification_number, address, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (identification_number) DO UPDATE SET
			name    = EXCLUDED.name,
			address = COALESCE(EXCLUDED.address, customers.address),
			phone   = COALESCE(EXCLUDED.phone, customers.phone),
			email   = COALESCE(EXCLUDED.email, customers.email)
		RETURNING customer_id`

	upsertInvoice = `
		INSERT INTO invoices (invoice_number, billing_period, amount_billed, customer_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (invoice_number) DO UPDATE SET
			billing_period = EXCLUDED.billing_period,
			amount_billed  = EXCLUDED.amount_billed,
			customer_id    = EXCLUDED.customer_id
		RETURNING invoice_id`

	insertTransaction = `
		INSERT INTO transactions (
			transaction_id, transaction_datetime, transaction_amount, amount_paid,
			transaction_status, transaction_type, customer_id, invoice_id, platform_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (transaction_id) DO NOTHING`
)

// Load normaliza los registros en las cuatro tablas. Cada plataforma, cliente y
// factura se inserta una vez por ejecución; Transactions cuenta solo las nuevas.
func Load(ctx context.Context, q Querier, records []Record) (dto.SeedSummary, error) {
	platforms := map[string]int64{}
	customers := map[string]int64{}
	invoices := map[string]int64{}
	summary := dto.SeedSummary{Rows: len(records)}

	upsert := func(cache map[string]int64, key, sql string, args ...any) (int64, error) {
		if id, ok := cache[key]; ok {
			return id, nil
		}
		var id int64
		if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return 0, err
		}
		cache[key] = id
		return id, nil
	}

	for _, r := range records {
		customerID, err := upsert(customers, r.IdentificationNumber, upsertCustomer,
			r.CustomerName, r.IdentificationNumber, r.Address, r.Phone, r.Email)
		if err != nil {
			return summary, fmt.Errorf("línea %d: cliente %s: %w", r.Line, r.IdentificationNumber, err)
		}
		if !r.HasInvoice() {
			continue
		}

		invoiceID, err := upsert(invoices, r.InvoiceNumber, upsertInvoice,
			r.InvoiceNumber, r.BillingPeriod, r.AmountBilled, customerID)
		if err != nil {
			return summary, fmt.Errorf("línea %d: factura %s: %w", r.Line, r.InvoiceNumber, err)
		}
		if !r.HasTransaction() {
			continue
		}

		platformID, err := upsert(platforms, r.Platform, upsertPlatform, r.Platform)
		if err != nil {
			return summary, fmt.Errorf("línea %d: plataforma %s: %w", r.Line, r.Platform, err)
		}

		tag, err := q.Exec(ctx, insertTransaction,
			r.TransactionID, r.TransactionDateTime, r.TransactionAmount, r.AmountPaid,
			r.TransactionStatus, r.TransactionType, customerID, invoiceID, platformID)
		if err != nil {
			return summary, fmt.Errorf("línea %d: transacción %s: %w", r.Line, r.TransactionID, err)
		}
		summary.Transactions += int(tag.RowsAffected())
	}

	summary.Platforms = len(platforms)
	summary.Customers = len(customers)
	summary.Invoices = len(invoices)
	return summary, nil
}
