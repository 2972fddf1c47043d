package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/recaudo-api/internal/domain/entity"
	"github.com/jhoicas/recaudo-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de recaudo.
type ReportRepo struct {
	db *DB
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db *DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// TotalPaidByCustomer suma amount_paid por cliente. El LEFT JOIN incluye a los
// clientes sin transacciones con total 0.
func (r *ReportRepo) TotalPaidByCustomer(ctx context.Context) ([]entity.TotalPaidRow, error) {
	const query = `
	SELECT
	    c.customer_id,
	    c.name,
	    c.identification_number,
	    COALESCE(SUM(t.amount_paid), 0)::NUMERIC(14,2) AS total_paid
	FROM customers c
	LEFT JOIN transactions t ON t.customer_id = c.customer_id
	GROUP BY c.customer_id, c.name, c.identification_number
	ORDER BY total_paid DESC, c.customer_id`

	rows, err := Query[entity.TotalPaidRow](ctx, r.db, query)
	if err != nil {
		return nil, fmt.Errorf("reports.TotalPaidByCustomer: %w", err)
	}
	return rows, nil
}

// PendingInvoices facturas con saldo: balance = amount_billed - pagos, solo balance > 0.
func (r *ReportRepo) PendingInvoices(ctx context.Context) ([]entity.PendingInvoiceRow, error) {
	const query = `
	SELECT
	    i.invoice_id,
	    i.invoice_number,
	    i.billing_period,
	    i.amount_billed,
	    COALESCE(SUM(t.amount_paid), 0)::NUMERIC(14,2)                   AS total_paid,
	    (i.amount_billed - COALESCE(SUM(t.amount_paid), 0))::NUMERIC(14,2) AS balance,
	    c.customer_id,
	    c.name AS customer_name,
	    c.identification_number
	FROM invoices i
	JOIN customers c ON c.customer_id = i.customer_id
	LEFT JOIN transactions t ON t.invoice_id = i.invoice_id
	GROUP BY i.invoice_id, c.customer_id
	HAVING i.amount_billed - COALESCE(SUM(t.amount_paid), 0) > 0
	ORDER BY balance DESC, i.invoice_id`

	rows, err := Query[entity.PendingInvoiceRow](ctx, r.db, query)
	if err != nil {
		return nil, fmt.Errorf("reports.PendingInvoices: %w", err)
	}
	return rows, nil
}

// TransactionsByPlatform transacciones de la plataforma (nombre exacto), más recientes primero.
func (r *ReportRepo) TransactionsByPlatform(ctx context.Context, platform string) ([]entity.PlatformTransactionRow, error) {
	const query = `
	SELECT
	    t.transaction_id,
	    t.transaction_datetime,
	    t.transaction_amount,
	    t.amount_paid,
	    t.transaction_status,
	    c.customer_id,
	    c.name AS customer_name,
	    i.invoice_id,
	    i.invoice_number
	FROM transactions t
	JOIN platforms p       ON p.platform_id = t.platform_id
	LEFT JOIN customers c  ON c.customer_id = t.customer_id
	LEFT JOIN invoices i   ON i.invoice_id  = t.invoice_id
	WHERE p.name = $1
	ORDER BY t.transaction_datetime DESC`

	rows, err := Query[entity.PlatformTransactionRow](ctx, r.db, query, platform)
	if err != nil {
		return nil, fmt.Errorf("reports.TransactionsByPlatform: %w", err)
	}
	return rows, nil
}
