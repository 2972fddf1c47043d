package repository

import (
	"context"

	"github.com/jhoicas/recaudo-api/internal/domain/entity"
)

// ReportRepository consultas de solo lectura para los reportes de recaudo.
// Las implementaciones devuelven un slice vacío (no nil) cuando no hay filas.
type ReportRepository interface {
	TotalPaidByCustomer(ctx context.Context) ([]entity.TotalPaidRow, error)
	PendingInvoices(ctx context.Context) ([]entity.PendingInvoiceRow, error)
	TransactionsByPlatform(ctx context.Context, platform string) ([]entity.PlatformTransactionRow, error)
}
