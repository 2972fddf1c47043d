package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/recaudo-api/internal/domain/entity"
	"github.com/jhoicas/recaudo-api/internal/domain/repository"
)

// ReportPDFGenerator puerto para exportar reportes a PDF.
type ReportPDFGenerator interface {
	TotalPaidPDF(ctx context.Context, rows []entity.TotalPaidRow, generatedAt time.Time) ([]byte, error)
	PendingInvoicesPDF(ctx context.Context, rows []entity.PendingInvoiceRow, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase reportes de recaudo (JSON y PDF).
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  ReportPDFGenerator
	now  func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewReportUseCase(repo repository.ReportRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf, now: time.Now}
}

// TotalPaidByCustomer total pagado por cliente, mayor primero.
func (uc *ReportUseCase) TotalPaidByCustomer(ctx context.Context) ([]entity.TotalPaidRow, error) {
	rows, err := uc.repo.TotalPaidByCustomer(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}

// PendingInvoices facturas con saldo pendiente, mayor saldo primero.
func (uc *ReportUseCase) PendingInvoices(ctx context.Context) ([]entity.PendingInvoiceRow, error) {
	rows, err := uc.repo.PendingInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}

// TransactionsByPlatform transacciones de la plataforma. Nombre vacío o desconocido = lista vacía.
func (uc *ReportUseCase) TransactionsByPlatform(ctx context.Context, platform string) ([]entity.PlatformTransactionRow, error) {
	if strings.TrimSpace(platform) == "" {
		return []entity.PlatformTransactionRow{}, nil
	}
	rows, err := uc.repo.TransactionsByPlatform(ctx, platform)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}

// TotalPaidByCustomerPDF mismo reporte renderizado en PDF.
func (uc *ReportUseCase) TotalPaidByCustomerPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reports: generador PDF no configurado")
	}
	rows, err := uc.TotalPaidByCustomer(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.TotalPaidPDF(ctx, rows, uc.now())
}

// PendingInvoicesPDF mismo reporte renderizado en PDF.
func (uc *ReportUseCase) PendingInvoicesPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reports: generador PDF no configurado")
	}
	rows, err := uc.PendingInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.PendingInvoicesPDF(ctx, rows, uc.now())
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
