package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
	"github.com/jhoicas/recaudo-api/internal/domain/entity"
)

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) TotalPaidByCustomer(ctx context.Context) ([]entity.TotalPaidRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]entity.TotalPaidRow)
	return rows, args.Error(1)
}

func (m *mockReportRepo) PendingInvoices(ctx context.Context) ([]entity.PendingInvoiceRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]entity.PendingInvoiceRow)
	return rows, args.Error(1)
}

func (m *mockReportRepo) TransactionsByPlatform(ctx context.Context, platform string) ([]entity.PlatformTransactionRow, error) {
	args := m.Called(ctx, platform)
	rows, _ := args.Get(0).([]entity.PlatformTransactionRow)
	return rows, args.Error(1)
}

type mockSeeder struct {
	mock.Mock
}

func (m *mockSeeder) Run(ctx context.Context) (dto.SeedSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.SeedSummary), args.Error(1)
}

// stubPDF devuelve un PDF mínimo sin renderizar.
type stubPDF struct{}

func (stubPDF) TotalPaidPDF(context.Context, []entity.TotalPaidRow, time.Time) ([]byte, error) {
	return []byte("%PDF-1.3 total"), nil
}

func (stubPDF) PendingInvoicesPDF(context.Context, []entity.PendingInvoiceRow, time.Time) ([]byte, error) {
	return []byte("%PDF-1.3 pending"), nil
}
