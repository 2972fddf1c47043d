package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/recaudo-api/internal/domain/entity"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepo) List(ctx context.Context, limit, offset int) ([]entity.Customer, error) {
	args := m.Called(ctx, limit, offset)
	list, _ := args.Get(0).([]entity.Customer)
	return list, args.Error(1)
}

func (m *mockCustomerRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error) {
	args := m.Called(ctx, id, patch)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

type mockPDF struct {
	mock.Mock
}

func (m *mockPDF) TotalPaidPDF(ctx context.Context, rows []entity.TotalPaidRow, at time.Time) ([]byte, error) {
	args := m.Called(ctx, rows, at)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockPDF) PendingInvoicesPDF(ctx context.Context, rows []entity.PendingInvoiceRow, at time.Time) ([]byte, error) {
	args := m.Called(ctx, rows, at)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func strPtr(s string) *string { return &s }
