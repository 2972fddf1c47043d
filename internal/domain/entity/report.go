package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalPaidRow total pagado por cliente; clientes sin transacciones aparecen con 0.
type TotalPaidRow struct {
	CustomerID           int64           `db:"customer_id" json:"customer_id"`
	Name                 string          `db:"name" json:"name"`
	IdentificationNumber string          `db:"identification_number" json:"identification_number"`
	TotalPaid            decimal.Decimal `db:"total_paid" json:"total_paid"`
}

// PendingInvoiceRow factura con saldo pendiente (balance > 0).
type PendingInvoiceRow struct {
	InvoiceID            int64           `db:"invoice_id" json:"invoice_id"`
	InvoiceNumber        string          `db:"invoice_number" json:"invoice_number"`
	BillingPeriod        string          `db:"billing_period" json:"billing_period"`
	AmountBilled         decimal.Decimal `db:"amount_billed" json:"amount_billed"`
	TotalPaid            decimal.Decimal `db:"total_paid" json:"total_paid"`
	Balance              decimal.Decimal `db:"balance" json:"balance"`
	CustomerID           int64           `db:"customer_id" json:"customer_id"`
	CustomerName         string          `db:"customer_name" json:"customer_name"`
	IdentificationNumber string          `db:"identification_number" json:"identification_number"`
}

// PlatformTransactionRow transacción de una plataforma con su cliente y factura.
// Los campos del join son punteros porque la relación puede no existir.
type PlatformTransactionRow struct {
	TransactionID       string          `db:"transaction_id" json:"transaction_id"`
	TransactionDateTime time.Time       `db:"transaction_datetime" json:"transaction_datetime"`
	TransactionAmount   decimal.Decimal `db:"transaction_amount" json:"transaction_amount"`
	AmountPaid          decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	TransactionStatus   string          `db:"transaction_status" json:"transaction_status"`
	CustomerID          *int64          `db:"customer_id" json:"customer_id"`
	CustomerName        *string         `db:"customer_name" json:"customer_name"`
	InvoiceID           *int64          `db:"invoice_id" json:"invoice_id"`
	InvoiceNumber       *string         `db:"invoice_number" json:"invoice_number"`
}
