package http

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recaudo-api/internal/application/usecase"
	"github.com/jhoicas/recaudo-api/pkg/logger"
)

// ReportHandler endpoints de reportes de recaudo.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// TotalPaidByCustomer godoc
// @Summary      Total pagado por cliente
// @Description  Incluye clientes sin transacciones con total_paid 0. Orden descendente.
// @Tags         reports
// @Produce      json
// @Success      200  {array}   entity.TotalPaidRow
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/total_paid_by_customer [get]
func (h *ReportHandler) TotalPaidByCustomer(c *fiber.Ctx) error {
	rows, err := h.uc.TotalPaidByCustomer(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(rows)
}

// PendingInvoices godoc
// @Summary      Facturas con saldo pendiente
// @Description  balance = amount_billed - pagos; solo balance > 0, mayor saldo primero.
// @Tags         reports
// @Produce      json
// @Success      200  {array}   entity.PendingInvoiceRow
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/pending_invoices [get]
func (h *ReportHandler) PendingInvoices(c *fiber.Ctx) error {
	rows, err := h.uc.PendingInvoices(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(rows)
}

// TransactionsByPlatform godoc
// @Summary      Transacciones por plataforma
// @Description  Coincidencia exacta del nombre. Plataforma desconocida devuelve [].
// @Tags         reports
// @Produce      json
// @Param        platform  path  string  true  "Nombre de la plataforma (ej. Nequi)"
// @Success      200  {array}   entity.PlatformTransactionRow
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/transactions_by_platform/{platform} [get]
func (h *ReportHandler) TransactionsByPlatform(c *fiber.Ctx) error {
	// fiber entrega el parámetro sin decodificar ("Banco%20de%20Bogot%C3%A1").
	platform, err := url.PathUnescape(c.Params("platform"))
	if err != nil {
		return c.JSON([]any{})
	}
	rows, err := h.uc.TransactionsByPlatform(c.UserContext(), platform)
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(rows)
}

// TotalPaidByCustomerPDF godoc
// @Summary      Total pagado por cliente (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/total_paid_by_customer/pdf [get]
func (h *ReportHandler) TotalPaidByCustomerPDF(c *fiber.Ctx) error {
	doc, err := h.uc.TotalPaidByCustomerPDF(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return sendPDF(c, "total_pagado", doc)
}

// PendingInvoicesPDF godoc
// @Summary      Facturas pendientes (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/pending_invoices/pdf [get]
func (h *ReportHandler) PendingInvoicesPDF(c *fiber.Ctx) error {
	doc, err := h.uc.PendingInvoicesPDF(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return sendPDF(c, "facturas_pendientes", doc)
}

func sendPDF(c *fiber.Ctx, name string, doc []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_%s.pdf"`, name, time.Now().Format("20060102")))
	return c.Send(doc)
}
