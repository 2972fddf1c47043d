package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
	"github.com/jhoicas/recaudo-api/internal/application/usecase"
	"github.com/jhoicas/recaudo-api/internal/domain"
	"github.com/jhoicas/recaudo-api/pkg/logger"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Lista clientes paginados
// @Description  Ordenados por customer_id. Valores inválidos de page o limit usan el default.
// @Tags         customers
// @Produce      json
// @Param        page   query  int  false  "Página (default 1)"
// @Param        limit  query  int  false  "Tamaño de página (default 102, máx. 1000)"
// @Success      200  {object}  dto.CustomerPage
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var req dto.PageRequest
	_ = c.QueryParser(&req)
	page, err := h.uc.List(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(page)
}

// Get godoc
// @Summary      Obtiene un cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return writeError(c, h.log, domain.ErrNotFound, "")
	}
	customer, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(customer)
}

// Create godoc
// @Summary      Crea un cliente
// @Description  name e identification_number son obligatorios; email debe ser válido si se envía.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Cliente"
// @Success      201  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := parseJSON(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidJSON})
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, msgDuplicateCreate)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update godoc
// @Summary      Actualiza parcialmente un cliente
// @Description  Solo se modifican los campos enviados; null o ausente conserva el valor.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := parseJSON(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidJSON})
	}
	id, ok := customerID(c)
	if !ok {
		return writeError(c, h.log, domain.ErrNotFound, "")
	}
	customer, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err, msgDuplicateUpdate)
	}
	return c.JSON(customer)
}

// Delete godoc
// @Summary      Elimina un cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return writeError(c, h.log, domain.ErrNotFound, "")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Customer deleted successfully"})
}

// customerID ids no numéricos o no positivos no pueden existir: se responden como 404.
func customerID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
