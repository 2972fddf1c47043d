package dto

import "github.com/jhoicas/recaudo-api/internal/domain/entity"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name                 string  `json:"name" validate:"required"`
	IdentificationNumber string  `json:"identification_number" validate:"required"`
	Address              *string `json:"address"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email" validate:"omitnil,email"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Cada campo distingue
// ausente, null y valor; hoy null se trata igual que ausente.
type UpdateCustomerRequest struct {
	Name                 Optional[string] `json:"name" swaggertype:"string"`
	IdentificationNumber Optional[string] `json:"identification_number" swaggertype:"string"`
	Address              Optional[string] `json:"address" swaggertype:"string"`
	Phone                Optional[string] `json:"phone" swaggertype:"string"`
	Email                Optional[string] `json:"email" swaggertype:"string"`
}

// Patch convierte la petición en cambios de dominio: ausente o null = sin cambio.
func (r UpdateCustomerRequest) Patch() entity.CustomerPatch {
	return entity.CustomerPatch{
		Name:                 r.Name.Ptr(),
		IdentificationNumber: r.IdentificationNumber.Ptr(),
		Address:              r.Address.Ptr(),
		Phone:                r.Phone.Ptr(),
		Email:                r.Email.Ptr(),
	}
}

// CustomerResponse cliente en respuestas; los opcionales salen como null.
type CustomerResponse struct {
	CustomerID           int64   `json:"customer_id"`
	Name                 string  `json:"name"`
	IdentificationNumber string  `json:"identification_number"`
	Address              *string `json:"address"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
}

// NewCustomerResponse mapea la entidad.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:           c.ID,
		Name:                 c.Name,
		IdentificationNumber: c.IdentificationNumber,
		Address:              c.Address,
		Phone:                c.Phone,
		Email:                c.Email,
	}
}

// CustomerPage respuesta de GET /api/customers.
// Total es la cantidad de filas de esta página; TotalCount el total de la tabla.
type CustomerPage struct {
	Data       []CustomerResponse `json:"data"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int                `json:"total"`
	TotalCount int64              `json:"total_count"`
	TotalPages int64              `json:"total_pages"`
}
