package dto

import "github.com/jhoicas/recaudo-api/internal/domain"

// PageRequest parámetros crudos de paginación (?page=&limit=).
// Se leen como texto para que valores no numéricos caigan en los defaults.
type PageRequest struct {
	Page  string `query:"page"`
	Limit string `query:"limit"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ValidationErrorResponse cuerpo de 400 por validación.
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Errors []domain.FieldError `json:"errors"`
}

// SuccessResponse confirmación de operaciones sin cuerpo propio.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
