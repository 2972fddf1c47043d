package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/recaudo-api/internal/domain"
)

// Validator valida structs con tags `validate` y traduce los fallos a domain.ValidationError.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador. Los nombres de campo salen del tag json
// o, si no hay, del nombre del campo en snake_case.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return snakeCase(f.Name)
		}
		return name
	})
	return &Validator{v: v}
}

// Struct devuelve nil o *domain.ValidationError.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar: %w", err)
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: val.message(fe),
		})
	}
	return out
}

func (val *Validator) message(fe validator.FieldError) string {
	// Caser guarda estado: uno por llamada.
	label := cases.Title(language.Und).String(strings.ReplaceAll(fe.Field(), "_", " "))
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email"
	case "min":
		if fe.Param() == "1" {
			return label + " cannot be empty"
		}
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
