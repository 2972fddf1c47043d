package entity

// Customer representa un cliente del sistema de recaudo.
// Address, Phone y Email son opcionales (nil = NULL en la tabla).
type Customer struct {
	ID                   int64   `db:"customer_id"`
	Name                 string  `db:"name"`
	IdentificationNumber string  `db:"identification_number"` // Cédula o NIT, único
	Address              *string `db:"address"`
	Phone                *string `db:"phone"`
	Email                *string `db:"email"`
}

// CustomerPatch cambios parciales sobre un cliente. Un campo nil conserva el valor guardado.
type CustomerPatch struct {
	Name                 *string `validate:"omitnil,min=1"`
	IdentificationNumber *string `validate:"omitnil,min=1"`
	Address              *string
	Phone                *string
	Email                *string `validate:"omitnil,email"`
}

// IsEmpty indica si el patch no modifica ningún campo.
func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.IdentificationNumber == nil &&
		p.Address == nil && p.Phone == nil && p.Email == nil
}
