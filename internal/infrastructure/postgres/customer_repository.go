package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/recaudo-api/internal/domain"
	"github.com/jhoicas/recaudo-api/internal/domain/entity"
	"github.com/jhoicas/recaudo-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `customer_id, name, identification_number, address, phone, email`

// CustomerRepo implementación de CustomerRepository sobre la capa DB.
type CustomerRepo struct {
	db *DB
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create persiste un nuevo cliente y completa customer.ID con el id generado.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	const query = `
		INSERT INTO customers (name, identification_number, address, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING customer_id`
	res, err := r.db.InsertReturning(ctx, query,
		customer.Name, customer.IdentificationNumber, customer.Address, customer.Phone, customer.Email,
	)
	if err != nil {
		return mapCustomerError("insert customer", err)
	}
	customer.ID = res.InsertID
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := QueryOne[entity.Customer](ctx, r.db,
		`SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return nil, mapCustomerError("get customer", err)
	}
	return c, nil
}

// List lista clientes ordenados por customer_id.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]entity.Customer, error) {
	list, err := Query[entity.Customer](ctx, r.db,
		`SELECT `+customerColumns+` FROM customers ORDER BY customer_id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return list, nil
}

// Count total de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	n, err := QueryScalar[int64](ctx, r.db, `SELECT COUNT(*) FROM customers`)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// Update aplica los campos informados del patch (COALESCE conserva los demás)
// y devuelve la fila resultante en el mismo round trip.
func (r *CustomerRepo) Update(ctx context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error) {
	const query = `
		UPDATE customers SET
			name                  = COALESCE($2, name),
			identification_number = COALESCE($3, identification_number),
			address               = COALESCE($4, address),
			phone                 = COALESCE($5, phone),
			email                 = COALESCE($6, email)
		WHERE customer_id = $1
		RETURNING ` + customerColumns
	c, err := QueryOne[entity.Customer](ctx, r.db, query,
		id, patch.Name, patch.IdentificationNumber, patch.Address, patch.Phone, patch.Email,
	)
	if err != nil {
		return nil, mapCustomerError("update customer", err)
	}
	return c, nil
}

// Delete elimina físicamente un cliente.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapCustomerError traduce códigos de la capa de datos a errores de dominio.
func mapCustomerError(op string, err error) error {
	switch {
	case IsCode(err, CodeNoRows):
		return domain.ErrNotFound
	case IsCode(err, CodeDuplicateKey):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
