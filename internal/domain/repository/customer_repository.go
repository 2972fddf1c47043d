package repository

import (
	"context"

	"github.com/jhoicas/recaudo-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID, Update y Delete devuelven domain.ErrNotFound si el cliente no existe;
// Create y Update devuelven domain.ErrDuplicate ante identificación o email repetidos.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context, limit, offset int) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error)
	Delete(ctx context.Context, id int64) error
}
