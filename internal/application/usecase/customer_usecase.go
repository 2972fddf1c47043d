package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
	"github.com/jhoicas/recaudo-api/internal/domain"
	"github.com/jhoicas/recaudo-api/internal/domain/entity"
	"github.com/jhoicas/recaudo-api/internal/domain/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 102
	MaxLimit     = 1000
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	validator *Validator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, validator *Validator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, validator: validator}
}

// NormalizePage aplica defaults a page y limit: valores no numéricos o menores que 1
// usan el default y limit se recorta a MaxLimit. page se acota para que
// (page-1)*limit no desborde: una página enorme devuelve una lista vacía.
func NormalizePage(rawPage, rawLimit string) (page, limit int) {
	page = parsePositive(rawPage, DefaultPage)
	limit = parsePositive(rawLimit, DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return page, limit
}

func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// List devuelve una página de clientes ordenados por customer_id junto con el total.
// Las dos consultas van en serie: cada petición ocupa una sola conexión a la vez.
func (uc *CustomerUseCase) List(ctx context.Context, req dto.PageRequest) (*dto.CustomerPage, error) {
	page, limit := NormalizePage(req.Page, req.Limit)
	offset := (page - 1) * limit

	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]dto.CustomerResponse, 0, len(list))
	for i := range list {
		data = append(data, dto.NewCustomerResponse(&list[i]))
	}
	return &dto.CustomerPage{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      len(data),
		TotalCount: count,
		TotalPages: (count + int64(limit) - 1) / int64(limit),
	}, nil
}

// Get obtiene un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	if id < 1 {
		return nil, domain.ErrNotFound
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewCustomerResponse(c)
	return &out, nil
}

// Create valida y crea un cliente. address y phone vacíos se guardan como NULL.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.IdentificationNumber = strings.TrimSpace(in.IdentificationNumber)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		Name:                 in.Name,
		IdentificationNumber: in.IdentificationNumber,
		Address:              nilIfEmpty(in.Address),
		Phone:                nilIfEmpty(in.Phone),
		Email:                nilIfEmpty(in.Email),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	out := dto.NewCustomerResponse(customer)
	return &out, nil
}

// Update aplica los campos informados. Un patch vacío equivale a leer el cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if id < 1 {
		return nil, domain.ErrNotFound
	}
	patch := in.Patch()
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.IdentificationNumber != nil {
		trimmed := strings.TrimSpace(*patch.IdentificationNumber)
		patch.IdentificationNumber = &trimmed
	}
	if err := uc.validator.Struct(patch); err != nil {
		return nil, err
	}

	var (
		c   *entity.Customer
		err error
	)
	if patch.IsEmpty() {
		c, err = uc.repo.GetByID(ctx, id)
	} else {
		c, err = uc.repo.Update(ctx, id, patch)
	}
	if err != nil {
		return nil, err
	}
	out := dto.NewCustomerResponse(c)
	return &out, nil
}

// Delete elimina un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func nilIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
