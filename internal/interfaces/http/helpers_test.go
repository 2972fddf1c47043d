package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recaudo-api/internal/application/usecase"
	"github.com/jhoicas/recaudo-api/internal/domain"
	"github.com/jhoicas/recaudo-api/internal/domain/entity"
	apphttp "github.com/jhoicas/recaudo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memCustomerRepo repositorio en memoria con las restricciones únicas de la tabla.
type memCustomerRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Customer
	fail   error
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{rows: map[int64]entity.Customer{}}
}

func (r *memCustomerRepo) conflicts(id int64, c entity.Customer) bool {
	for otherID, o := range r.rows {
		if otherID == id {
			continue
		}
		if o.IdentificationNumber == c.IdentificationNumber {
			return true
		}
		if o.Email != nil && c.Email != nil && *o.Email == *c.Email {
			return true
		}
	}
	return false
}

func (r *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	if r.conflicts(0, *c) {
		return domain.ErrDuplicate
	}
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memCustomerRepo) List(_ context.Context, limit, offset int) ([]entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []entity.Customer
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		out = append(out, r.rows[ids[i]])
	}
	return out, nil
}

func (r *memCustomerRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memCustomerRepo) Update(_ context.Context, id int64, p entity.CustomerPatch) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.IdentificationNumber != nil {
		c.IdentificationNumber = *p.IdentificationNumber
	}
	if p.Address != nil {
		c.Address = p.Address
	}
	if p.Phone != nil {
		c.Phone = p.Phone
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if r.conflicts(id, c) {
		return nil, domain.ErrDuplicate
	}
	r.rows[id] = c
	return &c, nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type testApp struct {
	app       *fiber.App
	customers *memCustomerRepo
	reports   *mockReportRepo
	seeder    *mockSeeder
}

func buildTestApp(t *testing.T) *testApp {
	t.Helper()
	customers := newMemCustomerRepo()
	reports := &mockReportRepo{}
	seeder := &mockSeeder{}
	app := apphttp.NewApp(apphttp.AppConfig{Name: "recaudo-test", BodyLimit: 1024 * 1024}, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(customers, usecase.NewValidator()),
		ReportUC:   usecase.NewReportUseCase(reports, &stubPDF{}),
		Seeder:     seeder,
	})
	return &testApp{app: app, customers: customers, reports: reports, seeder: seeder}
}

// do lanza la petición y decodifica el cuerpo JSON (si lo hay) en un mapa o slice.
func (ta *testApp) do(t *testing.T, method, path, body string) (int, any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "cuerpo no JSON: %s", raw)
	}
	return resp.StatusCode, out
}

func (ta *testApp) raw(t *testing.T, method, path string) *http.Response {
	t.Helper()
	resp, err := ta.app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func asMap(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "se esperaba un objeto JSON, llegó %T", v)
	return m
}
