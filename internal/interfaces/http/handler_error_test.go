package http_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// brokenCategoryRepo simula una falla del store con detalles internos del driver.
type brokenCategoryRepo struct{}

var errStore = errors.New("list categories: ERROR: connection refused (SQLSTATE 08006)")

func (r *brokenCategoryRepo) Create(*entity.Category) error              { return errStore }
func (r *brokenCategoryRepo) GetByID(string) (*entity.Category, error)   { return nil, errStore }
func (r *brokenCategoryRepo) GetByName(string) (*entity.Category, error) { return nil, errStore }
func (r *brokenCategoryRepo) Update(*entity.Category) error              { return errStore }
func (r *brokenCategoryRepo) List(int, int) ([]*entity.Category, error)  { return nil, errStore }
func (r *brokenCategoryRepo) Delete(string) error                        { return errStore }

// Las fallas internas responden un mensaje genérico: los detalles del store
// (mensajes del driver, SQL, hosts) nunca viajan al cliente.
func TestHandler_ErrorInterno_NoFiltraDetallesDelStore(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&brokenCategoryRepo{})
	handler := apphttp.NewCategoryHandler(uc)

	app := fiber.New()
	app.Get("/categories", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.Contains(t, string(body), "error interno")
	assert.NotContains(t, string(body), "SQLSTATE",
		"la respuesta no debe exponer el error del driver")
	assert.NotContains(t, string(body), "connection refused")
}
