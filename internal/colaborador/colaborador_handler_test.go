package colaborador_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	colaboradorerrors "github.com/loskinha8/gestao-colab/internal/colaborador/errors"
	"github.com/loskinha8/gestao-colab/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeColaboradorService struct {
	createFn  func(ctx context.Context, req colaborador.CreateColaboradorRequest) (colaborador.ColaboradorResponse, error)
	listFn    func(ctx context.Context, filter colaborador.Filter, page, limit int) ([]colaborador.ColaboradorResponse, *response.PaginationMeta, error)
	getByIDFn func(ctx context.Context, id int64) (colaborador.ColaboradorResponse, error)
	updateFn  func(ctx context.Context, id int64, req colaborador.UpdateColaboradorRequest) (colaborador.ColaboradorResponse, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeColaboradorService) Create(ctx context.Context, req colaborador.CreateColaboradorRequest) (colaborador.ColaboradorResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeColaboradorService) List(ctx context.Context, filter colaborador.Filter, page, limit int) ([]colaborador.ColaboradorResponse, *response.PaginationMeta, error) {
	return f.listFn(ctx, filter, page, limit)
}
func (f *fakeColaboradorService) GetByID(ctx context.Context, id int64) (colaborador.ColaboradorResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeColaboradorService) Update(ctx context.Context, id int64, req colaborador.UpdateColaboradorRequest) (colaborador.ColaboradorResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeColaboradorService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func TestColaboradorHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeColaboradorService{
			createFn: func(ctx context.Context, req colaborador.CreateColaboradorRequest) (colaborador.ColaboradorResponse, error) {
				assert.Equal(t, "Maria", req.Nome)
				return colaborador.ColaboradorResponse{ID: 1, Nome: req.Nome}, nil
			},
		}

		h := colaborador.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"nome":"Maria","unidade":"Serrinha","salario":"1.500,00","ativo":true}`
		req := httptest.NewRequest(http.MethodPost, "/colaboradores", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Maria")
	})

	t.Run("missing nome fails binding", func(t *testing.T) {
		h := colaborador.NewHandler(&fakeColaboradorService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/colaboradores", strings.NewReader(`{"unidade":"Serrinha"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestColaboradorHandler_GetAll(t *testing.T) {
	t.Run("filters parsed from query", func(t *testing.T) {
		svc := &fakeColaboradorService{
			listFn: func(ctx context.Context, filter colaborador.Filter, page, limit int) ([]colaborador.ColaboradorResponse, *response.PaginationMeta, error) {
				assert.Equal(t, []string{"Serrinha", "Anguera"}, filter.Unidades)
				if assert.NotNil(t, filter.Ativo) {
					assert.Equal(t, 1, *filter.Ativo)
				}
				assert.Zero(t, page)
				assert.Zero(t, limit)
				return []colaborador.ColaboradorResponse{{ID: 1, Nome: "Ana"}}, nil, nil
			},
		}

		h := colaborador.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/colaboradores?unidades=Serrinha,Anguera&ativo=1", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana")
	})

	t.Run("page and limit reach the service and meta reaches the envelope", func(t *testing.T) {
		svc := &fakeColaboradorService{
			listFn: func(ctx context.Context, filter colaborador.Filter, page, limit int) ([]colaborador.ColaboradorResponse, *response.PaginationMeta, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 20, limit)
				meta := response.NewPaginationMeta(45, page, limit)
				return []colaborador.ColaboradorResponse{{ID: 21, Nome: "Zé"}}, &meta, nil
			},
		}

		h := colaborador.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/colaboradores?page=2&limit=20", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPages":3`)
		assert.Contains(t, w.Body.String(), `"total":45`)
	})

	t.Run("empty result is 200 with empty data", func(t *testing.T) {
		svc := &fakeColaboradorService{
			listFn: func(ctx context.Context, filter colaborador.Filter, page, limit int) ([]colaborador.ColaboradorResponse, *response.PaginationMeta, error) {
				return []colaborador.ColaboradorResponse{}, nil, nil
			},
		}

		h := colaborador.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/colaboradores", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
	})
}

func TestColaboradorHandler_GetById(t *testing.T) {
	t.Run("not found maps to 404 envelope", func(t *testing.T) {
		svc := &fakeColaboradorService{
			getByIDFn: func(ctx context.Context, id int64) (colaborador.ColaboradorResponse, error) {
				return colaborador.ColaboradorResponse{}, colaboradorerrors.ErrColaboradorNotFound
			},
		}

		h := colaborador.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/colaboradores/99", nil)
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		h := colaborador.NewHandler(&fakeColaboradorService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/colaboradores/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestColaboradorHandler_Delete(t *testing.T) {
	svc := &fakeColaboradorService{
		deleteFn: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(5), id)
			return nil
		},
	}

	h := colaborador.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/colaboradores/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}
