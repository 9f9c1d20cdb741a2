package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/loskinha8/gestao-colab/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	err := apperror.New(apperror.CodeNotFound, "não encontrado", http.StatusNotFound)

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	assert.Equal(t, "não encontrado", httpErr.Message)
	assert.Nil(t, httpErr.Details)
}

func TestToHTTP_WrappedCauseSurfacesAsDetails(t *testing.T) {
	cause := errors.New("json: cannot unmarshal")
	err := apperror.Wrap(cause, apperror.CodeInvalidInput, "Entrada inválida", http.StatusBadRequest)

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
	assert.Equal(t, "json: cannot unmarshal", httpErr.Details)
}

func TestToHTTP_UnknownErrorCollapsesToInternal(t *testing.T) {
	httpErr := apperror.ToHTTP(errors.New("driver: bad connection"))
	assert.Equal(t, apperror.ErrInternal.HTTPStatus, httpErr.Status)
	assert.Equal(t, apperror.ErrInternal.Code, httpErr.Code)
	assert.Equal(t, apperror.ErrInternal.Message, httpErr.Message)
	assert.Nil(t, httpErr.Details)
}
