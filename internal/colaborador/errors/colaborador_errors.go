package colaboradorerrors

import (
	"net/http"

	"github.com/loskinha8/gestao-colab/internal/shared/apperror"
)

var (
	ErrColaboradorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Colaborador não encontrado",
		http.StatusNotFound,
	)

	ErrNomeObrigatorio = apperror.New(
		apperror.CodeInvalidInput,
		"O campo 'nome' é obrigatório",
		http.StatusBadRequest,
	)
)
