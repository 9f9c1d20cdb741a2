package folhaerrors

import (
	"net/http"

	"github.com/loskinha8/gestao-colab/internal/shared/apperror"
)

var (
	ErrEntradaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Entrada de folha não encontrada",
		http.StatusNotFound,
	)

	ErrEntradaDuplicada = apperror.New(
		apperror.CodeConflict,
		"Já existe entrada de folha para este colaborador neste mês",
		http.StatusConflict,
	)

	ErrMesInvalido = apperror.New(
		apperror.CodeInvalidInput,
		"Mês de referência inválido; use o formato AAAA-MM",
		http.StatusBadRequest,
	)

	ErrPeriodoInvalido = apperror.New(
		apperror.CodeInvalidInput,
		"Período inválido; informe início e fim como AAAA-MM",
		http.StatusBadRequest,
	)
)
