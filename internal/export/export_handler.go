package export

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/folha"
	"github.com/loskinha8/gestao-colab/internal/shared/apperror"
	"github.com/loskinha8/gestao-colab/internal/shared/dateutil"
	"github.com/loskinha8/gestao-colab/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	errFormatoInvalido = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de exportação inválido; use csv ou xlsx",
		http.StatusBadRequest,
	)
	errMesInvalido = apperror.New(
		apperror.CodeInvalidInput,
		"Mês de referência inválido; use o formato AAAA-MM",
		http.StatusBadRequest,
	)
)

type Handler struct {
	colabRepo colaborador.Repository
	folhaRepo folha.Repository
	logger    *zap.Logger
}

func NewHandler(colabRepo colaborador.Repository, folhaRepo folha.Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{colabRepo: colabRepo, folhaRepo: folhaRepo, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("export request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseFormat(c *gin.Context) (string, error) {
	formato := strings.ToLower(strings.TrimSpace(c.DefaultQuery("formato", formatCSV)))
	switch formato {
	case formatCSV, formatXLSX:
		return formato, nil
	}
	return "", errFormatoInvalido
}

func parseFields(c *gin.Context) []string {
	raw := strings.TrimSpace(c.Query("colunas"))
	if raw == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func (h *Handler) write(c *gin.Context, formato, name string, t Table) {
	var (
		body        []byte
		contentType string
		err         error
	)
	switch formato {
	case formatXLSX:
		body, err = XLSX(t)
		contentType = contentTypeXLSX
	default:
		body, err = CSV(t)
		contentType = contentTypeCSV
	}
	if err != nil {
		h.logger.Error("export rendering failed",
			zap.String("formato", formato),
			zap.Error(err),
		)
		h.writeError(c, err)
		return
	}

	filename := fmt.Sprintf("%s_%s.%s", name, time.Now().Format("2006-01-02"), formato)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// Colaboradores streams the employee master as a download. Filters mirror the
// listing endpoint; ?colunas picks and orders the exported fields.
func (h *Handler) Colaboradores(c *gin.Context) {
	formato, err := parseFormat(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	filter := parseColaboradorFilter(c)
	colabs, err := h.colabRepo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.write(c, formato, "colaboradores", ColaboradorTable(colabs, parseFields(c)))
}

// Folha streams payroll lines as a download. ?extras=1 appends the overtime,
// bonus, deduction and commission columns.
func (h *Handler) Folha(c *gin.Context) {
	formato, err := parseFormat(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	filter := folha.EntradaFilter{Unidade: strings.TrimSpace(c.Query("unidade"))}
	if raw := strings.TrimSpace(c.Query("mes")); raw != "" {
		mes, ok := dateutil.ParseMonth(raw)
		if !ok {
			h.writeError(c, errMesInvalido)
			return
		}
		filter.Mes = &mes
	}

	entradas, err := h.folhaRepo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	includeExtras := c.Query("extras") == "1"
	h.write(c, formato, "folha_pagamento", FolhaTable(entradas, includeExtras))
}

func parseColaboradorFilter(c *gin.Context) colaborador.Filter {
	var filter colaborador.Filter
	if raw := strings.TrimSpace(c.Query("unidades")); raw != "" {
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				filter.Unidades = append(filter.Unidades, u)
			}
		}
	}
	if raw := c.Query("ativo"); raw == "0" || raw == "1" {
		v := int(raw[0] - '0')
		filter.Ativo = &v
	}
	return filter
}
