package report

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/loskinha8/gestao-colab/internal/colaborador"
	"github.com/loskinha8/gestao-colab/internal/shared/apperror"
	"github.com/loskinha8/gestao-colab/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseFilter(c *gin.Context) colaborador.Filter {
	var filter colaborador.Filter
	if raw := strings.TrimSpace(c.Query("unidades")); raw != "" {
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				filter.Unidades = append(filter.Unidades, u)
			}
		}
	}
	if raw := c.Query("ativo"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && (v == 0 || v == 1) {
			filter.Ativo = &v
		}
	}
	return filter
}

func (h *Handler) Antiguidade(c *gin.Context) {
	report, err := h.service.Antiguidade(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) FolhaPorUnidade(c *gin.Context) {
	report, err := h.service.FolhaPorUnidade(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Comparativo(c *gin.Context) {
	report, err := h.service.Comparativo(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}
