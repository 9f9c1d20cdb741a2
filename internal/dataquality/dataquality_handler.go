package dataquality

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
	l := zap.L().Named("dataquality.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dataquality.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Report(c *gin.Context) {
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

	report, err := h.service.Report(c.Request.Context(), filter)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("data quality report failed", zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}
