package colaborador

import (
	"net/http"
	"strconv"
	"strings"

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
	l := zap.L().Named("colaborador.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("colaborador.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("colaborador request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// parseFilter reads ?unidades=a,b&ativo=1 into a Filter. Unknown values fall
// back to "no filter", never to an error.
func parseFilter(c *gin.Context) Filter {
	var filter Filter
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateColaboradorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInvalidInput, "Entrada inválida", http.StatusBadRequest))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	resp, meta, err := h.service.List(c.Request.Context(), parseFilter(c), page, limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Empty result is a valid state, not an error.
	response.Success(c, http.StatusOK, resp, meta)
}

func (h *Handler) GetById(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	var req UpdateColaboradorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInvalidInput, "Entrada inválida", http.StatusBadRequest))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
