package folha

import (
	"github.com/loskinha8/gestao-colab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	folha := r.Group("/folha")
	{
		folha.GET("", handler.GetAll)
		folha.GET("/resumo", handler.Resumo)
		folha.GET("/:id", handler.GetById)
		folha.GET("/:id/recibo", handler.Recibo)
		// Generation is deliberately throttled hard; it writes one row per
		// active employee of the unit.
		folha.POST("/gerar", middleware.RateLimitByIP(0.2, 1), handler.Generate)
		folha.PUT("/:id", middleware.RateLimitByIP(2, 5), handler.Update)
	}
}
