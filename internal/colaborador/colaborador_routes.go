package colaborador

import (
	"github.com/loskinha8/gestao-colab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	colabs := r.Group("/colaboradores")
	{
		colabs.GET("", handler.GetAll)
		colabs.GET("/:id", handler.GetById)
		colabs.POST("", middleware.RateLimitByIP(2, 5), handler.Create)
		colabs.PUT("/:id", middleware.RateLimitByIP(2, 5), handler.Update)
		colabs.DELETE("/:id", middleware.RateLimitByIP(1, 2), handler.Delete)
	}
}
