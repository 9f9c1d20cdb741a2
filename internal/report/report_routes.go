package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	relatorios := r.Group("/relatorios")
	{
		relatorios.GET("/antiguidade", handler.Antiguidade)
		relatorios.GET("/folha-unidades", handler.FolhaPorUnidade)
		relatorios.GET("/comparativo", handler.Comparativo)
	}
}
