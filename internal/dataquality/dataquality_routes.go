package dataquality

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/relatorios/qualidade", handler.Report)
}
