package export

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/colaboradores/export", handler.Colaboradores)
	r.GET("/folha/export", handler.Folha)
}
