package investment

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	investments := router.Group("/investments")
	investments.POST("", h.Create)
	investments.GET("", h.List)
}
