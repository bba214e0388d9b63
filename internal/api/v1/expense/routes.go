package expense

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	expenses := router.Group("/expenses")
	expenses.POST("", h.Create)
	expenses.GET("", h.List)
	expenses.GET("/export", h.Export)
}
