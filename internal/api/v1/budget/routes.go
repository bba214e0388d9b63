package budget

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	budgets := router.Group("/budgets")
	budgets.POST("", h.Create)
	budgets.GET("", h.List)
}
