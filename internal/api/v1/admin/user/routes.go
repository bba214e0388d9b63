package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/users", h.List)
	router.PATCH("/users/:id", h.Update)
	router.DELETE("/users/:id", h.Delete)
}
