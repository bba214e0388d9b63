package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	auth := router.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
	auth.GET("/confirm", h.Confirm)
	auth.GET("/me", authRequired, h.Me)
	auth.POST("/logout", authRequired, h.Logout)
}
