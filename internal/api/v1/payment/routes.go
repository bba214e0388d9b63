package payment

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the authenticated checkout endpoint. The webhook is
// mounted separately because the provider calls it without a bearer token.
func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	sub := router.Group("/subscription")
	sub.POST("/checkout", h.CreateCheckout)
}

func RegisterWebhook(router *gin.RouterGroup, h *Handler) {
	router.POST("/subscription/webhook", h.Webhook)
}
