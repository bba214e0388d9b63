package receipt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	receipts := router.Group("/receipts")
	receipts.POST("", h.Upload)
	receipts.GET("", h.List)

	documents := router.Group("/documents")
	documents.POST("", h.CreateDocument)
	documents.GET("", h.ListDocuments)
}
