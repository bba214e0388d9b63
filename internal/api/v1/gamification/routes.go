package gamification

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	g := router.Group("/gamification")
	g.GET("/stats", h.Stats)
	g.GET("/achievements", h.Achievements)
	g.POST("/check-achievements", h.Check)
	g.GET("/leaderboard", h.Leaderboard)
	g.GET("/challenges", h.Challenges)
}
