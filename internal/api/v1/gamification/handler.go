package gamification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	gamification *services.GamificationService
}

func NewHandler(gamification *services.GamificationService) *Handler {
	return &Handler{gamification: gamification}
}

type CheckResponse struct {
	NewAchievements []models.Achievement `json:"new_achievements"`
}

// Stats godoc
// @Summary Gamification stats
// @Description Points, streak, level and resource counts for the current user
// @Tags gamification
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.UserStats}
// @Router /gamification/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	stats, err := h.gamification.Stats(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load stats"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", stats))
}

// Achievements godoc
// @Summary Unlocked achievements
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Achievement}
// @Router /gamification/achievements [get]
func (h *Handler) Achievements(c *gin.Context) {
	user := middleware.CurrentUser(c)
	achievements, err := h.gamification.Achievements(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load achievements"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", achievements))
}

// Check godoc
// @Summary Check for new achievements
// @Description Re-evaluates the rule catalogue; returns new unlocks only
// @Tags gamification
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=CheckResponse}
// @Router /gamification/check-achievements [post]
func (h *Handler) Check(c *gin.Context) {
	user := middleware.CurrentUser(c)
	unlocked, err := h.gamification.CheckAchievements(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check achievements"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", CheckResponse{NewAchievements: unlocked}))
}

// Leaderboard godoc
// @Summary Points leaderboard
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit  query  int  false  "Number of entries (default 10, max 50)"
// @Success 200 {object} utils.Response{data=[]services.LeaderboardEntry}
// @Router /gamification/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	entries, err := h.gamification.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load leaderboard"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", entries))
}

// Challenges godoc
// @Summary Challenge progress
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.UserChallenge}
// @Router /gamification/challenges [get]
func (h *Handler) Challenges(c *gin.Context) {
	user := middleware.CurrentUser(c)
	challenges, err := h.gamification.Challenges(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load challenges"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", challenges))
}
