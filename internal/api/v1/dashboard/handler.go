package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	dashboard *services.DashboardService
}

func NewHandler(dashboard *services.DashboardService) *Handler {
	return &Handler{dashboard: dashboard}
}

// Get godoc
// @Summary Dashboard snapshot
// @Description Recent expenses, budgets, month-to-date spend and achievement count
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.DashboardSnapshot}
// @Router /dashboard [get]
func (h *Handler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	snapshot, err := h.dashboard.Snapshot(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load dashboard"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", snapshot))
}
