package expense

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	expenses *services.ExpenseService
}

func NewHandler(expenses *services.ExpenseService) *Handler {
	return &Handler{expenses: expenses}
}

type CreateInput struct {
	Amount      float64    `json:"amount" binding:"required,gte=0"`
	Category    string     `json:"category" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type CreateResponse struct {
	Expense         *models.Expense      `json:"expense"`
	NewAchievements []models.Achievement `json:"new_achievements"`
}

// Create godoc
// @Summary Record an expense
// @Description Creates the expense, bumps the matching budget and evaluates achievements
// @Tags expenses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  CreateInput  true  "Expense Input"
// @Success 201 {object} utils.Response{data=CreateResponse}
// @Failure 400 {object} utils.Response
// @Router /expenses [post]
func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input CreateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	expense, unlocked, err := h.expenses.Create(c.Request.Context(), user,
		input.Amount, input.Category, input.Description, input.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create expense"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Expense recorded", CreateResponse{
		Expense:         expense,
		NewAchievements: unlocked,
	}))
}

// List godoc
// @Summary List expenses
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Expense}
// @Router /expenses [get]
func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	expenses, err := h.expenses.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list expenses"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", expenses))
}

// Export godoc
// @Summary Export expenses as CSV
// @Produce  text/csv
// @Security ApiKeyAuth
// @Success 200 {string} string "CSV payload"
// @Router /expenses/export [get]
func (h *Handler) Export(c *gin.Context) {
	user := middleware.CurrentUser(c)
	payload, err := h.expenses.ExportCSV(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to export expenses"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Data(http.StatusOK, "text/csv", payload)
}
