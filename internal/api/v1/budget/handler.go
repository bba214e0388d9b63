package budget

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	budgets *services.BudgetService
}

func NewHandler(budgets *services.BudgetService) *Handler {
	return &Handler{budgets: budgets}
}

type CreateInput struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gte=0"`
	Period   string  `json:"period" binding:"omitempty,oneof=weekly monthly yearly"`
}

// Create godoc
// @Summary Create a budget
// @Description Creates a category budget; spent is seeded from existing expenses
// @Tags budgets
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  CreateInput  true  "Budget Input"
// @Success 201 {object} utils.Response{data=models.Budget}
// @Failure 400 {object} utils.Response
// @Router /budgets [post]
func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input CreateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	budget, err := h.budgets.Create(c.Request.Context(), user.ID, input.Category, input.Amount, input.Period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create budget"))
		return
	}
	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Budget created", budget))
}

// List godoc
// @Summary List budgets
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Budget}
// @Router /budgets [get]
func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	budgets, err := h.budgets.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list budgets"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", budgets))
}
