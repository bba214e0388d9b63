package investment

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	investments *services.InvestmentService
}

func NewHandler(investments *services.InvestmentService) *Handler {
	return &Handler{investments: investments}
}

type CreateInput struct {
	Name          string    `json:"name" binding:"required"`
	Symbol        string    `json:"symbol" binding:"required"`
	Shares        float64   `json:"shares" binding:"required,gt=0"`
	PurchasePrice float64   `json:"purchase_price" binding:"required,gte=0"`
	PurchaseDate  time.Time `json:"purchase_date" binding:"required"`
}

// Create godoc
// @Summary Log an investment
// @Tags investments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  CreateInput  true  "Investment Input"
// @Success 201 {object} utils.Response{data=models.Investment}
// @Failure 400 {object} utils.Response
// @Router /investments [post]
func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input CreateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	investment, err := h.investments.Create(c.Request.Context(), user.ID,
		input.Name, input.Symbol, input.Shares, input.PurchasePrice, input.PurchaseDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to log investment"))
		return
	}
	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Investment logged", investment))
}

// List godoc
// @Summary List investments
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Investment}
// @Router /investments [get]
func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	investments, err := h.investments.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list investments"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", investments))
}
