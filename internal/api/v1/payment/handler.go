package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	payments *services.PaymentService
}

func NewHandler(payments *services.PaymentService) *Handler {
	return &Handler{payments: payments}
}

type CheckoutInput struct {
	Plan string `json:"plan" binding:"required"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// CreateCheckout godoc
// @Summary Start a subscription checkout
// @Description Creates a provider checkout session for a paid plan
// @Tags subscription
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  CheckoutInput  true  "Plan"
// @Success 200 {object} utils.Response{data=CheckoutResponse}
// @Failure 400 {object} utils.Response
// @Router /subscription/checkout [post]
func (h *Handler) CreateCheckout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input CheckoutInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	url, err := h.payments.CreateCheckout(c.Request.Context(), user, input.Plan)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPlan) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Unknown subscription plan"))
			return
		}
		zap.L().Error("checkout session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create checkout session"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", CheckoutResponse{CheckoutURL: url}))
}

// Webhook godoc
// @Summary Payment provider webhook
// @Description Verifies the event signature and applies completed checkouts
// @Tags subscription
// @Accept  json
// @Produce  json
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /subscription/webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Failed to read payload"))
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.payments.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		zap.L().Warn("webhook rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid webhook event"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", nil))
}
