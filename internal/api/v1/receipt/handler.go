package receipt

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

type Handler struct {
	receipts *services.ReceiptService
}

func NewHandler(receipts *services.ReceiptService) *Handler {
	return &Handler{receipts: receipts}
}

type UploadInput struct {
	FileName    string `json:"file_name" binding:"required"`
	StorageKey  string `json:"storage_key"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type" binding:"omitempty,oneof=image/jpeg image/png image/webp"`
}

type DocumentInput struct {
	Title      string `json:"title" binding:"required"`
	FileName   string `json:"file_name"`
	StorageKey string `json:"storage_key"`
}

// Upload godoc
// @Summary Register an uploaded receipt
// @Description Stores the receipt record and runs AI extraction when image data is supplied
// @Tags receipts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  UploadInput  true  "Receipt Upload"
// @Success 201 {object} utils.Response{data=models.Receipt}
// @Failure 400 {object} utils.Response
// @Router /receipts [post]
func (h *Handler) Upload(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input UploadInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	receipt, err := h.receipts.CreateFromUpload(c.Request.Context(), user.ID,
		input.FileName, input.StorageKey, input.ImageBase64, mimeType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store receipt"))
		return
	}
	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Receipt stored", receipt))
}

// List godoc
// @Summary List receipts
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Receipt}
// @Router /receipts [get]
func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	receipts, err := h.receipts.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list receipts"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", receipts))
}

// CreateDocument godoc
// @Summary Register a budget statement document
// @Tags receipts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  DocumentInput  true  "Document Input"
// @Success 201 {object} utils.Response{data=models.BudgetDocument}
// @Router /documents [post]
func (h *Handler) CreateDocument(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input DocumentInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	doc, err := h.receipts.CreateDocument(c.Request.Context(), user.ID,
		input.Title, input.FileName, input.StorageKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store document"))
		return
	}
	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Document stored", doc))
}

// ListDocuments godoc
// @Summary List budget statement documents
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.BudgetDocument}
// @Router /documents [get]
func (h *Handler) ListDocuments(c *gin.Context) {
	user := middleware.CurrentUser(c)
	docs, err := h.receipts.ListDocuments(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list documents"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", docs))
}
