package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/USveterandr/budgetwise-ai/internal/ai"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

type ReceiptService struct {
	store  store.Store
	parser ai.Parser
}

func NewReceiptService(s store.Store, parser ai.Parser) *ReceiptService {
	return &ReceiptService{store: s, parser: parser}
}

// CreateFromUpload persists the receipt record and, when a parser is
// configured, runs extraction inline. Extraction failure does not fail the
// upload; the record just stays unparsed.
func (r *ReceiptService) CreateFromUpload(ctx context.Context, userID, fileName, storageKey, imageBase64, mimeType string) (*models.Receipt, error) {
	receipt := &models.Receipt{
		ID:         uuid.New().String(),
		UserID:     userID,
		FileName:   fileName,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if r.parser != nil && imageBase64 != "" {
		parsed, err := r.parser.ParseReceipt(ctx, imageBase64, mimeType)
		if err != nil {
			zap.L().Warn("receipt extraction failed",
				zap.String("user_id", userID),
				zap.String("file", fileName),
				zap.Error(err))
		} else {
			receipt.Merchant = parsed.Merchant
			receipt.Total = parsed.Total
			if payload, err := json.Marshal(parsed); err == nil {
				receipt.Parsed = datatypes.JSON(payload)
			}
		}
	}

	if err := r.store.CreateReceipt(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (r *ReceiptService) List(ctx context.Context, userID string) ([]models.Receipt, error) {
	return r.store.ListReceipts(ctx, userID)
}

// CreateDocument records an uploaded budget statement.
func (r *ReceiptService) CreateDocument(ctx context.Context, userID, title, fileName, storageKey string) (*models.BudgetDocument, error) {
	doc := &models.BudgetDocument{
		ID:         uuid.New().String(),
		UserID:     userID,
		Title:      title,
		FileName:   fileName,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.store.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *ReceiptService) ListDocuments(ctx context.Context, userID string) ([]models.BudgetDocument, error) {
	return r.store.ListDocuments(ctx, userID)
}
