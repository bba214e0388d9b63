package mongo

import (
	"context"

	"github.com/USveterandr/budgetwise-ai/internal/models"
)

func (s *Store) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	_, err := s.db.Collection(colReceipts).InsertOne(ctx, receipt)
	return err
}

func (s *Store) ListReceipts(ctx context.Context, userID string) ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := s.listByUser(ctx, colReceipts, userID, "created_at", -1, 0, &receipts)
	return receipts, err
}

func (s *Store) CreateDocument(ctx context.Context, doc *models.BudgetDocument) error {
	_, err := s.db.Collection(colDocuments).InsertOne(ctx, doc)
	return err
}

func (s *Store) ListDocuments(ctx context.Context, userID string) ([]models.BudgetDocument, error) {
	var docs []models.BudgetDocument
	err := s.listByUser(ctx, colDocuments, userID, "created_at", -1, 0, &docs)
	return docs, err
}
