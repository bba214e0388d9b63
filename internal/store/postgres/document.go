package postgres

import (
	"context"

	"github.com/USveterandr/budgetwise-ai/internal/models"
)

func (s *Store) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	return s.db.WithContext(ctx).Create(receipt).Error
}

func (s *Store) ListReceipts(ctx context.Context, userID string) ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Find(&receipts).Error
	return receipts, err
}

func (s *Store) CreateDocument(ctx context.Context, doc *models.BudgetDocument) error {
	return s.db.WithContext(ctx).Create(doc).Error
}

func (s *Store) ListDocuments(ctx context.Context, userID string) ([]models.BudgetDocument, error) {
	var docs []models.BudgetDocument
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Find(&docs).Error
	return docs, err
}
