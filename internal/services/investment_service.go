package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

type InvestmentService struct {
	store store.Store
}

func NewInvestmentService(s store.Store) *InvestmentService {
	return &InvestmentService{store: s}
}

func (i *InvestmentService) Create(ctx context.Context, userID, name, symbol string, shares, purchasePrice float64, purchaseDate time.Time) (*models.Investment, error) {
	investment := &models.Investment{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          name,
		Symbol:        symbol,
		Shares:        shares,
		PurchasePrice: purchasePrice,
		// Until a price feed refreshes it, the current price is the
		// purchase price.
		CurrentPrice: purchasePrice,
		PurchaseDate: purchaseDate,
		CreatedAt:    time.Now().UTC(),
	}
	if err := i.store.CreateInvestment(ctx, investment); err != nil {
		return nil, err
	}
	return investment, nil
}

func (i *InvestmentService) List(ctx context.Context, userID string) ([]models.Investment, error) {
	return i.store.ListInvestments(ctx, userID)
}
