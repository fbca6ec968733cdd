package query

import (
	"fmt"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// AvailableStockQuery represents the query for stock rows with
// unreserved units
type AvailableStockQuery struct{}

// AvailableStockHandler handles available stock queries
type AvailableStockHandler struct {
	repo domain.StockRepository
}

// NewAvailableStockHandler creates a new available stock handler
func NewAvailableStockHandler(repo domain.StockRepository) *AvailableStockHandler {
	return &AvailableStockHandler{repo: repo}
}

// Handle executes the available stock query
func (h *AvailableStockHandler) Handle(query AvailableStockQuery) ([]domain.Stock, error) {
	stocks, err := h.repo.FindAvailableStocks()
	if err != nil {
		return nil, fmt.Errorf("failed to list available stocks: %w", err)
	}

	return stocks, nil
}
