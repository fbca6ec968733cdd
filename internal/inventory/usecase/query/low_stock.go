package query

import (
	"fmt"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// defaultLowStockThreshold is used when the request does not set one.
const defaultLowStockThreshold = 10

// LowStockQuery represents the query for products running low on stock
type LowStockQuery struct {
	Threshold int
}

// LowStockHandler handles low stock queries
type LowStockHandler struct {
	repo domain.ProductRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ProductRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(query LowStockQuery) ([]domain.Product, error) {
	if query.Threshold <= 0 {
		query.Threshold = defaultLowStockThreshold
	}

	products, err := h.repo.FindLowStockProducts(query.Threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	return products, nil
}
