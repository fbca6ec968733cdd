package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// CreateStockCommand represents the command to create a stock row
type CreateStockCommand struct {
	ProductID   uuid.UUID
	WarehouseID uuid.UUID
	Qty         int
}

// CreateStockHandler handles create stock command
type CreateStockHandler struct {
	stocks     domain.StockRepository
	products   domain.ProductRepository
	warehouses domain.WarehouseRepository
}

// NewCreateStockHandler creates a new create stock handler
func NewCreateStockHandler(stocks domain.StockRepository, products domain.ProductRepository, warehouses domain.WarehouseRepository) *CreateStockHandler {
	return &CreateStockHandler{stocks: stocks, products: products, warehouses: warehouses}
}

// Handle executes the create stock command
func (h *CreateStockHandler) Handle(cmd CreateStockCommand) (*domain.Stock, error) {
	if cmd.ProductID == uuid.Nil {
		return nil, fmt.Errorf("product_id is required")
	}
	if cmd.WarehouseID == uuid.Nil {
		return nil, fmt.Errorf("warehouse_id is required")
	}
	if cmd.Qty < 0 {
		return nil, fmt.Errorf("qty cannot be negative")
	}

	if _, err := h.products.FindProductByID(cmd.ProductID); err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	if _, err := h.warehouses.FindWarehouseByID(cmd.WarehouseID); err != nil {
		return nil, fmt.Errorf("warehouse not found: %w", err)
	}

	stock := &domain.Stock{
		ProductID:   cmd.ProductID,
		WarehouseID: cmd.WarehouseID,
		Qty:         cmd.Qty,
	}

	if err := h.stocks.CreateStock(stock); err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	return stock, nil
}
