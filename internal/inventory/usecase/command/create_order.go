package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// CreateOrderItemInput is one order line in a create order command.
// A nil UnitPrice means "capture the current product price".
type CreateOrderItemInput struct {
	ProductID uuid.UUID
	Qty       int
	UnitPrice *float64
}

// CreateOrderCommand represents the command to create an order with its items
type CreateOrderCommand struct {
	CustomerID uuid.UUID
	Items      []CreateOrderItemInput
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	products  domain.ProductRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(orders domain.OrderRepository, customers domain.CustomerRepository, products domain.ProductRepository) *CreateOrderHandler {
	return &CreateOrderHandler{orders: orders, customers: customers, products: products}
}

// Handle executes the create order command. The order starts PENDING;
// stock is only touched later by order confirmation.
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.CustomerID == uuid.Nil {
		return nil, fmt.Errorf("customer_id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order needs at least one item")
	}

	if _, err := h.customers.FindCustomerByID(cmd.CustomerID); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(cmd.Items))
	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for i, in := range cmd.Items {
		if in.ProductID == uuid.Nil {
			return nil, fmt.Errorf("item %d: product_id is required", i)
		}
		if in.Qty < 1 {
			return nil, fmt.Errorf("item %d: qty must be at least 1", i)
		}
		if seen[in.ProductID] {
			return nil, fmt.Errorf("item %d: product repeated within the order", i)
		}
		seen[in.ProductID] = true

		product, err := h.products.FindProductByID(in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("item %d: product not found: %w", i, err)
		}

		// Price is captured at order time so later catalog updates
		// never change existing orders.
		unitPrice := product.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		if unitPrice <= 0 {
			return nil, fmt.Errorf("item %d: unit_price must be positive", i)
		}

		items = append(items, domain.OrderItem{
			ProductID: in.ProductID,
			Qty:       in.Qty,
			UnitPrice: unitPrice,
		})
	}

	order := &domain.Order{
		Status:     domain.OrderStatusPending,
		CustomerID: cmd.CustomerID,
		Items:      items,
	}

	if err := h.orders.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
