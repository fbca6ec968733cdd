package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/kafka"
	"github.com/tair/inventory-api/pkg/logger"
)

// EventPublisher publishes domain events after a confirmation succeeds
type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event kafka.OrderConfirmedEvent) error
	PublishPaymentConfirmed(ctx context.Context, event kafka.PaymentConfirmedEvent) error
}

// ConfirmOrderCommand represents the command to confirm an order
type ConfirmOrderCommand struct {
	OrderID uuid.UUID
}

// ConfirmOrderHandler handles confirm order command
type ConfirmOrderHandler struct {
	orders    domain.OrderRepository
	publisher EventPublisher
}

// NewConfirmOrderHandler creates a new confirm order handler. The
// publisher may be nil when Kafka is not configured.
func NewConfirmOrderHandler(orders domain.OrderRepository, publisher EventPublisher) *ConfirmOrderHandler {
	return &ConfirmOrderHandler{orders: orders, publisher: publisher}
}

// Handle executes the confirm order command
func (h *ConfirmOrderHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*domain.Order, error) {
	if cmd.OrderID == uuid.Nil {
		return nil, fmt.Errorf("order_id is required")
	}

	order, reserved, err := h.orders.ConfirmOrder(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		reservations := make([]kafka.StockReservation, 0, len(reserved))
		for _, line := range reserved {
			reservations = append(reservations, kafka.StockReservation{
				StockID:     line.StockID.String(),
				WarehouseID: line.WarehouseID.String(),
				Qty:         line.Qty,
			})
		}
		event := kafka.OrderConfirmedEvent{
			OrderID:      order.ID.String(),
			CustomerID:   order.CustomerID.String(),
			TotalAmount:  order.TotalAmount(),
			TotalItems:   order.TotalItems(),
			Reservations: reservations,
		}
		// The order is already confirmed, so a publish failure must
		// not fail the request.
		if err := h.publisher.PublishOrderConfirmed(ctx, event); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("order_id", order.ID.String()).
				Msg("Failed to publish order confirmed event")
		}
	}

	return order, nil
}
