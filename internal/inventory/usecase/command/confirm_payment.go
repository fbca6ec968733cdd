package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/kafka"
	"github.com/tair/inventory-api/pkg/logger"
)

// ConfirmPaymentCommand represents the command to confirm a payment
type ConfirmPaymentCommand struct {
	PaymentID uuid.UUID
}

// ConfirmPaymentHandler handles confirm payment command
type ConfirmPaymentHandler struct {
	payments  domain.PaymentRepository
	publisher EventPublisher
}

// NewConfirmPaymentHandler creates a new confirm payment handler. The
// publisher may be nil when Kafka is not configured.
func NewConfirmPaymentHandler(payments domain.PaymentRepository, publisher EventPublisher) *ConfirmPaymentHandler {
	return &ConfirmPaymentHandler{payments: payments, publisher: publisher}
}

// Handle executes the confirm payment command
func (h *ConfirmPaymentHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*domain.Payment, error) {
	if cmd.PaymentID == uuid.Nil {
		return nil, fmt.Errorf("payment_id is required")
	}

	payment, err := h.payments.ConfirmPayment(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.PaymentConfirmedEvent{
			PaymentID: payment.ID.String(),
			OrderID:   payment.OrderID.String(),
			Method:    payment.Method,
			Amount:    payment.Amount,
		}
		if err := h.publisher.PublishPaymentConfirmed(ctx, event); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("payment_id", payment.ID.String()).
				Msg("Failed to publish payment confirmed event")
		}
	}

	return payment, nil
}
