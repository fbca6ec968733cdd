package command

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// amountTolerance absorbs float rounding when comparing a payment
// amount against the order total.
const amountTolerance = 0.01

// CreatePaymentCommand represents the command to create a payment
type CreatePaymentCommand struct {
	OrderID uuid.UUID
	Method  string
	Amount  float64
}

// CreatePaymentHandler handles create payment command
type CreatePaymentHandler struct {
	payments domain.PaymentRepository
	orders   domain.OrderRepository
}

// NewCreatePaymentHandler creates a new create payment handler
func NewCreatePaymentHandler(payments domain.PaymentRepository, orders domain.OrderRepository) *CreatePaymentHandler {
	return &CreatePaymentHandler{payments: payments, orders: orders}
}

// Handle executes the create payment command
func (h *CreatePaymentHandler) Handle(cmd CreatePaymentCommand) (*domain.Payment, error) {
	if cmd.OrderID == uuid.Nil {
		return nil, fmt.Errorf("order_id is required")
	}
	if !domain.IsValidPaymentMethod(cmd.Method) {
		return nil, fmt.Errorf("unsupported payment method %q", cmd.Method)
	}
	if cmd.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	order, err := h.orders.FindOrderByID(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	total := order.TotalAmount()
	if math.Abs(cmd.Amount-total) > amountTolerance {
		return nil, fmt.Errorf("amount %.2f does not match order total %.2f", cmd.Amount, total)
	}

	payment := &domain.Payment{
		OrderID: cmd.OrderID,
		Method:  cmd.Method,
		Amount:  cmd.Amount,
		Status:  domain.PaymentStatusPending,
	}

	if err := h.payments.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}
