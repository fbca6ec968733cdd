package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment methods
const (
	PaymentMethodCard     = "CARD"
	PaymentMethodTransfer = "TRANSFER"
	PaymentMethodCOD      = "COD"
)

// Payment statuses
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusConfirmed = "CONFIRMED"
	PaymentStatusFailed    = "FAILED"
)

// Payment represents the payment entity (one per order)
type Payment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Method    string    `json:"method" gorm:"not null;index:idx_payments_status_method,priority:2"`
	Amount    float64   `json:"amount" gorm:"not null;check:amount > 0"`
	Status    string    `json:"status" gorm:"not null;default:'PENDING';index:idx_payments_status_method,priority:1"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;uniqueIndex"`

	Order *Order `json:"order,omitempty"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsValidPaymentMethod reports whether m is one of the supported methods
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCOD:
		return true
	}
	return false
}

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	CreatePayment(payment *Payment) error
	FindPaymentByID(id uuid.UUID) (*Payment, error)
	FindAllPayments(limit, offset int) ([]Payment, error)
	UpdatePayment(payment *Payment) error
	DeletePayment(id uuid.UUID) error
	ConfirmPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
}
