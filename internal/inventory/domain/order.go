package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCanceled  = "CANCELED"
)

// Order represents the order entity
type Order struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Status     string    `json:"status" gorm:"not null;default:'PENDING';index:idx_orders_status_created"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_orders_status_created"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`

	Customer *Customer   `json:"customer,omitempty"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment  *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// IsPending checks whether the order can still be confirmed or canceled
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// TotalAmount sums qty*unit_price over the loaded items
func (o *Order) TotalAmount() float64 {
	total := 0.0
	for i := range o.Items {
		total += o.Items[i].TotalPrice()
	}
	return total
}

// TotalItems sums the quantities over the loaded items
func (o *Order) TotalItems() int {
	total := 0
	for i := range o.Items {
		total += o.Items[i].Qty
	}
	return total
}

// OrderRepository defines the contract for order data access.
// ConfirmOrder runs the whole reservation workflow in one transaction:
// either every item is fully reserved and the order becomes CONFIRMED,
// or nothing is persisted.
type OrderRepository interface {
	CreateOrder(order *Order) error
	FindOrderByID(id uuid.UUID) (*Order, error)
	FindAllOrders(limit, offset int) ([]Order, error)
	UpdateOrder(order *Order) error
	DeleteOrder(id uuid.UUID) error
	ConfirmOrder(ctx context.Context, id uuid.UUID) (*Order, []ReservationLine, error)
}
