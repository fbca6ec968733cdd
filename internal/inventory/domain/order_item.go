package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem represents one product line of an order. The unit price is
// captured at creation time, not live-linked to the product price.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Qty       int       `json:"qty" gorm:"not null;check:qty >= 1"`
	UnitPrice float64   `json:"unit_price" gorm:"not null;check:unit_price > 0"`
	CreatedAt time.Time `json:"created_at"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product"`

	Order   *Order   `json:"order,omitempty"`
	Product *Product `json:"product,omitempty"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TotalPrice returns qty * unit_price
func (i *OrderItem) TotalPrice() float64 {
	return float64(i.Qty) * i.UnitPrice
}

// OrderItemRepository defines the contract for order item data access
type OrderItemRepository interface {
	CreateOrderItem(item *OrderItem) error
	FindOrderItemByID(id uuid.UUID) (*OrderItem, error)
	FindAllOrderItems(limit, offset int) ([]OrderItem, error)
	UpdateOrderItem(item *OrderItem) error
	DeleteOrderItem(id uuid.UUID) error
}
