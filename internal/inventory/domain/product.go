package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents the product entity
type Product struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	SKU        string    `json:"sku" gorm:"column:sku;uniqueIndex;not null"`
	Price      float64   `json:"price" gorm:"not null;check:price > 0"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	BrandID    uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;index:idx_products_brand_category"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index:idx_products_brand_category"`

	Brand      *Brand      `json:"brand,omitempty"`
	Category   *Category   `json:"category,omitempty"`
	Stocks     []Stock     `json:"stocks,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TotalStock sums quantities across loaded stock rows
func (p *Product) TotalStock() int {
	total := 0
	for _, s := range p.Stocks {
		total += s.Qty
	}
	return total
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	CreateProduct(product *Product) error
	FindProductByID(id uuid.UUID) (*Product, error)
	FindProductBySKU(sku string) (*Product, error)
	FindAllProducts(limit, offset int) ([]Product, error)
	FindLowStockProducts(threshold int) ([]Product, error)
	UpdateProduct(product *Product) error
	DeleteProduct(id uuid.UUID) error
	CountProducts() (int64, error)
}
