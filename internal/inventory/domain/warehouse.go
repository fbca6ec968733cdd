package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Warehouse represents the warehouse entity
type Warehouse struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	City      string    `json:"city" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	Stocks []Stock `json:"stocks,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Warehouse) TableName() string {
	return "warehouses"
}

func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// WarehouseRepository defines the contract for warehouse data access
type WarehouseRepository interface {
	CreateWarehouse(warehouse *Warehouse) error
	FindWarehouseByID(id uuid.UUID) (*Warehouse, error)
	FindAllWarehouses(limit, offset int) ([]Warehouse, error)
	UpdateWarehouse(warehouse *Warehouse) error
	DeleteWarehouse(id uuid.UUID) error
	FindStocksByWarehouse(warehouseID uuid.UUID) ([]Stock, error)
}
