package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock represents the stock of a product in one warehouse.
// The reserved <= qty check constraint is the final guard for
// concurrent reservations.
type Stock struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Qty         int       `json:"qty" gorm:"not null;default:0;check:qty >= 0"`
	Reserved    int       `json:"reserved" gorm:"not null;default:0;check:chk_stocks_reserved,reserved >= 0 AND reserved <= qty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_stocks_product_warehouse"`
	WarehouseID uuid.UUID `json:"warehouse_id" gorm:"type:uuid;not null;uniqueIndex:idx_stocks_product_warehouse"`

	Product   *Product   `json:"product,omitempty"`
	Warehouse *Warehouse `json:"warehouse,omitempty"`
}

// TableName specifies the table name
func (Stock) TableName() string {
	return "stocks"
}

func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// AvailableQty returns the quantity not yet reserved
func (s *Stock) AvailableQty() int {
	return s.Qty - s.Reserved
}

// ReservationLine is one stock row touched by a reservation plan.
type ReservationLine struct {
	StockID     uuid.UUID
	WarehouseID uuid.UUID
	Qty         int
}

// PlanReservation greedily allocates the requested quantity across the
// given stock rows. Rows must already be ordered highest qty first.
// The second return value is the unallocated remainder; a non-zero
// remainder means the plan must not be applied.
func PlanReservation(stocks []Stock, requested int) ([]ReservationLine, int) {
	var lines []ReservationLine
	remaining := requested
	for i := range stocks {
		if remaining <= 0 {
			break
		}
		available := stocks[i].AvailableQty()
		if available <= 0 {
			continue
		}
		take := available
		if remaining < available {
			take = remaining
		}
		lines = append(lines, ReservationLine{
			StockID:     stocks[i].ID,
			WarehouseID: stocks[i].WarehouseID,
			Qty:         take,
		})
		remaining -= take
	}
	return lines, remaining
}

// StockRepository defines the contract for stock data access
type StockRepository interface {
	CreateStock(stock *Stock) error
	FindStockByID(id uuid.UUID) (*Stock, error)
	FindAllStocks(limit, offset int) ([]Stock, error)
	FindAvailableStocks() ([]Stock, error)
	FindStocksByProduct(productID uuid.UUID) ([]Stock, error)
	UpdateStock(stock *Stock) error
	DeleteStock(id uuid.UUID) error
	SumReservedUnits() (int64, error)
}
