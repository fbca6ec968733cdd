package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand represents the brand entity
type Brand struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`

	// Deleting a brand still referenced by products is rejected by the store
	Products []Product `json:"products,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BrandRepository defines the contract for brand data access
type BrandRepository interface {
	CreateBrand(brand *Brand) error
	FindBrandByID(id uuid.UUID) (*Brand, error)
	FindAllBrands(limit, offset int) ([]Brand, error)
	UpdateBrand(brand *Brand) error
	DeleteBrand(id uuid.UUID) error
	FindProductsByBrand(brandID uuid.UUID) ([]Product, error)
}
