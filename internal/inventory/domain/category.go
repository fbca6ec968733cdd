package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents the category entity
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	CreateCategory(category *Category) error
	FindCategoryByID(id uuid.UUID) (*Category, error)
	FindAllCategories(limit, offset int) ([]Category, error)
	UpdateCategory(category *Category) error
	DeleteCategory(id uuid.UUID) error
	FindProductsByCategory(categoryID uuid.UUID) ([]Product, error)
}
