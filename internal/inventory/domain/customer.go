package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents the customer entity
type Customer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Deleting a customer with orders is rejected by the store
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	CreateCustomer(customer *Customer) error
	FindCustomerByID(id uuid.UUID) (*Customer, error)
	FindCustomerByEmail(email string) (*Customer, error)
	FindAllCustomers(limit, offset int) ([]Customer, error)
	UpdateCustomer(customer *Customer) error
	DeleteCustomer(id uuid.UUID) error
	FindOrdersByCustomer(customerID uuid.UUID) ([]Order, error)
}
