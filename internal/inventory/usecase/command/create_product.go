package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Name       string
	SKU        string
	Price      float64
	IsActive   *bool
	BrandID    uuid.UUID
	CategoryID uuid.UUID
}

// CreateProductHandler handles create product command
type CreateProductHandler struct {
	products   domain.ProductRepository
	brands     domain.BrandRepository
	categories domain.CategoryRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(products domain.ProductRepository, brands domain.BrandRepository, categories domain.CategoryRepository) *CreateProductHandler {
	return &CreateProductHandler{products: products, brands: brands, categories: categories}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}
	if cmd.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if cmd.BrandID == uuid.Nil {
		return nil, fmt.Errorf("brand_id is required")
	}
	if cmd.CategoryID == uuid.Nil {
		return nil, fmt.Errorf("category_id is required")
	}

	if _, err := h.brands.FindBrandByID(cmd.BrandID); err != nil {
		return nil, fmt.Errorf("brand not found: %w", err)
	}
	if _, err := h.categories.FindCategoryByID(cmd.CategoryID); err != nil {
		return nil, fmt.Errorf("category not found: %w", err)
	}
	if existing, _ := h.products.FindProductBySKU(cmd.SKU); existing != nil {
		return nil, fmt.Errorf("sku %s already in use", cmd.SKU)
	}

	active := true
	if cmd.IsActive != nil {
		active = *cmd.IsActive
	}

	product := &domain.Product{
		Name:       cmd.Name,
		SKU:        cmd.SKU,
		Price:      cmd.Price,
		IsActive:   active,
		BrandID:    cmd.BrandID,
		CategoryID: cmd.CategoryID,
	}

	if err := h.products.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
