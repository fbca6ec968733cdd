package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/internal/inventory/usecase/command"
	"github.com/tair/inventory-api/internal/inventory/usecase/query"
	"github.com/tair/inventory-api/pkg/logger"
)

// CreateBrand handles POST /api/brands
func (h *InventoryHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	brand := &domain.Brand{Name: req.Name, IsActive: true}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := h.repo.CreateBrand(brand); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create brand")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Brand created successfully",
		Data:    brand,
	})
}

// GetBrand handles GET /api/brands/{id}
func (h *InventoryHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	brand, err := h.repo.FindBrandByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Brand not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: brand})
}

// ListBrands handles GET /api/brands
func (h *InventoryHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	brands, err := h.repo.FindAllBrands(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list brands")
		respondError(w, http.StatusInternalServerError, "Failed to list brands")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: brands})
}

// UpdateBrand handles PUT /api/brands/{id}
func (h *InventoryHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	brand, err := h.repo.FindBrandByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Brand not found")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateBrand(brand); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update brand")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Brand updated successfully",
		Data:    brand,
	})
}

// DeleteBrand handles DELETE /api/brands/{id}
func (h *InventoryHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	if err := h.repo.DeleteBrand(id); err != nil {
		if errors.Is(err, domain.ErrEntityReferenced) {
			respondError(w, http.StatusConflict, "Brand is still referenced by products")
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete brand")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Brand deleted successfully"})
}

// ListBrandProducts handles GET /api/brands/{id}/products
func (h *InventoryHandler) ListBrandProducts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	products, err := h.repo.FindProductsByBrand(id)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list brand products")
		respondError(w, http.StatusInternalServerError, "Failed to list brand products")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// CreateCategory handles POST /api/categories
func (h *InventoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	category := &domain.Category{Name: req.Name, IsActive: true}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.repo.CreateCategory(category); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create category")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// GetCategory handles GET /api/categories/{id}
func (h *InventoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.repo.FindCategoryByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: category})
}

// ListCategories handles GET /api/categories
func (h *InventoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	categories, err := h.repo.FindAllCategories(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		respondError(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: categories})
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *InventoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.repo.FindCategoryByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateCategory(category); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update category")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *InventoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.repo.DeleteCategory(id); err != nil {
		if errors.Is(err, domain.ErrEntityReferenced) {
			respondError(w, http.StatusConflict, "Category is still referenced by products")
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete category")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Category deleted successfully"})
}

// ListCategoryProducts handles GET /api/categories/{id}/products
func (h *InventoryHandler) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	products, err := h.repo.FindProductsByCategory(id)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list category products")
		respondError(w, http.StatusInternalServerError, "Failed to list category products")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// CreateProduct handles POST /api/products
func (h *InventoryHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string  `json:"name"`
		SKU        string  `json:"sku"`
		Price      float64 `json:"price"`
		IsActive   *bool   `json:"is_active"`
		BrandID    string  `json:"brand_id"`
		CategoryID string  `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid brand_id")
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category_id")
		return
	}

	product, err := h.createProductHandler.Handle(command.CreateProductCommand{
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		IsActive:   req.IsActive,
		BrandID:    brandID,
		CategoryID: categoryID,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateProductsTotalMetric()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *InventoryHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.repo.FindProductByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// ListProducts handles GET /api/products
func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	products, err := h.listProductsHandler.Handle(query.ListProductsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// ListLowStockProducts handles GET /api/products/low-stock
func (h *InventoryHandler) ListLowStockProducts(w http.ResponseWriter, r *http.Request) {
	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))

	products, err := h.lowStockHandler.Handle(query.LowStockQuery{Threshold: threshold})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list low stock products")
		respondError(w, http.StatusInternalServerError, "Failed to list low stock products")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *InventoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.repo.FindProductByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	var req struct {
		Name     *string  `json:"name"`
		Price    *float64 `json:"price"`
		IsActive *bool    `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			respondError(w, http.StatusBadRequest, "price must be positive")
			return
		}
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateProduct(product); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.repo.DeleteProduct(id); err != nil {
		if errors.Is(err, domain.ErrEntityReferenced) {
			respondError(w, http.StatusConflict, "Product is still referenced by order items")
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateProductsTotalMetric()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// CreateWarehouse handles POST /api/warehouses
func (h *InventoryHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		City string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.City == "" {
		respondError(w, http.StatusBadRequest, "name and city are required")
		return
	}

	warehouse := &domain.Warehouse{Name: req.Name, City: req.City}
	if err := h.repo.CreateWarehouse(warehouse); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create warehouse")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Warehouse created successfully",
		Data:    warehouse,
	})
}

// GetWarehouse handles GET /api/warehouses/{id}
func (h *InventoryHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid warehouse ID")
		return
	}

	warehouse, err := h.repo.FindWarehouseByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Warehouse not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: warehouse})
}

// ListWarehouses handles GET /api/warehouses
func (h *InventoryHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	warehouses, err := h.repo.FindAllWarehouses(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list warehouses")
		respondError(w, http.StatusInternalServerError, "Failed to list warehouses")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: warehouses})
}

// UpdateWarehouse handles PUT /api/warehouses/{id}
func (h *InventoryHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid warehouse ID")
		return
	}

	warehouse, err := h.repo.FindWarehouseByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Warehouse not found")
		return
	}

	var req struct {
		Name *string `json:"name"`
		City *string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.City != nil {
		warehouse.City = *req.City
	}

	if err := h.repo.UpdateWarehouse(warehouse); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update warehouse")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Warehouse updated successfully",
		Data:    warehouse,
	})
}

// DeleteWarehouse handles DELETE /api/warehouses/{id}
func (h *InventoryHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid warehouse ID")
		return
	}

	if err := h.repo.DeleteWarehouse(id); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete warehouse")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Warehouse deleted successfully"})
}

// ListProductStocks handles GET /api/products/{id}/stocks
func (h *InventoryHandler) ListProductStocks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	stocks, err := h.repo.FindStocksByProduct(id)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list product stocks")
		respondError(w, http.StatusInternalServerError, "Failed to list product stocks")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stocks})
}

// ListWarehouseStocks handles GET /api/warehouses/{id}/stocks
func (h *InventoryHandler) ListWarehouseStocks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid warehouse ID")
		return
	}

	stocks, err := h.repo.FindStocksByWarehouse(id)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list warehouse stocks")
		respondError(w, http.StatusInternalServerError, "Failed to list warehouse stocks")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stocks})
}
