package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// foreignKeyViolation is the postgres error code raised when a
// restrict-delete relationship still holds.
const foreignKeyViolation = "23503"

// GormInventoryRepository implements every entity repository interface
// over one shared *gorm.DB.
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Brand{},
		&domain.Category{},
		&domain.Product{},
		&domain.Warehouse{},
		&domain.Stock{},
		&domain.Customer{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Payment{},
	)
}

// translateDelete maps FK restrict violations to the domain error so
// handlers can answer with a client error instead of a 500.
func translateDelete(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrEntityReferenced, pqErr.Detail)
	}
	return err
}

// --- Brand ---

func (r *GormInventoryRepository) CreateBrand(brand *domain.Brand) error {
	return r.db.Create(brand).Error
}

func (r *GormInventoryRepository) FindBrandByID(id uuid.UUID) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *GormInventoryRepository) FindAllBrands(limit, offset int) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&brands).Error
	return brands, err
}

func (r *GormInventoryRepository) UpdateBrand(brand *domain.Brand) error {
	return r.db.Save(brand).Error
}

func (r *GormInventoryRepository) DeleteBrand(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Brand{}, "id = ?", id).Error)
}

func (r *GormInventoryRepository) FindProductsByBrand(brandID uuid.UUID) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("brand_id = ? AND is_active = ?", brandID, true).
		Order("name").Find(&products).Error
	return products, err
}

// --- Category ---

func (r *GormInventoryRepository) CreateCategory(category *domain.Category) error {
	return r.db.Create(category).Error
}

func (r *GormInventoryRepository) FindCategoryByID(id uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormInventoryRepository) FindAllCategories(limit, offset int) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&categories).Error
	return categories, err
}

func (r *GormInventoryRepository) UpdateCategory(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *GormInventoryRepository) DeleteCategory(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Category{}, "id = ?", id).Error)
}

func (r *GormInventoryRepository) FindProductsByCategory(categoryID uuid.UUID) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("name").Find(&products).Error
	return products, err
}

// --- Product ---

func (r *GormInventoryRepository) CreateProduct(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormInventoryRepository) FindProductByID(id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Joins("Brand").Joins("Category").
		Preload("Stocks.Warehouse").
		First(&product, "products.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormInventoryRepository) FindProductBySKU(sku string) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormInventoryRepository) FindAllProducts(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Joins("Brand").Joins("Category").
		Limit(limit).Offset(offset).Order("products.name").
		Find(&products).Error
	return products, err
}

// FindLowStockProducts returns active products whose summed stock
// across all warehouses is below the threshold.
func (r *GormInventoryRepository) FindLowStockProducts(threshold int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Joins("Brand").Joins("Category").
		Where("products.is_active = ?", true).
		Where("(SELECT COALESCE(SUM(s.qty), 0) FROM stocks s WHERE s.product_id = products.id) < ?", threshold).
		Order("products.name").
		Find(&products).Error
	return products, err
}

func (r *GormInventoryRepository) UpdateProduct(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormInventoryRepository) DeleteProduct(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Product{}, "id = ?", id).Error)
}

func (r *GormInventoryRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

// --- Warehouse ---

func (r *GormInventoryRepository) CreateWarehouse(warehouse *domain.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *GormInventoryRepository) FindWarehouseByID(id uuid.UUID) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	if err := r.db.First(&warehouse, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *GormInventoryRepository) FindAllWarehouses(limit, offset int) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	err := r.db.Limit(limit).Offset(offset).Order("city, name").Find(&warehouses).Error
	return warehouses, err
}

func (r *GormInventoryRepository) UpdateWarehouse(warehouse *domain.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *GormInventoryRepository) DeleteWarehouse(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Warehouse{}, "id = ?", id).Error)
}

func (r *GormInventoryRepository) FindStocksByWarehouse(warehouseID uuid.UUID) ([]domain.Stock, error) {
	var stocks []domain.Stock
	err := r.db.Joins("Product").Joins("Warehouse").
		Where("stocks.warehouse_id = ?", warehouseID).
		Find(&stocks).Error
	return stocks, err
}

// --- Stock ---

func (r *GormInventoryRepository) CreateStock(stock *domain.Stock) error {
	return r.db.Create(stock).Error
}

func (r *GormInventoryRepository) FindStockByID(id uuid.UUID) (*domain.Stock, error) {
	var stock domain.Stock
	err := r.db.Joins("Product").Joins("Warehouse").
		First(&stock, "stocks.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *GormInventoryRepository) FindAllStocks(limit, offset int) ([]domain.Stock, error) {
	var stocks []domain.Stock
	err := r.db.Joins("Product").Joins("Warehouse").
		Limit(limit).Offset(offset).
		Find(&stocks).Error
	return stocks, err
}

// FindAvailableStocks returns rows that still have unreserved units.
func (r *GormInventoryRepository) FindAvailableStocks() ([]domain.Stock, error) {
	var stocks []domain.Stock
	err := r.db.Joins("Product").Joins("Warehouse").
		Where("stocks.qty > stocks.reserved").
		Find(&stocks).Error
	return stocks, err
}

func (r *GormInventoryRepository) FindStocksByProduct(productID uuid.UUID) ([]domain.Stock, error) {
	var stocks []domain.Stock
	err := r.db.Joins("Warehouse").
		Where("stocks.product_id = ?", productID).
		Find(&stocks).Error
	return stocks, err
}

func (r *GormInventoryRepository) UpdateStock(stock *domain.Stock) error {
	return r.db.Save(stock).Error
}

func (r *GormInventoryRepository) DeleteStock(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Stock{}, "id = ?", id).Error)
}

func (r *GormInventoryRepository) SumReservedUnits() (int64, error) {
	var sum int64
	err := r.db.Model(&domain.Stock{}).
		Select("COALESCE(SUM(reserved), 0)").
		Scan(&sum).Error
	return sum, err
}

// --- Customer ---

func (r *GormInventoryRepository) CreateCustomer(customer *domain.Customer) error {
	return r.db.Create(customer).Error
}

func (r *GormInventoryRepository) FindCustomerByID(id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormInventoryRepository) FindCustomerByEmail(email string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormInventoryRepository) FindAllCustomers(limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.Limit(limit).Offset(offset).Order("full_name").Find(&customers).Error
	return customers, err
}

func (r *GormInventoryRepository) UpdateCustomer(customer *domain.Customer) error {
	return r.db.Save(customer).Error
}

func (r *GormInventoryRepository) DeleteCustomer(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Customer{}, "id = ?", id).Error)
}

func (r *GormInventoryRepository) FindOrdersByCustomer(customerID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items.Product").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// --- Order ---

func (r *GormInventoryRepository) CreateOrder(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *GormInventoryRepository) FindOrderByID(id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Joins("Customer").
		Preload("Items.Product").Preload("Payment").
		First(&order, "orders.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormInventoryRepository) FindAllOrders(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Joins("Customer").
		Preload("Items.Product").Preload("Payment").
		Limit(limit).Offset(offset).Order("orders.created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormInventoryRepository) UpdateOrder(order *domain.Order) error {
	return r.db.Save(order).Error
}

func (r *GormInventoryRepository) DeleteOrder(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Order{}, "id = ?", id).Error)
}

// --- OrderItem ---

func (r *GormInventoryRepository) CreateOrderItem(item *domain.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *GormInventoryRepository) FindOrderItemByID(id uuid.UUID) (*domain.OrderItem, error) {
	var item domain.OrderItem
	err := r.db.Joins("Order").Joins("Product").
		First(&item, "order_items.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindAllOrderItems(limit, offset int) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	err := r.db.Joins("Order").Joins("Product").
		Limit(limit).Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) UpdateOrderItem(item *domain.OrderItem) error {
	return r.db.Save(item).Error
}

func (r *GormInventoryRepository) DeleteOrderItem(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.OrderItem{}, "id = ?", id).Error)
}

// --- Payment ---

func (r *GormInventoryRepository) CreatePayment(payment *domain.Payment) error {
	return r.db.Create(payment).Error
}

func (r *GormInventoryRepository) FindPaymentByID(id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.Preload("Order.Customer").
		First(&payment, "payments.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *GormInventoryRepository) FindAllPayments(limit, offset int) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.Preload("Order.Customer").
		Limit(limit).Offset(offset).Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *GormInventoryRepository) UpdatePayment(payment *domain.Payment) error {
	return r.db.Save(payment).Error
}

func (r *GormInventoryRepository) DeletePayment(id uuid.UUID) error {
	return translateDelete(r.db.Delete(&domain.Payment{}, "id = ?", id).Error)
}
