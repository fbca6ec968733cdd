package domain

// InventoryRepository is the full data access contract of the service,
// one store backing every catalog and sales entity.
type InventoryRepository interface {
	BrandRepository
	CategoryRepository
	ProductRepository
	WarehouseRepository
	StockRepository
	CustomerRepository
	OrderRepository
	OrderItemRepository
	PaymentRepository
}
