package relquery

// Kind identifies one of the nine entity types the engine can query.
// All relation and column resolution goes through the closed tables
// below; request input never reaches SQL as an identifier.
type Kind string

const (
	KindBrand     Kind = "brand"
	KindCategory  Kind = "category"
	KindProduct   Kind = "product"
	KindWarehouse Kind = "warehouse"
	KindStock     Kind = "stock"
	KindCustomer  Kind = "customer"
	KindOrder     Kind = "order"
	KindOrderItem Kind = "orderitem"
	KindPayment   Kind = "payment"
)

// ParseKind maps a request entity name to a Kind.
func ParseKind(name string) (Kind, bool) {
	switch Kind(name) {
	case KindBrand, KindCategory, KindProduct, KindWarehouse, KindStock,
		KindCustomer, KindOrder, KindOrderItem, KindPayment:
		return Kind(name), true
	}
	return "", false
}

// Relation is one directed hop of the relationship graph, with the SQL
// metadata needed to generate a join for it and the GORM association
// name needed to eager- or batch-load it.
type Relation struct {
	Name        string // segment name used in paths
	Target      Kind
	ToMany      bool
	Table       string // target table
	JoinColumn  string // column on the target table
	LocalColumn string // column on the source table
	GormField   string // association field name on the source struct
}

var tables = map[Kind]string{
	KindBrand:     "brands",
	KindCategory:  "categories",
	KindProduct:   "products",
	KindWarehouse: "warehouses",
	KindStock:     "stocks",
	KindCustomer:  "customers",
	KindOrder:     "orders",
	KindOrderItem: "order_items",
	KindPayment:   "payments",
}

// TableOf returns the SQL table backing a kind.
func TableOf(k Kind) string {
	return tables[k]
}

// relations enumerates every hop of the relationship graph per source kind.
var relations = map[Kind]map[string]Relation{
	KindBrand: {
		"products": {Name: "products", Target: KindProduct, ToMany: true, Table: "products", JoinColumn: "brand_id", LocalColumn: "id", GormField: "Products"},
	},
	KindCategory: {
		"products": {Name: "products", Target: KindProduct, ToMany: true, Table: "products", JoinColumn: "category_id", LocalColumn: "id", GormField: "Products"},
	},
	KindProduct: {
		"brand":       {Name: "brand", Target: KindBrand, Table: "brands", JoinColumn: "id", LocalColumn: "brand_id", GormField: "Brand"},
		"category":    {Name: "category", Target: KindCategory, Table: "categories", JoinColumn: "id", LocalColumn: "category_id", GormField: "Category"},
		"stocks":      {Name: "stocks", Target: KindStock, ToMany: true, Table: "stocks", JoinColumn: "product_id", LocalColumn: "id", GormField: "Stocks"},
		"order_items": {Name: "order_items", Target: KindOrderItem, ToMany: true, Table: "order_items", JoinColumn: "product_id", LocalColumn: "id", GormField: "OrderItems"},
	},
	KindWarehouse: {
		"stocks": {Name: "stocks", Target: KindStock, ToMany: true, Table: "stocks", JoinColumn: "warehouse_id", LocalColumn: "id", GormField: "Stocks"},
	},
	KindStock: {
		"product":   {Name: "product", Target: KindProduct, Table: "products", JoinColumn: "id", LocalColumn: "product_id", GormField: "Product"},
		"warehouse": {Name: "warehouse", Target: KindWarehouse, Table: "warehouses", JoinColumn: "id", LocalColumn: "warehouse_id", GormField: "Warehouse"},
	},
	KindCustomer: {
		"orders": {Name: "orders", Target: KindOrder, ToMany: true, Table: "orders", JoinColumn: "customer_id", LocalColumn: "id", GormField: "Orders"},
	},
	KindOrder: {
		"customer": {Name: "customer", Target: KindCustomer, Table: "customers", JoinColumn: "id", LocalColumn: "customer_id", GormField: "Customer"},
		"items":    {Name: "items", Target: KindOrderItem, ToMany: true, Table: "order_items", JoinColumn: "order_id", LocalColumn: "id", GormField: "Items"},
		"payment":  {Name: "payment", Target: KindPayment, Table: "payments", JoinColumn: "order_id", LocalColumn: "id", GormField: "Payment"},
	},
	KindOrderItem: {
		"order":   {Name: "order", Target: KindOrder, Table: "orders", JoinColumn: "id", LocalColumn: "order_id", GormField: "Order"},
		"product": {Name: "product", Target: KindProduct, Table: "products", JoinColumn: "id", LocalColumn: "product_id", GormField: "Product"},
	},
	KindPayment: {
		"order": {Name: "order", Target: KindOrder, Table: "orders", JoinColumn: "id", LocalColumn: "order_id", GormField: "Order"},
	},
}

// columns whitelists the filterable/orderable columns per kind. Keys are
// the external field names, values the SQL column names.
var columns = map[Kind]map[string]string{
	KindBrand: {
		"id": "id", "name": "name", "is_active": "is_active", "created_at": "created_at",
	},
	KindCategory: {
		"id": "id", "name": "name", "is_active": "is_active", "created_at": "created_at",
	},
	KindProduct: {
		"id": "id", "name": "name", "sku": "sku", "price": "price",
		"is_active": "is_active", "created_at": "created_at",
		"brand_id": "brand_id", "category_id": "category_id",
	},
	KindWarehouse: {
		"id": "id", "name": "name", "city": "city", "created_at": "created_at",
	},
	KindStock: {
		"id": "id", "qty": "qty", "reserved": "reserved",
		"created_at": "created_at", "updated_at": "updated_at",
		"product_id": "product_id", "warehouse_id": "warehouse_id",
	},
	KindCustomer: {
		"id": "id", "full_name": "full_name", "email": "email", "created_at": "created_at",
	},
	KindOrder: {
		"id": "id", "status": "status", "created_at": "created_at", "customer_id": "customer_id",
	},
	KindOrderItem: {
		"id": "id", "qty": "qty", "unit_price": "unit_price",
		"created_at": "created_at", "order_id": "order_id", "product_id": "product_id",
	},
	KindPayment: {
		"id": "id", "method": "method", "amount": "amount", "status": "status",
		"created_at": "created_at", "order_id": "order_id",
	},
}

// ColumnOf resolves an external field name to a column for the kind.
func ColumnOf(k Kind, field string) (string, bool) {
	col, ok := columns[k][field]
	return col, ok
}

// RelationOf resolves one path segment relative to a kind.
func RelationOf(k Kind, segment string) (Relation, bool) {
	rel, ok := relations[k][segment]
	return rel, ok
}
