package relquery

// shortcuts is the canonical (source kind, target entity name) -> path
// table. Where a target is reachable two ways the table picks one path;
// there is no graph search at request time. Targets missing from the
// table fall back to the raw name, which is then treated as a direct
// relation attempt and may fail in the planner.
var shortcuts = map[Kind]map[string]string{
	KindBrand: {
		"product":   "products",
		"stock":     "products.stocks",
		"warehouse": "products.stocks.warehouse",
		"orderitem": "products.order_items",
		"order":     "products.order_items.order",
		"customer":  "products.order_items.order.customer",
		"payment":   "products.order_items.order.payment",
	},
	KindCategory: {
		"product":   "products",
		"stock":     "products.stocks",
		"warehouse": "products.stocks.warehouse",
		"orderitem": "products.order_items",
		"order":     "products.order_items.order",
		"customer":  "products.order_items.order.customer",
		"payment":   "products.order_items.order.payment",
	},
	KindProduct: {
		"brand":     "brand",
		"category":  "category",
		"stock":     "stocks",
		"warehouse": "stocks.warehouse",
		"orderitem": "order_items",
		"order":     "order_items.order",
		"customer":  "order_items.order.customer",
		"payment":   "order_items.order.payment",
	},
	KindWarehouse: {
		"stock":    "stocks",
		"product":  "stocks.product",
		"brand":    "stocks.product.brand",
		"category": "stocks.product.category",
	},
	KindStock: {
		"product":   "product",
		"warehouse": "warehouse",
		"brand":     "product.brand",
		"category":  "product.category",
	},
	KindCustomer: {
		"order":     "orders",
		"orderitem": "orders.items",
		"product":   "orders.items.product",
		"brand":     "orders.items.product.brand",
		"category":  "orders.items.product.category",
		"payment":   "orders.payment",
	},
	KindOrder: {
		"customer":  "customer",
		"orderitem": "items",
		"payment":   "payment",
		"product":   "items.product",
		"brand":     "items.product.brand",
		"category":  "items.product.category",
	},
	KindOrderItem: {
		"order":     "order",
		"product":   "product",
		"customer":  "order.customer",
		"payment":   "order.payment",
		"brand":     "product.brand",
		"category":  "product.category",
		"stock":     "product.stocks",
		"warehouse": "product.stocks.warehouse",
	},
	KindPayment: {
		"order":     "order",
		"customer":  "order.customer",
		"orderitem": "order.items",
		"product":   "order.items.product",
		"brand":     "order.items.product.brand",
		"category":  "order.items.product.category",
	},
}

// Resolve returns the dotted traversal path from root to the named
// target entity, or the name itself when no mapping exists.
func Resolve(root Kind, target string) string {
	if path, ok := shortcuts[root][target]; ok {
		return path
	}
	return target
}
