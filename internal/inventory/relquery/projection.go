package relquery

import (
	"net/url"
	"strings"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// FieldSet maps an entity kind to the caller's field whitelist for it.
type FieldSet map[Kind][]string

// ParseFieldSets collects every fields[<entity>] parameter. Names that
// are not a known entity are dropped; projection is best-effort.
func ParseFieldSets(params url.Values) FieldSet {
	fs := FieldSet{}
	for key, values := range params {
		name, ok := bracketParam(key, fieldsPrefix)
		if !ok {
			continue
		}
		kind, ok := ParseKind(strings.ToLower(name))
		if !ok {
			continue
		}
		for _, v := range values {
			fs[kind] = append(fs[kind], SplitList(v)...)
		}
	}
	return fs
}

// Project shapes each fetched row into an output record. The root is
// either restricted to its whitelist or fully serialized; every other
// whitelisted kind that matches a loaded relation on the root becomes a
// nested object (to-one) or list (to-many). Unknown whitelist fields
// and unloaded relations are silently skipped.
func Project(rows []any, fs FieldSet) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectRow(row, fs))
	}
	return out
}

func projectRow(row any, fs FieldSet) map[string]any {
	kind := kindOfEntity(row)

	var record map[string]any
	if fields, ok := fs[kind]; ok {
		record = pickFields(row, fields)
	} else {
		record = defaultRecord(row)
	}

	for target, fields := range fs {
		if target == kind {
			continue
		}
		one, many, loaded := relatedOf(row, target)
		if !loaded {
			continue
		}
		if many != nil {
			nested := make([]map[string]any, 0, len(many))
			for _, item := range many {
				nested = append(nested, pickFields(item, fields))
			}
			record[string(target)] = nested
		} else {
			record[string(target)] = pickFields(one, fields)
		}
	}
	return record
}

func pickFields(row any, fields []string) map[string]any {
	record := map[string]any{}
	for _, f := range fields {
		if v, ok := fieldValue(row, f); ok {
			record[f] = v
		}
	}
	return record
}

func kindOfEntity(row any) Kind {
	switch row.(type) {
	case *domain.Brand:
		return KindBrand
	case *domain.Category:
		return KindCategory
	case *domain.Product:
		return KindProduct
	case *domain.Warehouse:
		return KindWarehouse
	case *domain.Stock:
		return KindStock
	case *domain.Customer:
		return KindCustomer
	case *domain.Order:
		return KindOrder
	case *domain.OrderItem:
		return KindOrderItem
	case *domain.Payment:
		return KindPayment
	}
	return ""
}

// relatedOf returns the loaded relation of the given target kind on a
// row: a single object for to-one relations, a list for to-many. Only
// direct relations participate; loaded==false means the whitelist entry
// has nothing to attach to.
func relatedOf(row any, target Kind) (one any, many []any, loaded bool) {
	switch r := row.(type) {
	case *domain.Brand:
		if target == KindProduct && r.Products != nil {
			return nil, productRefs(r.Products), true
		}
	case *domain.Category:
		if target == KindProduct && r.Products != nil {
			return nil, productRefs(r.Products), true
		}
	case *domain.Product:
		switch target {
		case KindBrand:
			if r.Brand != nil {
				return r.Brand, nil, true
			}
		case KindCategory:
			if r.Category != nil {
				return r.Category, nil, true
			}
		case KindStock:
			if r.Stocks != nil {
				return nil, stockRefs(r.Stocks), true
			}
		case KindOrderItem:
			if r.OrderItems != nil {
				return nil, itemRefs(r.OrderItems), true
			}
		}
	case *domain.Warehouse:
		if target == KindStock && r.Stocks != nil {
			return nil, stockRefs(r.Stocks), true
		}
	case *domain.Stock:
		switch target {
		case KindProduct:
			if r.Product != nil {
				return r.Product, nil, true
			}
		case KindWarehouse:
			if r.Warehouse != nil {
				return r.Warehouse, nil, true
			}
		}
	case *domain.Customer:
		if target == KindOrder && r.Orders != nil {
			refs := make([]any, len(r.Orders))
			for i := range r.Orders {
				refs[i] = &r.Orders[i]
			}
			return nil, refs, true
		}
	case *domain.Order:
		switch target {
		case KindCustomer:
			if r.Customer != nil {
				return r.Customer, nil, true
			}
		case KindOrderItem:
			if r.Items != nil {
				return nil, itemRefs(r.Items), true
			}
		case KindPayment:
			if r.Payment != nil {
				return r.Payment, nil, true
			}
		}
	case *domain.OrderItem:
		switch target {
		case KindOrder:
			if r.Order != nil {
				return r.Order, nil, true
			}
		case KindProduct:
			if r.Product != nil {
				return r.Product, nil, true
			}
		}
	case *domain.Payment:
		if target == KindOrder && r.Order != nil {
			return r.Order, nil, true
		}
	}
	return nil, nil, false
}

func productRefs(products []domain.Product) []any {
	refs := make([]any, len(products))
	for i := range products {
		refs[i] = &products[i]
	}
	return refs
}

func stockRefs(stocks []domain.Stock) []any {
	refs := make([]any, len(stocks))
	for i := range stocks {
		refs[i] = &stocks[i]
	}
	return refs
}

func itemRefs(items []domain.OrderItem) []any {
	refs := make([]any, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	return refs
}

// fieldValue resolves one whitelisted field on an entity, including the
// derived properties (available_qty, total_amount, total_items,
// total_price). Unknown names report ok=false and are skipped upstream.
func fieldValue(row any, field string) (any, bool) {
	switch r := row.(type) {
	case *domain.Brand:
		switch field {
		case "id":
			return r.ID, true
		case "name":
			return r.Name, true
		case "is_active":
			return r.IsActive, true
		case "created_at":
			return r.CreatedAt, true
		}
	case *domain.Category:
		switch field {
		case "id":
			return r.ID, true
		case "name":
			return r.Name, true
		case "is_active":
			return r.IsActive, true
		case "created_at":
			return r.CreatedAt, true
		}
	case *domain.Product:
		switch field {
		case "id":
			return r.ID, true
		case "name":
			return r.Name, true
		case "sku":
			return r.SKU, true
		case "price":
			return r.Price, true
		case "is_active":
			return r.IsActive, true
		case "created_at":
			return r.CreatedAt, true
		case "brand_id":
			return r.BrandID, true
		case "category_id":
			return r.CategoryID, true
		}
	case *domain.Warehouse:
		switch field {
		case "id":
			return r.ID, true
		case "name":
			return r.Name, true
		case "city":
			return r.City, true
		case "created_at":
			return r.CreatedAt, true
		}
	case *domain.Stock:
		switch field {
		case "id":
			return r.ID, true
		case "qty":
			return r.Qty, true
		case "reserved":
			return r.Reserved, true
		case "available_qty":
			return r.AvailableQty(), true
		case "created_at":
			return r.CreatedAt, true
		case "updated_at":
			return r.UpdatedAt, true
		case "product_id":
			return r.ProductID, true
		case "warehouse_id":
			return r.WarehouseID, true
		}
	case *domain.Customer:
		switch field {
		case "id":
			return r.ID, true
		case "full_name":
			return r.FullName, true
		case "email":
			return r.Email, true
		case "created_at":
			return r.CreatedAt, true
		}
	case *domain.Order:
		switch field {
		case "id":
			return r.ID, true
		case "status":
			return r.Status, true
		case "created_at":
			return r.CreatedAt, true
		case "customer_id":
			return r.CustomerID, true
		case "total_amount":
			return r.TotalAmount(), true
		case "total_items":
			return r.TotalItems(), true
		}
	case *domain.OrderItem:
		switch field {
		case "id":
			return r.ID, true
		case "qty":
			return r.Qty, true
		case "unit_price":
			return r.UnitPrice, true
		case "total_price":
			return r.TotalPrice(), true
		case "created_at":
			return r.CreatedAt, true
		case "order_id":
			return r.OrderID, true
		case "product_id":
			return r.ProductID, true
		}
	case *domain.Payment:
		switch field {
		case "id":
			return r.ID, true
		case "method":
			return r.Method, true
		case "amount":
			return r.Amount, true
		case "status":
			return r.Status, true
		case "created_at":
			return r.CreatedAt, true
		case "order_id":
			return r.OrderID, true
		}
	}
	return nil, false
}

// defaultRecord is the full serialization used when no whitelist names
// the entity: every direct field plus derived properties, and the
// conventional *_name convenience fields when the relation is loaded.
func defaultRecord(row any) map[string]any {
	switch r := row.(type) {
	case *domain.Brand:
		return map[string]any{
			"id": r.ID, "name": r.Name, "is_active": r.IsActive, "created_at": r.CreatedAt,
		}
	case *domain.Category:
		return map[string]any{
			"id": r.ID, "name": r.Name, "is_active": r.IsActive, "created_at": r.CreatedAt,
		}
	case *domain.Product:
		record := map[string]any{
			"id": r.ID, "name": r.Name, "sku": r.SKU, "price": r.Price,
			"is_active": r.IsActive, "created_at": r.CreatedAt,
			"brand_id": r.BrandID, "category_id": r.CategoryID,
		}
		if r.Brand != nil {
			record["brand_name"] = r.Brand.Name
		}
		if r.Category != nil {
			record["category_name"] = r.Category.Name
		}
		if r.Stocks != nil {
			record["total_stock"] = r.TotalStock()
		}
		return record
	case *domain.Warehouse:
		return map[string]any{
			"id": r.ID, "name": r.Name, "city": r.City, "created_at": r.CreatedAt,
		}
	case *domain.Stock:
		record := map[string]any{
			"id": r.ID, "qty": r.Qty, "reserved": r.Reserved,
			"available_qty": r.AvailableQty(),
			"created_at":    r.CreatedAt, "updated_at": r.UpdatedAt,
			"product_id": r.ProductID, "warehouse_id": r.WarehouseID,
		}
		if r.Product != nil {
			record["product_name"] = r.Product.Name
			record["product_sku"] = r.Product.SKU
		}
		if r.Warehouse != nil {
			record["warehouse_name"] = r.Warehouse.Name
		}
		return record
	case *domain.Customer:
		return map[string]any{
			"id": r.ID, "full_name": r.FullName, "email": r.Email, "created_at": r.CreatedAt,
		}
	case *domain.Order:
		record := map[string]any{
			"id": r.ID, "status": r.Status, "created_at": r.CreatedAt,
			"customer_id": r.CustomerID,
		}
		if r.Customer != nil {
			record["customer_name"] = r.Customer.FullName
			record["customer_email"] = r.Customer.Email
		}
		if r.Items != nil {
			record["total_amount"] = r.TotalAmount()
			record["total_items"] = r.TotalItems()
		}
		return record
	case *domain.OrderItem:
		record := map[string]any{
			"id": r.ID, "qty": r.Qty, "unit_price": r.UnitPrice,
			"total_price": r.TotalPrice(),
			"created_at":  r.CreatedAt, "order_id": r.OrderID, "product_id": r.ProductID,
		}
		if r.Product != nil {
			record["product_name"] = r.Product.Name
			record["product_sku"] = r.Product.SKU
		}
		return record
	case *domain.Payment:
		record := map[string]any{
			"id": r.ID, "method": r.Method, "amount": r.Amount, "status": r.Status,
			"created_at": r.CreatedAt, "order_id": r.OrderID,
		}
		if r.Order != nil && r.Order.Customer != nil {
			record["order_customer_name"] = r.Order.Customer.FullName
		}
		return record
	}
	return map[string]any{}
}
