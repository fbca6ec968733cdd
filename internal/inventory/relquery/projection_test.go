package relquery

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

func TestParseFieldSets(t *testing.T) {
	params := url.Values{
		"fields[product]": {"name,sku"},
		"fields[brand]":   {"name"},
		"fields[bogus]":   {"whatever"},
		"filter[product]": {"is_active=true"},
	}

	fs := ParseFieldSets(params)

	require.Len(t, fs, 2)
	assert.Equal(t, []string{"name", "sku"}, fs[KindProduct])
	assert.Equal(t, []string{"name"}, fs[KindBrand])
}

func TestProjectRootWhitelist(t *testing.T) {
	product := &domain.Product{
		ID:    uuid.New(),
		Name:  "Laptop",
		SKU:   "LP-1",
		Price: 999,
		Brand: &domain.Brand{Name: "Acme"},
	}
	fs := FieldSet{
		KindProduct: {"name", "sku"},
		KindBrand:   {"name"},
	}

	records := Project([]any{product}, fs)

	require.Len(t, records, 1)
	record := records[0]
	require.Len(t, record, 3)
	assert.Equal(t, "Laptop", record["name"])
	assert.Equal(t, "LP-1", record["sku"])

	brand, ok := record["brand"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "Acme"}, brand)
}

func TestProjectUnknownFieldsSkipped(t *testing.T) {
	product := &domain.Product{Name: "Laptop"}
	fs := FieldSet{KindProduct: {"name", "color"}}

	records := Project([]any{product}, fs)

	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{"name": "Laptop"}, records[0])
}

func TestProjectToManyRelation(t *testing.T) {
	product := &domain.Product{
		Name: "Laptop",
		Stocks: []domain.Stock{
			{Qty: 10, Reserved: 2},
			{Qty: 5, Reserved: 0},
		},
	}
	fs := FieldSet{
		KindProduct: {"name"},
		KindStock:   {"qty", "available_qty"},
	}

	records := Project([]any{product}, fs)

	require.Len(t, records, 1)
	stocks, ok := records[0]["stock"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, stocks, 2)
	assert.Equal(t, 10, stocks[0]["qty"])
	assert.Equal(t, 8, stocks[0]["available_qty"])
	assert.Equal(t, 5, stocks[1]["available_qty"])
}

func TestProjectUnloadedRelationOmitted(t *testing.T) {
	product := &domain.Product{Name: "Laptop"} // Brand not loaded
	fs := FieldSet{
		KindProduct: {"name"},
		KindBrand:   {"name"},
	}

	records := Project([]any{product}, fs)

	require.Len(t, records, 1)
	_, present := records[0]["brand"]
	assert.False(t, present)
}

func TestProjectDefaultRecord(t *testing.T) {
	order := &domain.Order{
		ID:         uuid.New(),
		Status:     domain.OrderStatusPending,
		CustomerID: uuid.New(),
		Customer:   &domain.Customer{FullName: "Jane Roe", Email: "jane@example.com"},
		Items: []domain.OrderItem{
			{Qty: 2, UnitPrice: 5},
		},
	}

	records := Project([]any{order}, FieldSet{})

	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, domain.OrderStatusPending, record["status"])
	assert.Equal(t, "Jane Roe", record["customer_name"])
	assert.InDelta(t, 10.0, record["total_amount"].(float64), 0.001)
	assert.Equal(t, 2, record["total_items"])
}

func TestProjectDerivedOrderFields(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{{Qty: 3, UnitPrice: 2}},
	}
	fs := FieldSet{KindOrder: {"total_amount", "total_items"}}

	records := Project([]any{order}, fs)

	require.Len(t, records, 1)
	assert.InDelta(t, 6.0, records[0]["total_amount"].(float64), 0.001)
	assert.Equal(t, 3, records[0]["total_items"])
}
