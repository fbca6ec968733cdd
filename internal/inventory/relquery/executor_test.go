package relquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrdering(t *testing.T) {
	terms, err := ParseOrdering(KindProduct, "price,-created_at")
	require.NoError(t, err)

	require.Len(t, terms, 2)
	assert.Equal(t, OrderTerm{Column: "price"}, terms[0])
	assert.Equal(t, OrderTerm{Column: "created_at", Desc: true}, terms[1])
}

func TestParseOrderingEmpty(t *testing.T) {
	terms, err := ParseOrdering(KindProduct, "")
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestParseOrderingUnknownField(t *testing.T) {
	_, err := ParseOrdering(KindProduct, "name,-color")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestJoinSetSingleHop(t *testing.T) {
	js := newJoinSet("products")
	path, err := ParsePath(KindProduct, "brand")
	require.NoError(t, err)

	alias := js.aliasFor(path)

	assert.Equal(t, "f_brand", alias)
	require.Len(t, js.clauses, 1)
	assert.Equal(t, "JOIN brands AS f_brand ON f_brand.id = products.brand_id", js.clauses[0])
}

func TestJoinSetMultiHop(t *testing.T) {
	js := newJoinSet("products")
	path, err := ParsePath(KindProduct, "stocks.warehouse")
	require.NoError(t, err)

	alias := js.aliasFor(path)

	assert.Equal(t, "f_stocks_warehouse", alias)
	require.Len(t, js.clauses, 2)
	assert.Equal(t, "JOIN stocks AS f_stocks ON f_stocks.product_id = products.id", js.clauses[0])
	assert.Equal(t, "JOIN warehouses AS f_stocks_warehouse ON f_stocks_warehouse.id = f_stocks.warehouse_id", js.clauses[1])
}

func TestJoinSetReusesSharedPrefix(t *testing.T) {
	js := newJoinSet("products")
	stocks, err := ParsePath(KindProduct, "stocks")
	require.NoError(t, err)
	warehouse, err := ParsePath(KindProduct, "stocks.warehouse")
	require.NoError(t, err)

	a1 := js.aliasFor(stocks)
	a2 := js.aliasFor(warehouse)

	assert.Equal(t, "f_stocks", a1)
	assert.Equal(t, "f_stocks_warehouse", a2)
	// stocks joined only once
	assert.Len(t, js.clauses, 2)
}

func TestPredicateExprLookups(t *testing.T) {
	p := Predicate{Column: "price", Value: 100}

	cases := []struct {
		lookup string
		expr   string
		arg    any
	}{
		{"", "products.price = ?", 100},
		{"exact", "products.price = ?", 100},
		{"ne", "products.price <> ?", 100},
		{"gt", "products.price > ?", 100},
		{"gte", "products.price >= ?", 100},
		{"lt", "products.price < ?", 100},
		{"lte", "products.price <= ?", 100},
	}
	for _, c := range cases {
		p.Lookup = c.lookup
		expr, arg := predicateExpr(p, "products")
		assert.Equal(t, c.expr, expr, "lookup %q", c.lookup)
		assert.Equal(t, c.arg, arg, "lookup %q", c.lookup)
	}
}

func TestPredicateExprContains(t *testing.T) {
	p := Predicate{Column: "name", Lookup: "contains", Value: "lap"}
	expr, arg := predicateExpr(p, "products")
	assert.Equal(t, "products.name LIKE ?", expr)
	assert.Equal(t, "%lap%", arg)

	p.Lookup = "icontains"
	expr, arg = predicateExpr(p, "f_brand")
	assert.Equal(t, "f_brand.name ILIKE ?", expr)
	assert.Equal(t, "%lap%", arg)
}

func TestModelAndSliceCoverAllKinds(t *testing.T) {
	for kind := range tables {
		assert.NotNil(t, modelOf(kind), "modelOf(%s)", kind)
		assert.NotNil(t, sliceOf(kind), "sliceOf(%s)", kind)
	}
}
