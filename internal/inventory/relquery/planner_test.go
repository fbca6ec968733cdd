package relquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathToOneChain(t *testing.T) {
	p, err := ParsePath(KindStock, "product.brand")
	require.NoError(t, err)

	assert.False(t, p.ToMany)
	assert.Equal(t, KindBrand, p.Terminal())
	assert.Equal(t, "Product.Brand", p.GormPath())
}

func TestParsePathToManyHop(t *testing.T) {
	p, err := ParsePath(KindProduct, "stocks.warehouse")
	require.NoError(t, err)

	assert.True(t, p.ToMany)
	assert.Equal(t, KindWarehouse, p.Terminal())
	assert.Equal(t, "Stocks.Warehouse", p.GormPath())
}

func TestParsePathDoubleUnderscoreSeparator(t *testing.T) {
	p, err := ParsePath(KindOrder, "items__product")
	require.NoError(t, err)

	assert.Equal(t, KindProduct, p.Terminal())
	assert.Equal(t, "Items.Product", p.GormPath())
}

func TestParsePathUnknownSegment(t *testing.T) {
	_, err := ParsePath(KindProduct, "supplier")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = ParsePath(KindProduct, "brand.products.nope")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestParsePathEmptySegment(t *testing.T) {
	_, err := ParsePath(KindProduct, "brand..category")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestParsePathEmptyRootOnly(t *testing.T) {
	p, err := ParsePath(KindOrder, "customer")
	require.NoError(t, err)
	assert.Equal(t, KindCustomer, p.Terminal())
	assert.Len(t, p.Hops, 1)
}

func TestPlanJoinsPartitions(t *testing.T) {
	plan, err := PlanJoins(KindProduct, []string{"brand", "category", "stocks.warehouse", "order_items"})
	require.NoError(t, err)

	require.Len(t, plan.Eager, 2)
	require.Len(t, plan.Batched, 2)
	assert.Equal(t, "Brand", plan.Eager[0].GormPath())
	assert.Equal(t, "Category", plan.Eager[1].GormPath())
	assert.Equal(t, "Stocks.Warehouse", plan.Batched[0].GormPath())
	assert.Equal(t, "OrderItems", plan.Batched[1].GormPath())
}

func TestPlanJoinsToManyPrefixDowngradesWholePath(t *testing.T) {
	// customer is to-one from order, but the path goes through items
	plan, err := PlanJoins(KindCustomer, []string{"orders.items.product"})
	require.NoError(t, err)

	assert.Empty(t, plan.Eager)
	require.Len(t, plan.Batched, 1)
}

func TestPlanJoinsSkipsEmptyEntries(t *testing.T) {
	plan, err := PlanJoins(KindProduct, []string{"", "  ", "brand"})
	require.NoError(t, err)

	require.Len(t, plan.Eager, 1)
	assert.Empty(t, plan.Batched)
}

func TestPlanJoinsInvalidPathFailsWholePlan(t *testing.T) {
	_, err := PlanJoins(KindProduct, []string{"brand", "bogus"})
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList("a, b"))
	assert.Equal(t, []string{"a"}, SplitList("a,,"))
}
