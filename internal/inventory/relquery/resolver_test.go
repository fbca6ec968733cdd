package relquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveShortcuts(t *testing.T) {
	assert.Equal(t, "products.order_items.order.customer", Resolve(KindBrand, "customer"))
	assert.Equal(t, "orders.items.product", Resolve(KindCustomer, "product"))
	assert.Equal(t, "order.items.product.brand", Resolve(KindPayment, "brand"))
	assert.Equal(t, "stocks.warehouse", Resolve(KindProduct, "warehouse"))
}

func TestResolveFallsBackToRawName(t *testing.T) {
	// No shortcut defined: the raw name comes back and the planner
	// decides whether it is a direct relation.
	assert.Equal(t, "items", Resolve(KindOrder, "items"))
	assert.Equal(t, "bogus", Resolve(KindStock, "bogus"))
}

func TestEveryShortcutPathIsWalkable(t *testing.T) {
	for root, targets := range shortcuts {
		for target, raw := range targets {
			path, err := ParsePath(root, raw)
			require.NoError(t, err, "shortcut %s -> %s (%s)", root, target, raw)
			assert.Equal(t, Kind(target), path.Terminal(),
				"shortcut %s -> %s should end at %s", root, raw, target)
		}
	}
}
