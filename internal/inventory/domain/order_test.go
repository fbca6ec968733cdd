package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotals(t *testing.T) {
	order := Order{
		Status: OrderStatusPending,
		Items: []OrderItem{
			{Qty: 2, UnitPrice: 10.50},
			{Qty: 1, UnitPrice: 4.25},
		},
	}

	assert.True(t, order.IsPending())
	assert.InDelta(t, 25.25, order.TotalAmount(), 0.001)
	assert.Equal(t, 3, order.TotalItems())
}

func TestOrderTotalsEmpty(t *testing.T) {
	order := Order{Status: OrderStatusConfirmed}

	assert.False(t, order.IsPending())
	assert.Zero(t, order.TotalAmount())
	assert.Zero(t, order.TotalItems())
}

func TestOrderItemTotalPrice(t *testing.T) {
	item := OrderItem{Qty: 3, UnitPrice: 2.5}
	assert.InDelta(t, 7.5, item.TotalPrice(), 0.001)
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentMethodCard))
	assert.True(t, IsValidPaymentMethod(PaymentMethodTransfer))
	assert.True(t, IsValidPaymentMethod(PaymentMethodCOD))
	assert.False(t, IsValidPaymentMethod("CASH"))
	assert.False(t, IsValidPaymentMethod(""))
}
