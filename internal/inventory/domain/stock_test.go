package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockWith(qty, reserved int) Stock {
	return Stock{
		ID:          uuid.New(),
		WarehouseID: uuid.New(),
		Qty:         qty,
		Reserved:    reserved,
	}
}

func TestAvailableQty(t *testing.T) {
	s := stockWith(10, 4)
	assert.Equal(t, 6, s.AvailableQty())

	empty := stockWith(5, 5)
	assert.Equal(t, 0, empty.AvailableQty())
}

func TestPlanReservationSingleRow(t *testing.T) {
	stocks := []Stock{stockWith(10, 0)}

	lines, missing := PlanReservation(stocks, 4)

	require.Len(t, lines, 1)
	assert.Equal(t, 0, missing)
	assert.Equal(t, stocks[0].ID, lines[0].StockID)
	assert.Equal(t, stocks[0].WarehouseID, lines[0].WarehouseID)
	assert.Equal(t, 4, lines[0].Qty)
}

func TestPlanReservationSpansRows(t *testing.T) {
	stocks := []Stock{stockWith(5, 0), stockWith(3, 0), stockWith(2, 0)}

	lines, missing := PlanReservation(stocks, 7)

	require.Len(t, lines, 2)
	assert.Equal(t, 0, missing)
	assert.Equal(t, 5, lines[0].Qty)
	assert.Equal(t, 2, lines[1].Qty)
}

func TestPlanReservationAccountsForReserved(t *testing.T) {
	stocks := []Stock{stockWith(10, 8), stockWith(4, 1)}

	lines, missing := PlanReservation(stocks, 5)

	require.Len(t, lines, 2)
	assert.Equal(t, 0, missing)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, 3, lines[1].Qty)
}

func TestPlanReservationShortfall(t *testing.T) {
	stocks := []Stock{stockWith(3, 0), stockWith(2, 1)}

	lines, missing := PlanReservation(stocks, 10)

	require.Len(t, lines, 2)
	assert.Equal(t, 6, missing)
}

func TestPlanReservationSkipsFullyReservedRows(t *testing.T) {
	stocks := []Stock{stockWith(5, 5), stockWith(4, 0)}

	lines, missing := PlanReservation(stocks, 3)

	require.Len(t, lines, 1)
	assert.Equal(t, 0, missing)
	assert.Equal(t, stocks[1].ID, lines[0].StockID)
}

func TestPlanReservationZeroRequested(t *testing.T) {
	lines, missing := PlanReservation([]Stock{stockWith(5, 0)}, 0)

	assert.Empty(t, lines)
	assert.Equal(t, 0, missing)
}
