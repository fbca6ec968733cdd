package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to API clients. Handlers map these to 4xx
// responses with errors.Is / errors.As.
var (
	// ErrInvalidStateTransition is returned when confirming an order or
	// payment that is not PENDING.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrEntityReferenced is returned when deleting an entity that is
	// still referenced through a restrict-delete relationship.
	ErrEntityReferenced = errors.New("entity is still referenced")
)

// InsufficientStockError reports the product and shortfall quantity of
// a failed order confirmation. No stock mutation persists when it is
// returned.
type InsufficientStockError struct {
	ProductName string
	Missing     int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: missing %d units", e.ProductName, e.Missing)
}
