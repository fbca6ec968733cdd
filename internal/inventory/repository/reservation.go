package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// ConfirmOrder runs the stock reservation state machine for one order.
// The status check, candidate stock scan, allocation and writes all
// happen inside a single transaction with row locks, so concurrent
// confirmations cannot allocate the same units. On any shortfall the
// transaction rolls back and the order stays PENDING.
func (r *GormInventoryRepository) ConfirmOrder(ctx context.Context, id uuid.UUID) (*domain.Order, []domain.ReservationLine, error) {
	var reserved []domain.ReservationLine

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", id).Error; err != nil {
			return err
		}
		if !order.IsPending() {
			return fmt.Errorf("%w: only PENDING orders can be confirmed, order is %s",
				domain.ErrInvalidStateTransition, order.Status)
		}

		var items []domain.OrderItem
		if err := tx.Preload("Product").Where("order_id = ?", id).Find(&items).Error; err != nil {
			return err
		}

		now := time.Now()
		for i := range items {
			item := &items[i]

			// Candidate rows with unreserved units, highest qty first,
			// locked for the remainder of the transaction.
			var stocks []domain.Stock
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("product_id = ? AND qty > reserved", item.ProductID).
				Order("qty DESC").
				Find(&stocks).Error; err != nil {
				return err
			}

			lines, missing := domain.PlanReservation(stocks, item.Qty)
			if missing > 0 {
				name := item.ProductID.String()
				if item.Product != nil {
					name = item.Product.Name
				}
				return &domain.InsufficientStockError{ProductName: name, Missing: missing}
			}

			for _, line := range lines {
				res := tx.Model(&domain.Stock{}).
					Where("id = ?", line.StockID).
					Updates(map[string]any{
						"reserved":   gorm.Expr("reserved + ?", line.Qty),
						"updated_at": now,
					})
				if res.Error != nil {
					return res.Error
				}
				reserved = append(reserved, line)
			}
		}

		return tx.Model(&domain.Order{}).
			Where("id = ?", id).
			Update("status", domain.OrderStatusConfirmed).Error
	})
	if err != nil {
		return nil, nil, err
	}

	order, err := r.FindOrderByID(id)
	if err != nil {
		return nil, nil, err
	}
	return order, reserved, nil
}

// ConfirmPayment transitions a payment PENDING -> CONFIRMED. Any other
// starting state is rejected without mutation.
func (r *GormInventoryRepository) ConfirmPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment domain.Payment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "id = ?", id).Error; err != nil {
			return err
		}
		if payment.Status != domain.PaymentStatusPending {
			return fmt.Errorf("%w: only PENDING payments can be confirmed, payment is %s",
				domain.ErrInvalidStateTransition, payment.Status)
		}
		return tx.Model(&domain.Payment{}).
			Where("id = ?", id).
			Update("status", domain.PaymentStatusConfirmed).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindPaymentByID(id)
}
