package repository

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormInventoryRepositoryWithTracing wraps GormInventoryRepository with
// tracing for the mutating workflows.
type GormInventoryRepositoryWithTracing struct {
	*GormInventoryRepository
}

// NewGormInventoryRepositoryWithTracing creates a new repository with tracing
func NewGormInventoryRepositoryWithTracing(db *gorm.DB) *GormInventoryRepositoryWithTracing {
	return &GormInventoryRepositoryWithTracing{
		GormInventoryRepository: NewGormInventoryRepository(db),
	}
}

// ConfirmOrder with tracing
func (r *GormInventoryRepositoryWithTracing) ConfirmOrder(ctx context.Context, id uuid.UUID) (*domain.Order, []domain.ReservationLine, error) {
	ctx, span := tracer.Start(ctx, "repository.ConfirmOrder",
		trace.WithAttributes(
			attribute.String("order.id", id.String()),
		),
	)
	defer span.End()

	order, reserved, err := r.GormInventoryRepository.ConfirmOrder(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	units := 0
	for _, line := range reserved {
		units += line.Qty
	}
	span.SetAttributes(
		attribute.String("order.status", order.Status),
		attribute.Int("reservation.lines", len(reserved)),
		attribute.Int("reservation.units", units),
	)
	return order, reserved, nil
}

// ConfirmPayment with tracing
func (r *GormInventoryRepositoryWithTracing) ConfirmPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "repository.ConfirmPayment",
		trace.WithAttributes(
			attribute.String("payment.id", id.String()),
		),
	)
	defer span.End()

	payment, err := r.GormInventoryRepository.ConfirmPayment(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("payment.status", payment.Status))
	return payment, nil
}
