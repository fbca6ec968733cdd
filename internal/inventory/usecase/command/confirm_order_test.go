package command

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/kafka"
)

// fakeOrderRepo implements domain.OrderRepository for handler tests
type fakeOrderRepo struct {
	orders     map[uuid.UUID]*domain.Order
	confirmErr error
	reserved   []domain.ReservationLine
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*domain.Order{}}
}

func (f *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindOrderByID(id uuid.UUID) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	return order, nil
}

func (f *fakeOrderRepo) FindAllOrders(limit, offset int) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateOrder(order *domain.Order) error { return nil }
func (f *fakeOrderRepo) DeleteOrder(id uuid.UUID) error        { return nil }

func (f *fakeOrderRepo) ConfirmOrder(ctx context.Context, id uuid.UUID) (*domain.Order, []domain.ReservationLine, error) {
	if f.confirmErr != nil {
		return nil, nil, f.confirmErr
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, nil, errors.New("order not found")
	}
	order.Status = domain.OrderStatusConfirmed
	return order, f.reserved, nil
}

// fakePublisher records published events
type fakePublisher struct {
	orderEvents   []kafka.OrderConfirmedEvent
	paymentEvents []kafka.PaymentConfirmedEvent
	err           error
}

func (f *fakePublisher) PublishOrderConfirmed(ctx context.Context, event kafka.OrderConfirmedEvent) error {
	f.orderEvents = append(f.orderEvents, event)
	return f.err
}

func (f *fakePublisher) PublishPaymentConfirmed(ctx context.Context, event kafka.PaymentConfirmedEvent) error {
	f.paymentEvents = append(f.paymentEvents, event)
	return f.err
}

func TestConfirmOrderSuccess(t *testing.T) {
	repo := newFakeOrderRepo()
	order := &domain.Order{
		CustomerID: uuid.New(),
		Status:     domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{Qty: 2, UnitPrice: 10},
		},
	}
	require.NoError(t, repo.CreateOrder(order))
	repo.reserved = []domain.ReservationLine{
		{StockID: uuid.New(), WarehouseID: uuid.New(), Qty: 2},
	}

	publisher := &fakePublisher{}
	handler := NewConfirmOrderHandler(repo, publisher)

	confirmed, err := handler.Handle(context.Background(), ConfirmOrderCommand{OrderID: order.ID})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusConfirmed, confirmed.Status)
	require.Len(t, publisher.orderEvents, 1)
	event := publisher.orderEvents[0]
	assert.Equal(t, order.ID.String(), event.OrderID)
	assert.Equal(t, 2, event.TotalItems)
	assert.InDelta(t, 20.0, event.TotalAmount, 0.001)
	require.Len(t, event.Reservations, 1)
	assert.Equal(t, 2, event.Reservations[0].Qty)
}

func TestConfirmOrderRequiresID(t *testing.T) {
	handler := NewConfirmOrderHandler(newFakeOrderRepo(), nil)

	_, err := handler.Handle(context.Background(), ConfirmOrderCommand{})
	assert.Error(t, err)
}

func TestConfirmOrderInsufficientStock(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.confirmErr = &domain.InsufficientStockError{ProductName: "Laptop", Missing: 3}

	publisher := &fakePublisher{}
	handler := NewConfirmOrderHandler(repo, publisher)

	_, err := handler.Handle(context.Background(), ConfirmOrderCommand{OrderID: uuid.New()})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Missing)
	assert.Empty(t, publisher.orderEvents)
}

func TestConfirmOrderInvalidState(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.confirmErr = domain.ErrInvalidStateTransition

	handler := NewConfirmOrderHandler(repo, nil)

	_, err := handler.Handle(context.Background(), ConfirmOrderCommand{OrderID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestConfirmOrderPublishFailureDoesNotFail(t *testing.T) {
	repo := newFakeOrderRepo()
	order := &domain.Order{CustomerID: uuid.New(), Status: domain.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(order))

	publisher := &fakePublisher{err: errors.New("broker down")}
	handler := NewConfirmOrderHandler(repo, publisher)

	confirmed, err := handler.Handle(context.Background(), ConfirmOrderCommand{OrderID: order.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, confirmed.Status)
}

func TestConfirmOrderNilPublisher(t *testing.T) {
	repo := newFakeOrderRepo()
	order := &domain.Order{CustomerID: uuid.New(), Status: domain.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(order))

	handler := NewConfirmOrderHandler(repo, nil)

	_, err := handler.Handle(context.Background(), ConfirmOrderCommand{OrderID: order.ID})
	assert.NoError(t, err)
}
