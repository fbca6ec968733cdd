package command

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// fakePaymentRepo implements domain.PaymentRepository
type fakePaymentRepo struct {
	payments map[uuid.UUID]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*domain.Payment{}}
}

func (f *fakePaymentRepo) CreatePayment(payment *domain.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindPaymentByID(id uuid.UUID) (*domain.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, errors.New("payment not found")
	}
	return payment, nil
}

func (f *fakePaymentRepo) FindAllPayments(limit, offset int) ([]domain.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) UpdatePayment(payment *domain.Payment) error { return nil }
func (f *fakePaymentRepo) DeletePayment(id uuid.UUID) error            { return nil }

func (f *fakePaymentRepo) ConfirmPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, errors.New("payment not found")
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil, domain.ErrInvalidStateTransition
	}
	payment.Status = domain.PaymentStatusConfirmed
	return payment, nil
}

func pendingOrderWithTotal(t *testing.T, repo *fakeOrderRepo, total float64) *domain.Order {
	t.Helper()
	order := &domain.Order{
		CustomerID: uuid.New(),
		Status:     domain.OrderStatusPending,
		Items:      []domain.OrderItem{{Qty: 1, UnitPrice: total}},
	}
	require.NoError(t, repo.CreateOrder(order))
	return order
}

func TestCreatePaymentSuccess(t *testing.T) {
	orders := newFakeOrderRepo()
	payments := newFakePaymentRepo()
	order := pendingOrderWithTotal(t, orders, 150)

	handler := NewCreatePaymentHandler(payments, orders)

	payment, err := handler.Handle(CreatePaymentCommand{
		OrderID: order.ID,
		Method:  domain.PaymentMethodCard,
		Amount:  150,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, order.ID, payment.OrderID)
	assert.InDelta(t, 150.0, payment.Amount, 0.001)
}

func TestCreatePaymentRejectsUnknownMethod(t *testing.T) {
	handler := NewCreatePaymentHandler(newFakePaymentRepo(), newFakeOrderRepo())

	_, err := handler.Handle(CreatePaymentCommand{
		OrderID: uuid.New(),
		Method:  "CASH",
		Amount:  10,
	})
	assert.Error(t, err)
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	handler := NewCreatePaymentHandler(newFakePaymentRepo(), newFakeOrderRepo())

	_, err := handler.Handle(CreatePaymentCommand{
		OrderID: uuid.New(),
		Method:  domain.PaymentMethodCOD,
		Amount:  0,
	})
	assert.Error(t, err)
}

func TestCreatePaymentRejectsAmountMismatch(t *testing.T) {
	orders := newFakeOrderRepo()
	order := pendingOrderWithTotal(t, orders, 100)

	handler := NewCreatePaymentHandler(newFakePaymentRepo(), orders)

	_, err := handler.Handle(CreatePaymentCommand{
		OrderID: order.ID,
		Method:  domain.PaymentMethodTransfer,
		Amount:  99,
	})
	assert.Error(t, err)
}

func TestCreatePaymentToleratesRounding(t *testing.T) {
	orders := newFakeOrderRepo()
	order := pendingOrderWithTotal(t, orders, 100)

	handler := NewCreatePaymentHandler(newFakePaymentRepo(), orders)

	_, err := handler.Handle(CreatePaymentCommand{
		OrderID: order.ID,
		Method:  domain.PaymentMethodTransfer,
		Amount:  100.005,
	})
	assert.NoError(t, err)
}

func TestCreatePaymentUnknownOrder(t *testing.T) {
	handler := NewCreatePaymentHandler(newFakePaymentRepo(), newFakeOrderRepo())

	_, err := handler.Handle(CreatePaymentCommand{
		OrderID: uuid.New(),
		Method:  domain.PaymentMethodCard,
		Amount:  10,
	})
	assert.Error(t, err)
}

func TestConfirmPaymentSuccess(t *testing.T) {
	payments := newFakePaymentRepo()
	payment := &domain.Payment{
		OrderID: uuid.New(),
		Method:  domain.PaymentMethodCard,
		Amount:  50,
		Status:  domain.PaymentStatusPending,
	}
	require.NoError(t, payments.CreatePayment(payment))

	publisher := &fakePublisher{}
	handler := NewConfirmPaymentHandler(payments, publisher)

	confirmed, err := handler.Handle(context.Background(), ConfirmPaymentCommand{PaymentID: payment.ID})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusConfirmed, confirmed.Status)
	require.Len(t, publisher.paymentEvents, 1)
	assert.Equal(t, payment.ID.String(), publisher.paymentEvents[0].PaymentID)
	assert.Equal(t, domain.PaymentMethodCard, publisher.paymentEvents[0].Method)
}

func TestConfirmPaymentInvalidState(t *testing.T) {
	payments := newFakePaymentRepo()
	payment := &domain.Payment{
		OrderID: uuid.New(),
		Method:  domain.PaymentMethodCard,
		Amount:  50,
		Status:  domain.PaymentStatusConfirmed,
	}
	require.NoError(t, payments.CreatePayment(payment))

	handler := NewConfirmPaymentHandler(payments, nil)

	_, err := handler.Handle(context.Background(), ConfirmPaymentCommand{PaymentID: payment.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}
