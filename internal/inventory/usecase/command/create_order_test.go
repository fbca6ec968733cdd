package command

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-api/internal/inventory/domain"
)

// fakeCustomerRepo implements domain.CustomerRepository
type fakeCustomerRepo struct {
	customers map[uuid.UUID]*domain.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uuid.UUID]*domain.Customer{}}
}

func (f *fakeCustomerRepo) CreateCustomer(customer *domain.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) FindCustomerByID(id uuid.UUID) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, errors.New("customer not found")
	}
	return customer, nil
}

func (f *fakeCustomerRepo) FindCustomerByEmail(email string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, errors.New("customer not found")
}

func (f *fakeCustomerRepo) FindAllCustomers(limit, offset int) ([]domain.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) UpdateCustomer(customer *domain.Customer) error { return nil }
func (f *fakeCustomerRepo) DeleteCustomer(id uuid.UUID) error              { return nil }

func (f *fakeCustomerRepo) FindOrdersByCustomer(customerID uuid.UUID) ([]domain.Order, error) {
	return nil, nil
}

// fakeProductRepo implements domain.ProductRepository
type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*domain.Product{}}
}

func (f *fakeProductRepo) CreateProduct(product *domain.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindProductByID(id uuid.UUID) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return product, nil
}

func (f *fakeProductRepo) FindProductBySKU(sku string) (*domain.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, errors.New("product not found")
}

func (f *fakeProductRepo) FindAllProducts(limit, offset int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) FindLowStockProducts(threshold int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) UpdateProduct(product *domain.Product) error { return nil }
func (f *fakeProductRepo) DeleteProduct(id uuid.UUID) error            { return nil }
func (f *fakeProductRepo) CountProducts() (int64, error)               { return 0, nil }

func seedCustomer(t *testing.T, repo *fakeCustomerRepo) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{FullName: "Jane Roe", Email: "jane@example.com"}
	require.NoError(t, repo.CreateCustomer(customer))
	return customer
}

func seedProduct(t *testing.T, repo *fakeProductRepo, price float64) *domain.Product {
	t.Helper()
	product := &domain.Product{
		Name:       "Laptop",
		SKU:        uuid.NewString(),
		Price:      price,
		IsActive:   true,
		BrandID:    uuid.New(),
		CategoryID: uuid.New(),
	}
	require.NoError(t, repo.CreateProduct(product))
	return product
}

func TestCreateOrderCapturesProductPrice(t *testing.T) {
	orders := newFakeOrderRepo()
	customers := newFakeCustomerRepo()
	products := newFakeProductRepo()
	customer := seedCustomer(t, customers)
	product := seedProduct(t, products, 42.50)

	handler := NewCreateOrderHandler(orders, customers, products)

	order, err := handler.Handle(CreateOrderCommand{
		CustomerID: customer.ID,
		Items: []CreateOrderItemInput{
			{ProductID: product.ID, Qty: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.InDelta(t, 42.50, order.Items[0].UnitPrice, 0.001)
	assert.Equal(t, 2, order.Items[0].Qty)
}

func TestCreateOrderExplicitUnitPrice(t *testing.T) {
	orders := newFakeOrderRepo()
	customers := newFakeCustomerRepo()
	products := newFakeProductRepo()
	customer := seedCustomer(t, customers)
	product := seedProduct(t, products, 42.50)

	handler := NewCreateOrderHandler(orders, customers, products)

	override := 39.99
	order, err := handler.Handle(CreateOrderCommand{
		CustomerID: customer.ID,
		Items: []CreateOrderItemInput{
			{ProductID: product.ID, Qty: 1, UnitPrice: &override},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 39.99, order.Items[0].UnitPrice, 0.001)
}

func TestCreateOrderValidation(t *testing.T) {
	orders := newFakeOrderRepo()
	customers := newFakeCustomerRepo()
	products := newFakeProductRepo()
	customer := seedCustomer(t, customers)
	product := seedProduct(t, products, 10)

	handler := NewCreateOrderHandler(orders, customers, products)

	// no customer
	_, err := handler.Handle(CreateOrderCommand{
		Items: []CreateOrderItemInput{{ProductID: product.ID, Qty: 1}},
	})
	assert.Error(t, err)

	// no items
	_, err = handler.Handle(CreateOrderCommand{CustomerID: customer.ID})
	assert.Error(t, err)

	// qty below one
	_, err = handler.Handle(CreateOrderCommand{
		CustomerID: customer.ID,
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Qty: 0}},
	})
	assert.Error(t, err)

	// unknown customer
	_, err = handler.Handle(CreateOrderCommand{
		CustomerID: uuid.New(),
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Qty: 1}},
	})
	assert.Error(t, err)

	// unknown product
	_, err = handler.Handle(CreateOrderCommand{
		CustomerID: customer.ID,
		Items:      []CreateOrderItemInput{{ProductID: uuid.New(), Qty: 1}},
	})
	assert.Error(t, err)

	// duplicate product
	_, err = handler.Handle(CreateOrderCommand{
		CustomerID: customer.ID,
		Items: []CreateOrderItemInput{
			{ProductID: product.ID, Qty: 1},
			{ProductID: product.ID, Qty: 2},
		},
	})
	assert.Error(t, err)

	// zero override price
	zero := 0.0
	_, err = handler.Handle(CreateOrderCommand{
		CustomerID: customer.ID,
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Qty: 1, UnitPrice: &zero}},
	})
	assert.Error(t, err)
}
