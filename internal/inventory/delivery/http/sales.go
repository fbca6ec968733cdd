package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/internal/inventory/usecase/command"
	"github.com/tair/inventory-api/pkg/logger"
)

// CreateCustomer handles POST /api/customers
func (h *InventoryHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "full_name and email are required")
		return
	}
	if existing, _ := h.repo.FindCustomerByEmail(req.Email); existing != nil {
		respondError(w, http.StatusBadRequest, "email already in use")
		return
	}

	customer := &domain.Customer{FullName: req.FullName, Email: req.Email}
	if err := h.repo.CreateCustomer(customer); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create customer")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Customer created successfully",
		Data:    customer,
	})
}

// GetCustomer handles GET /api/customers/{id}
func (h *InventoryHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := h.repo.FindCustomerByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customer})
}

// ListCustomers handles GET /api/customers
func (h *InventoryHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	customers, err := h.repo.FindAllCustomers(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list customers")
		respondError(w, http.StatusInternalServerError, "Failed to list customers")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customers})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *InventoryHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := h.repo.FindCustomerByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}

	var req struct {
		FullName *string `json:"full_name"`
		Email    *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}

	if err := h.repo.UpdateCustomer(customer); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update customer")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer updated successfully",
		Data:    customer,
	})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *InventoryHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := h.repo.DeleteCustomer(id); err != nil {
		if errors.Is(err, domain.ErrEntityReferenced) {
			respondError(w, http.StatusConflict, "Customer still has orders")
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete customer")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Customer deleted successfully"})
}

// ListCustomerOrders handles GET /api/customers/{id}/orders
func (h *InventoryHandler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	orders, err := h.repo.FindOrdersByCustomer(id)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list customer orders")
		respondError(w, http.StatusInternalServerError, "Failed to list customer orders")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// CreateOrder handles POST /api/orders
func (h *InventoryHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customer_id"`
		Items      []struct {
			ProductID string   `json:"product_id"`
			Qty       int      `json:"qty"`
			UnitPrice *float64 `json:"unit_price"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer_id")
		return
	}

	items := make([]command.CreateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid product_id in items")
			return
		}
		items = append(items, command.CreateOrderItemInput{
			ProductID: productID,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := h.createOrderHandler.Handle(command.CreateOrderCommand{
		CustomerID: customerID,
		Items:      items,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *InventoryHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.repo.FindOrderByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

// ListOrders handles GET /api/orders
func (h *InventoryHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	orders, err := h.repo.FindAllOrders(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// UpdateOrder handles PUT /api/orders/{id}. Confirmation goes through the
// confirm action; the only direct status change allowed here is cancelation
// of a PENDING order.
func (h *InventoryHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.repo.FindOrderByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	var req struct {
		Status *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != nil {
		if *req.Status != domain.OrderStatusCanceled || !order.IsPending() {
			respondError(w, http.StatusBadRequest, "only PENDING orders can be canceled here")
			return
		}
		order.Status = domain.OrderStatusCanceled
	}

	if err := h.repo.UpdateOrder(order); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update order")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *InventoryHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.repo.DeleteOrder(id); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete order")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Order deleted successfully"})
}

// ConfirmOrder handles POST /api/orders/{id}/confirm
func (h *InventoryHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.confirmOrderHandler.Handle(r.Context(), command.ConfirmOrderCommand{OrderID: id})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			respondError(w, http.StatusBadRequest, insufficient.Error())
		case errors.Is(err, domain.ErrInvalidStateTransition):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Logger.Error().Err(err).Str("order_id", id.String()).Msg("Failed to confirm order")
			respondError(w, http.StatusInternalServerError, "Failed to confirm order")
		}
		return
	}

	h.updateReservedUnitsMetric()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order confirmed successfully",
		Data:    order,
	})
}

// ListOrderItems handles GET /api/order-items
func (h *InventoryHandler) ListOrderItems(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	items, err := h.repo.FindAllOrderItems(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list order items")
		respondError(w, http.StatusInternalServerError, "Failed to list order items")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// GetOrderItem handles GET /api/order-items/{id}
func (h *InventoryHandler) GetOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order item ID")
		return
	}

	item, err := h.repo.FindOrderItemByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order item not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: item})
}

// CreateOrderItem handles POST /api/order-items. Items are normally created
// through the nested order payload; this route covers adding a line to an
// order that is still PENDING.
func (h *InventoryHandler) CreateOrderItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID   string   `json:"order_id"`
		ProductID string   `json:"product_id"`
		Qty       int      `json:"qty"`
		UnitPrice *float64 `json:"unit_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order_id")
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product_id")
		return
	}
	if req.Qty < 1 {
		respondError(w, http.StatusBadRequest, "qty must be at least 1")
		return
	}

	order, err := h.repo.FindOrderByID(orderID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if !order.IsPending() {
		respondError(w, http.StatusBadRequest, "only PENDING orders can be modified")
		return
	}

	product, err := h.repo.FindProductByID(productID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	unitPrice := product.Price
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	if unitPrice <= 0 {
		respondError(w, http.StatusBadRequest, "unit_price must be positive")
		return
	}

	item := &domain.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Qty:       req.Qty,
		UnitPrice: unitPrice,
	}
	if err := h.repo.CreateOrderItem(item); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create order item")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order item created successfully",
		Data:    item,
	})
}

// UpdateOrderItem handles PUT /api/order-items/{id}
func (h *InventoryHandler) UpdateOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order item ID")
		return
	}

	item, err := h.repo.FindOrderItemByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order item not found")
		return
	}

	order, err := h.repo.FindOrderByID(item.OrderID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if !order.IsPending() {
		respondError(w, http.StatusBadRequest, "only PENDING orders can be modified")
		return
	}

	var req struct {
		Qty       *int     `json:"qty"`
		UnitPrice *float64 `json:"unit_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Qty != nil {
		if *req.Qty < 1 {
			respondError(w, http.StatusBadRequest, "qty must be at least 1")
			return
		}
		item.Qty = *req.Qty
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice <= 0 {
			respondError(w, http.StatusBadRequest, "unit_price must be positive")
			return
		}
		item.UnitPrice = *req.UnitPrice
	}

	if err := h.repo.UpdateOrderItem(item); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update order item")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order item updated successfully",
		Data:    item,
	})
}

// DeleteOrderItem handles DELETE /api/order-items/{id}
func (h *InventoryHandler) DeleteOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order item ID")
		return
	}

	item, err := h.repo.FindOrderItemByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order item not found")
		return
	}

	order, err := h.repo.FindOrderByID(item.OrderID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if !order.IsPending() {
		respondError(w, http.StatusBadRequest, "only PENDING orders can be modified")
		return
	}

	if err := h.repo.DeleteOrderItem(id); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete order item")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Order item deleted successfully"})
}

// CreatePayment handles POST /api/payments
func (h *InventoryHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string  `json:"order_id"`
		Method  string  `json:"method"`
		Amount  float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order_id")
		return
	}

	payment, err := h.createPaymentHandler.Handle(command.CreatePaymentCommand{
		OrderID: orderID,
		Method:  req.Method,
		Amount:  req.Amount,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Payment created successfully",
		Data:    payment,
	})
}

// GetPayment handles GET /api/payments/{id}
func (h *InventoryHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	payment, err := h.repo.FindPaymentByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Payment not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: payment})
}

// ListPayments handles GET /api/payments
func (h *InventoryHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	payments, err := h.repo.FindAllPayments(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list payments")
		respondError(w, http.StatusInternalServerError, "Failed to list payments")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: payments})
}

// UpdatePayment handles PUT /api/payments/{id}. Only PENDING payments can
// change; confirmed payments are immutable.
func (h *InventoryHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	payment, err := h.repo.FindPaymentByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Payment not found")
		return
	}
	if payment.Status != domain.PaymentStatusPending {
		respondError(w, http.StatusBadRequest, "only PENDING payments can be modified")
		return
	}

	var req struct {
		Method *string  `json:"method"`
		Amount *float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Method != nil {
		if !domain.IsValidPaymentMethod(*req.Method) {
			respondError(w, http.StatusBadRequest, "unsupported payment method")
			return
		}
		payment.Method = *req.Method
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			respondError(w, http.StatusBadRequest, "amount must be positive")
			return
		}
		payment.Amount = *req.Amount
	}

	if err := h.repo.UpdatePayment(payment); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update payment")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Payment updated successfully",
		Data:    payment,
	})
}

// DeletePayment handles DELETE /api/payments/{id}
func (h *InventoryHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	payment, err := h.repo.FindPaymentByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Payment not found")
		return
	}
	if payment.Status != domain.PaymentStatusPending {
		respondError(w, http.StatusBadRequest, "only PENDING payments can be deleted")
		return
	}

	if err := h.repo.DeletePayment(id); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete payment")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Payment deleted successfully"})
}

// ConfirmPayment handles POST /api/payments/{id}/confirm
func (h *InventoryHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	payment, err := h.confirmPaymentHandler.Handle(r.Context(), command.ConfirmPaymentCommand{PaymentID: id})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStateTransition) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Logger.Error().Err(err).Str("payment_id", id.String()).Msg("Failed to confirm payment")
		respondError(w, http.StatusInternalServerError, "Failed to confirm payment")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Payment confirmed successfully",
		Data:    payment,
	})
}
