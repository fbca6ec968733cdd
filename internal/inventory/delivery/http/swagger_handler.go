package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Inventory API
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetRelated godoc
// @Summary Query an entity collection with related data
// @Description Fetch entities with joined relations, relation filters, field projection, ordering and limit
// @Tags Related
// @Produce json
// @Param entity path string true "Root entity (brand, category, product, warehouse, stock, customer, order, orderitem, payment)"
// @Param join query string false "Comma-separated relation paths, e.g. brand,stocks.warehouse"
// @Param filter[entity] query string false "Comma-separated field__lookup=value clauses per entity"
// @Param fields[entity] query string false "Comma-separated field whitelist per entity"
// @Param ordering query string false "Comma-separated root fields, '-' prefix for descending"
// @Param distinct query bool false "Deduplicate root rows"
// @Param limit query int false "Max root rows"
// @Success 200 {object} object{count=int,results=array,query=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/{entity}/related [get]
func (h *InventoryHandler) GetRelatedDoc() {}

// CreateOrder godoc
// @Summary Create a new order
// @Description Create a PENDING order with its items; unit prices default to the current product price
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body object{customer_id=string,items=array} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *InventoryHandler) CreateOrderDoc() {}

// ConfirmOrder godoc
// @Summary Confirm an order
// @Description Atomically reserve stock for every order item and mark the order CONFIRMED
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/confirm [post]
func (h *InventoryHandler) ConfirmOrderDoc() {}

// ConfirmPayment godoc
// @Summary Confirm a payment
// @Description Transition a PENDING payment to CONFIRMED
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/payments/{id}/confirm [post]
func (h *InventoryHandler) ConfirmPaymentDoc() {}

// ListLowStockProducts godoc
// @Summary List low stock products
// @Description Products whose total stock across warehouses is below the threshold
// @Tags Products
// @Produce json
// @Param threshold query int false "Threshold (default: 10)"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/products/low-stock [get]
func (h *InventoryHandler) ListLowStockProductsDoc() {}

// ListAvailableStocks godoc
// @Summary List available stocks
// @Description Stock rows that still have unreserved units
// @Tags Stocks
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/stocks/available [get]
func (h *InventoryHandler) ListAvailableStocksDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *InventoryHandler) HealthCheckDoc() {}
