package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/internal/inventory/relquery"
	"github.com/tair/inventory-api/internal/inventory/usecase/command"
	"github.com/tair/inventory-api/internal/inventory/usecase/query"
)

// InventoryHandler handles HTTP requests for the inventory API
type InventoryHandler struct {
	// Command handlers
	createProductHandler  *command.CreateProductHandler
	createStockHandler    *command.CreateStockHandler
	createOrderHandler    *command.CreateOrderHandler
	createPaymentHandler  *command.CreatePaymentHandler
	confirmOrderHandler   *command.ConfirmOrderHandler
	confirmPaymentHandler *command.ConfirmPaymentHandler

	// Query handlers
	getRelatedHandler     *query.GetRelatedHandler
	lowStockHandler       *query.LowStockHandler
	availableStockHandler *query.AvailableStockHandler
	listProductsHandler   *query.ListProductsHandler

	repo  domain.InventoryRepository
	cache *ResponseCache

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	querySummary   *prometheus.SummaryVec
	reservedUnits  prometheus.Gauge
	productsTotal  prometheus.Gauge
}

// NewInventoryHandler creates a new inventory handler. The publisher
// and cache may be nil when Kafka/Redis are not configured.
func NewInventoryHandler(repo domain.InventoryRepository, runner relquery.Runner, publisher command.EventPublisher, cache *ResponseCache) *InventoryHandler {
	// Initialize command handlers
	createProductHandler := command.NewCreateProductHandler(repo, repo, repo)
	createStockHandler := command.NewCreateStockHandler(repo, repo, repo)
	createOrderHandler := command.NewCreateOrderHandler(repo, repo, repo)
	createPaymentHandler := command.NewCreatePaymentHandler(repo, repo)
	confirmOrderHandler := command.NewConfirmOrderHandler(repo, publisher)
	confirmPaymentHandler := command.NewConfirmPaymentHandler(repo, publisher)

	// Initialize query handlers
	getRelatedHandler := query.NewGetRelatedHandler(runner)
	lowStockHandler := query.NewLowStockHandler(repo)
	availableStockHandler := query.NewAvailableStockHandler(repo)
	listProductsHandler := query.NewListProductsHandler(repo)

	// Initialize Prometheus metrics
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_api_requests_total",
			Help: "Total number of requests to the inventory API",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_api_request_duration_seconds",
			Help:    "Duration of inventory API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	querySummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "inventory_api_related_query_duration_seconds",
			Help:       "Duration of related-data queries in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"entity"},
	)

	reservedUnits := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_api_reserved_units",
			Help: "Total stock units currently reserved by confirmed orders",
		},
	)

	productsTotal := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_api_products_total",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(querySummary)
	prometheus.MustRegister(reservedUnits)
	prometheus.MustRegister(productsTotal)

	return &InventoryHandler{
		createProductHandler:  createProductHandler,
		createStockHandler:    createStockHandler,
		createOrderHandler:    createOrderHandler,
		createPaymentHandler:  createPaymentHandler,
		confirmOrderHandler:   confirmOrderHandler,
		confirmPaymentHandler: confirmPaymentHandler,
		getRelatedHandler:     getRelatedHandler,
		lowStockHandler:       lowStockHandler,
		availableStockHandler: availableStockHandler,
		listProductsHandler:   listProductsHandler,
		repo:                  repo,
		cache:                 cache,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		querySummary:          querySummary,
		reservedUnits:         reservedUnits,
		productsTotal:         productsTotal,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// updateReservedUnitsMetric refreshes the reserved units gauge
func (h *InventoryHandler) updateReservedUnitsMetric() {
	if units, err := h.repo.SumReservedUnits(); err == nil {
		h.reservedUnits.Set(float64(units))
	}
}

// updateProductsTotalMetric refreshes the product count gauge
func (h *InventoryHandler) updateProductsTotalMetric() {
	if count, err := h.repo.CountProducts(); err == nil {
		h.productsTotal.Set(float64(count))
	}
}

// RegisterRoutes registers all inventory API routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	// Related-data engine, one endpoint per entity collection
	router.HandleFunc("/api/{entity}/related",
		h.metricsMiddleware("/api/{entity}/related", h.cache.Middleware(h.GetRelated))).Methods("GET")

	// Catalog
	router.HandleFunc("/api/brands", h.metricsMiddleware("/api/brands", h.ListBrands)).Methods("GET")
	router.HandleFunc("/api/brands", h.metricsMiddleware("/api/brands", h.CreateBrand)).Methods("POST")
	router.HandleFunc("/api/brands/{id}", h.metricsMiddleware("/api/brands/{id}", h.GetBrand)).Methods("GET")
	router.HandleFunc("/api/brands/{id}", h.metricsMiddleware("/api/brands/{id}", h.UpdateBrand)).Methods("PUT")
	router.HandleFunc("/api/brands/{id}", h.metricsMiddleware("/api/brands/{id}", h.DeleteBrand)).Methods("DELETE")
	router.HandleFunc("/api/brands/{id}/products", h.metricsMiddleware("/api/brands/{id}/products", h.ListBrandProducts)).Methods("GET")

	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.metricsMiddleware("/api/categories/{id}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/categories/{id}", h.metricsMiddleware("/api/categories/{id}", h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.metricsMiddleware("/api/categories/{id}", h.DeleteCategory)).Methods("DELETE")
	router.HandleFunc("/api/categories/{id}/products", h.metricsMiddleware("/api/categories/{id}/products", h.ListCategoryProducts)).Methods("GET")

	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/low-stock", h.metricsMiddleware("/api/products/low-stock", h.ListLowStockProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/stocks", h.metricsMiddleware("/api/products/{id}/stocks", h.ListProductStocks)).Methods("GET")

	router.HandleFunc("/api/warehouses", h.metricsMiddleware("/api/warehouses", h.ListWarehouses)).Methods("GET")
	router.HandleFunc("/api/warehouses", h.metricsMiddleware("/api/warehouses", h.CreateWarehouse)).Methods("POST")
	router.HandleFunc("/api/warehouses/{id}", h.metricsMiddleware("/api/warehouses/{id}", h.GetWarehouse)).Methods("GET")
	router.HandleFunc("/api/warehouses/{id}", h.metricsMiddleware("/api/warehouses/{id}", h.UpdateWarehouse)).Methods("PUT")
	router.HandleFunc("/api/warehouses/{id}", h.metricsMiddleware("/api/warehouses/{id}", h.DeleteWarehouse)).Methods("DELETE")
	router.HandleFunc("/api/warehouses/{id}/stocks", h.metricsMiddleware("/api/warehouses/{id}/stocks", h.ListWarehouseStocks)).Methods("GET")

	router.HandleFunc("/api/stocks", h.metricsMiddleware("/api/stocks", h.ListStocks)).Methods("GET")
	router.HandleFunc("/api/stocks", h.metricsMiddleware("/api/stocks", h.CreateStock)).Methods("POST")
	router.HandleFunc("/api/stocks/available", h.metricsMiddleware("/api/stocks/available", h.ListAvailableStocks)).Methods("GET")
	router.HandleFunc("/api/stocks/{id}", h.metricsMiddleware("/api/stocks/{id}", h.GetStock)).Methods("GET")
	router.HandleFunc("/api/stocks/{id}", h.metricsMiddleware("/api/stocks/{id}", h.UpdateStock)).Methods("PUT")
	router.HandleFunc("/api/stocks/{id}", h.metricsMiddleware("/api/stocks/{id}", h.DeleteStock)).Methods("DELETE")

	// Sales
	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", h.ListCustomers)).Methods("GET")
	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", h.CreateCustomer)).Methods("POST")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", h.GetCustomer)).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", h.UpdateCustomer)).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", h.DeleteCustomer)).Methods("DELETE")
	router.HandleFunc("/api/customers/{id}/orders", h.metricsMiddleware("/api/customers/{id}/orders", h.ListCustomerOrders)).Methods("GET")

	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.UpdateOrder)).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.DeleteOrder)).Methods("DELETE")
	router.HandleFunc("/api/orders/{id}/confirm", h.metricsMiddleware("/api/orders/{id}/confirm", h.ConfirmOrder)).Methods("POST")

	router.HandleFunc("/api/order-items", h.metricsMiddleware("/api/order-items", h.ListOrderItems)).Methods("GET")
	router.HandleFunc("/api/order-items", h.metricsMiddleware("/api/order-items", h.CreateOrderItem)).Methods("POST")
	router.HandleFunc("/api/order-items/{id}", h.metricsMiddleware("/api/order-items/{id}", h.GetOrderItem)).Methods("GET")
	router.HandleFunc("/api/order-items/{id}", h.metricsMiddleware("/api/order-items/{id}", h.UpdateOrderItem)).Methods("PUT")
	router.HandleFunc("/api/order-items/{id}", h.metricsMiddleware("/api/order-items/{id}", h.DeleteOrderItem)).Methods("DELETE")

	router.HandleFunc("/api/payments", h.metricsMiddleware("/api/payments", h.ListPayments)).Methods("GET")
	router.HandleFunc("/api/payments", h.metricsMiddleware("/api/payments", h.CreatePayment)).Methods("POST")
	router.HandleFunc("/api/payments/{id}", h.metricsMiddleware("/api/payments/{id}", h.GetPayment)).Methods("GET")
	router.HandleFunc("/api/payments/{id}", h.metricsMiddleware("/api/payments/{id}", h.UpdatePayment)).Methods("PUT")
	router.HandleFunc("/api/payments/{id}", h.metricsMiddleware("/api/payments/{id}", h.DeletePayment)).Methods("DELETE")
	router.HandleFunc("/api/payments/{id}/confirm", h.metricsMiddleware("/api/payments/{id}/confirm", h.ConfirmPayment)).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory API is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Error: message})
}

// pathID parses the {id} route variable as a UUID
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func paginationParams(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if limit == 0 {
		limit = 10
	}
	return limit, offset
}
