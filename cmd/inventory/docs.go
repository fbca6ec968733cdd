package main

// @title Inventory API
// @version 1.0
// @description Inventory and order management API with a relational query engine, stock reservation and full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/inventory-api
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/inventory-api/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Related
// @tag.description Relational query endpoints

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Stocks
// @tag.description Stock management endpoints

// @tag.name Orders
// @tag.description Order management endpoints

// @tag.name Payments
// @tag.description Payment endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
