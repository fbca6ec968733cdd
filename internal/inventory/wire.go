//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-api/internal/inventory/delivery/http"
	"github.com/tair/inventory-api/internal/inventory/usecase/command"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
	ProvideRunner,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher command.EventPublisher, cache *http.ResponseCache) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
