package inventory

import (
	"gorm.io/gorm"

	"github.com/tair/inventory-api/internal/inventory/domain"
	"github.com/tair/inventory-api/internal/inventory/relquery"
	"github.com/tair/inventory-api/internal/inventory/repository"
)

// ProvideInventoryRepository provides the traced inventory repository
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewGormInventoryRepositoryWithTracing(db)
}

// ProvideRunner provides the traced related-query runner
func ProvideRunner(db *gorm.DB) relquery.Runner {
	return relquery.NewRunnerWithTracing(relquery.NewExecutor(db))
}
