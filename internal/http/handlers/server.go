package handlers

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/redissvc"
	repo "github.com/rogerio-castellano/ecommerce-admin/internal/repo"
)

var (
	categoryRepo  repo.CategoryRepository
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	saleRepo      repo.SaleRepository

	reportCache    *redissvc.RedisService
	reportCacheTTL = time.Minute
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetInventoryRepo(r repo.InventoryRepository) {
	inventoryRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

// SetReportCache wires the optional Redis revenue report cache. A nil
// service leaves caching disabled.
func SetReportCache(rs *redissvc.RedisService, ttl time.Duration) {
	reportCache = rs
	if ttl > 0 {
		reportCacheTTL = ttl
	}
}
