package repo

import (
	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

// InventoryPatch is a partial update of an inventory row. Nil fields are
// left unchanged.
type InventoryPatch struct {
	Quantity          *int
	LowStockThreshold *int
}

// InventoryRepository defines the interface for inventory data operations.
type InventoryRepository interface {
	GetAll(skip, limit int) ([]models.Inventory, error)
	GetLowStock(skip, limit int) ([]models.Inventory, error)
	GetByProductID(productID int) (models.Inventory, error)
	UpdateByProductID(productID int, patch InventoryPatch) (models.Inventory, error)
}
