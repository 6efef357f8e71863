package repo

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	items  []models.Inventory
	nextID int
}

// NewInMemoryInventoryRepository creates a new instance of InMemoryInventoryRepository.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		items:  []models.Inventory{},
		nextID: 1,
	}
}

// createForProduct inserts the initial inventory row for a newly created
// product. Called by InMemoryProductRepository.Create.
func (r *InMemoryInventoryRepository) createForProduct(productID int, now time.Time) models.Inventory {
	inv := models.Inventory{
		ID:                r.nextID,
		ProductID:         productID,
		Quantity:          initialQuantity,
		LowStockThreshold: initialLowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	r.nextID++
	r.items = append(r.items, inv)
	return inv
}

// GetAll retrieves inventory rows with skip/limit pagination in insertion order.
func (r *InMemoryInventoryRepository) GetAll(skip, limit int) ([]models.Inventory, error) {
	start, end := pageBounds(len(r.items), skip, limit)
	return r.items[start:end], nil
}

// GetLowStock retrieves rows where quantity <= low_stock_threshold.
func (r *InMemoryInventoryRepository) GetLowStock(skip, limit int) ([]models.Inventory, error) {
	var low []models.Inventory
	for _, inv := range r.items {
		if inv.LowStock() {
			low = append(low, inv)
		}
	}
	start, end := pageBounds(len(low), skip, limit)
	return low[start:end], nil
}

// GetByProductID retrieves the inventory row for a product.
func (r *InMemoryInventoryRepository) GetByProductID(productID int) (models.Inventory, error) {
	for _, inv := range r.items {
		if inv.ProductID == productID {
			return inv, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

// UpdateByProductID applies a partial update; nil patch fields are untouched.
func (r *InMemoryInventoryRepository) UpdateByProductID(productID int, patch InventoryPatch) (models.Inventory, error) {
	for i, inv := range r.items {
		if inv.ProductID != productID {
			continue
		}
		if patch.Quantity != nil {
			inv.Quantity = *patch.Quantity
		}
		if patch.LowStockThreshold != nil {
			inv.LowStockThreshold = *patch.LowStockThreshold
		}
		inv.UpdatedAt = time.Now().UTC()
		r.items[i] = inv
		return inv, nil
	}
	return models.Inventory{}, ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) Clear() {
	r.items = []models.Inventory{}
	r.nextID = 1
}
