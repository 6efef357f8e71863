package repo

import (
	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Create also inserts the product's initial inventory row (quantity 0,
// threshold 10) in the same transaction, so a product is never observable
// without its inventory record.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetByID(id int) (models.Product, error)
	GetAll(skip, limit int) ([]models.Product, error)
}

// Initial inventory values for a newly created product.
const (
	initialQuantity          = 0
	initialLowStockThreshold = 10
)
