package repo

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// It shares state with an InMemoryInventoryRepository so product creation can
// produce the paired inventory row, mirroring the transactional Postgres path.
type InMemoryProductRepository struct {
	products  []models.Product
	nextID    int
	inventory *InMemoryInventoryRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository(inventory *InMemoryInventoryRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products:  []models.Product{},
		nextID:    1,
		inventory: inventory,
	}
}

// Create adds a new product and its initial inventory row.
func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	p.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append(r.products, p)
	r.inventory.createForProduct(p.ID, now)
	return p, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetAll retrieves products with skip/limit pagination in insertion order.
func (r *InMemoryProductRepository) GetAll(skip, limit int) ([]models.Product, error) {
	start, end := pageBounds(len(r.products), skip, limit)
	return r.products[start:end], nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.nextID = 1
}
