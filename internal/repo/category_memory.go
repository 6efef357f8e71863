package repo

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int
}

// NewInMemoryCategoryRepository creates a new instance of InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
		nextID:     1,
	}
}

// Create adds a new category to the repository.
func (r *InMemoryCategoryRepository) Create(c models.Category) (models.Category, error) {
	c.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.categories = append(r.categories, c)
	return c, nil
}

// GetByID retrieves a category by its ID.
func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// GetAll retrieves categories with skip/limit pagination in insertion order.
func (r *InMemoryCategoryRepository) GetAll(skip, limit int) ([]models.Category, error) {
	start, end := pageBounds(len(r.categories), skip, limit)
	return r.categories[start:end], nil
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = []models.Category{}
	r.nextID = 1
}
