package repo

import (
	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetByID(id int) (models.Category, error)
	GetAll(skip, limit int) ([]models.Category, error)
}
