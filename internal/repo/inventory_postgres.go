package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

const inventoryColumns = `id, product_id, quantity, low_stock_threshold, created_at, updated_at`

func (r *PostgresInventoryRepository) GetAll(skip, limit int) ([]models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY id LIMIT $1 OFFSET $2`
	return r.queryInventory(query, limit, skip)
}

func (r *PostgresInventoryRepository) GetLowStock(skip, limit int) ([]models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory
		WHERE quantity <= low_stock_threshold ORDER BY id LIMIT $1 OFFSET $2`
	return r.queryInventory(query, limit, skip)
}

func (r *PostgresInventoryRepository) GetByProductID(productID int) (models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var inv models.Inventory
	err := r.db.QueryRowContext(ctx, query, productID).
		Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LowStockThreshold, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, err
}

// UpdateByProductID applies a partial update. COALESCE keeps columns whose
// patch field is nil, and updated_at is always refreshed.
func (r *PostgresInventoryRepository) UpdateByProductID(productID int, patch InventoryPatch) (models.Inventory, error) {
	query := `UPDATE inventory
		SET quantity = COALESCE($1, quantity),
		    low_stock_threshold = COALESCE($2, low_stock_threshold),
		    updated_at = $3
		WHERE product_id = $4
		RETURNING ` + inventoryColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var inv models.Inventory
	err := r.db.QueryRowContext(ctx, query, patch.Quantity, patch.LowStockThreshold, time.Now().UTC(), productID).
		Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LowStockThreshold, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, err
}

func (r *PostgresInventoryRepository) queryInventory(query string, args ...any) ([]models.Inventory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Inventory
	for rows.Next() {
		var inv models.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LowStockThreshold, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}
