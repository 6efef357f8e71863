package models

import "time"

// Inventory tracks the stock level for exactly one product.
type Inventory struct {
	ID                int       `json:"id"`
	ProductID         int       `json:"product_id"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LowStock reports whether the quantity has fallen to or below the threshold.
func (i Inventory) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
