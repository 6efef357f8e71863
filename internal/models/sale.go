package models

import "time"

// Sale is a single sales record. TotalAmount is accepted as supplied by the
// caller and is not cross-checked against Quantity * UnitPrice.
type Sale struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalAmount float64   `json:"total_amount"`
	SaleDate    time.Time `json:"sale_date"`
	CreatedAt   time.Time `json:"created_at"`
}
