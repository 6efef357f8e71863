package handlers

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"category_id"`
}

type ProductResponse struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CategoryID  int       `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InventoryResponse struct {
	Id                int       `json:"id"`
	ProductID         int       `json:"product_id"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LowStock          bool      `json:"low_stock"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// InventoryPatchRequest carries a partial inventory update; absent fields
// stay nil and are not applied.
type InventoryPatchRequest struct {
	Quantity          *int `json:"quantity"`
	LowStockThreshold *int `json:"low_stock_threshold"`
}

type SaleRequest struct {
	ProductID   int       `json:"product_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalAmount float64   `json:"total_amount"`
	SaleDate    time.Time `json:"sale_date"`
}

type SaleResponse struct {
	Id          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalAmount float64   `json:"total_amount"`
	SaleDate    time.Time `json:"sale_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type SalesSearchResult struct {
	Data []SaleResponse `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

func inventoryResponse(inv models.Inventory) InventoryResponse {
	return InventoryResponse{
		Id:                inv.ID,
		ProductID:         inv.ProductID,
		Quantity:          inv.Quantity,
		LowStockThreshold: inv.LowStockThreshold,
		LowStock:          inv.LowStock(),
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}

func saleResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		Id:          s.ID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		SaleDate:    s.SaleDate,
		CreatedAt:   s.CreatedAt,
	}
}
