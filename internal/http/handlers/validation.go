package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCategory(c CategoryRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.CategoryID <= 0 {
		errs = append(errs, ValidationError{Field: "CategoryID", Description: "Category id is required"})
	}
	return errs
}

func validateSale(s SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if s.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductID", Description: "Product id is required"})
	}
	if s.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if s.UnitPrice <= 0 {
		errs = append(errs, ValidationError{Field: "UnitPrice", Description: "Unit price must be greater than zero"})
	}
	if s.TotalAmount <= 0 {
		errs = append(errs, ValidationError{Field: "TotalAmount", Description: "Total amount must be greater than zero"})
	}
	if s.SaleDate.IsZero() {
		errs = append(errs, ValidationError{Field: "SaleDate", Description: "Sale date is required"})
	}
	return errs
}

func validateInventoryPatch(p InventoryPatchRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Quantity == nil && p.LowStockThreshold == nil {
		errs = append(errs, ValidationError{Field: "Body", Description: "At least one of quantity or low_stock_threshold is required"})
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if p.LowStockThreshold != nil && *p.LowStockThreshold < 0 {
		errs = append(errs, ValidationError{Field: "LowStockThreshold", Description: "Low stock threshold cannot be negative"})
	}
	return errs
}
