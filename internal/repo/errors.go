package repo

import "errors"

// ErrCategoryNotFound is returned when a category is not found in the repository.
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrInventoryNotFound is returned when no inventory row exists for a product.
var ErrInventoryNotFound = errors.New("inventory not found")
