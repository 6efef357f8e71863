package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/ecommerce-admin/internal/repo"
)

// GetInventoryHandler godoc
// @Summary List inventory records
// @Tags inventory
// @Produce json
// @Param skip query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {array} InventoryResponse
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parseSkipLimit(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := inventoryRepo.GetAll(skip, limit)
	if err != nil {
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}

	response := make([]InventoryResponse, len(items))
	for i, inv := range items {
		response[i] = inventoryResponse(inv)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetLowStockHandler godoc
// @Summary List inventory records at or below their low stock threshold
// @Tags inventory
// @Produce json
// @Param skip query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {array} InventoryResponse
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/low-stock [get]
func GetLowStockHandler(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parseSkipLimit(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := inventoryRepo.GetLowStock(skip, limit)
	if err != nil {
		http.Error(w, "could not fetch low stock inventory", http.StatusInternalServerError)
		return
	}

	response := make([]InventoryResponse, len(items))
	for i, inv := range items {
		response[i] = inventoryResponse(inv)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// UpdateInventoryHandler godoc
// @Summary Partially update a product's inventory record
// @Description Applies only the fields present in the request body; absent fields keep their current values
// @Tags inventory
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param patch body InventoryPatchRequest true "Fields to update"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{productId} [patch]
func UpdateInventoryHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "productId")
	productID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req InventoryPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateInventoryPatch(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := inventoryRepo.UpdateByProductID(productID, repo.InventoryPatch{
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		if errors.Is(err, repo.ErrInventoryNotFound) {
			http.Error(w, "inventory not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update inventory", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inventoryResponse(updated))
}
