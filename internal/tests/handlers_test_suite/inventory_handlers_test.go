package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/ecommerce-admin/internal/http/handlers"
	"github.com/rogerio-castellano/ecommerce-admin/internal/http/router"
)

func patchInventory(r http.Handler, productID int, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/inventory/%d", productID), bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateInventoryHandler_QuantityOnly(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	productID, err := mustCreateProduct(r, "Laptop", 1500.0)
	if err != nil {
		t.Fatal(err)
	}

	w := patchInventory(r, productID, `{"quantity": 50}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var updated handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Quantity != 50 {
		t.Errorf("expected quantity 50, got %d", updated.Quantity)
	}
	if updated.LowStockThreshold != 10 {
		t.Errorf("expected threshold to stay 10, got %d", updated.LowStockThreshold)
	}
	if updated.LowStock {
		t.Error("expected record to no longer be low stock")
	}
}

func TestUpdateInventoryHandler_ThresholdOnly(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	productID, err := mustCreateProduct(r, "Laptop", 1500.0)
	if err != nil {
		t.Fatal(err)
	}

	if w := patchInventory(r, productID, `{"quantity": 30}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK setting quantity, got %d", w.Code)
	}

	w := patchInventory(r, productID, `{"low_stock_threshold": 40}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var updated handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Quantity != 30 {
		t.Errorf("expected quantity to stay 30, got %d", updated.Quantity)
	}
	if updated.LowStockThreshold != 40 {
		t.Errorf("expected threshold 40, got %d", updated.LowStockThreshold)
	}
	if !updated.LowStock {
		t.Error("expected record to be low stock after raising the threshold")
	}
}

func TestUpdateInventoryHandler_EmptyPatch(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	productID, err := mustCreateProduct(r, "Laptop", 1500.0)
	if err != nil {
		t.Fatal(err)
	}

	w := patchInventory(r, productID, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for an empty patch, got %d", w.Code)
	}
}

func TestUpdateInventoryHandler_NegativeValues(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	productID, err := mustCreateProduct(r, "Laptop", 1500.0)
	if err != nil {
		t.Fatal(err)
	}

	w := patchInventory(r, productID, `{"quantity": -5}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	found := false
	for _, e := range resp {
		if strings.EqualFold(e.Field, "Quantity") {
			found = true
		}
	}
	if !found {
		t.Error("expected a validation error for field Quantity")
	}
}

func TestUpdateInventoryHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	w := patchInventory(r, 999999, `{"quantity": 5}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetLowStockHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	wCat := createCategory(r, handler.CategoryRequest{Name: "Electronics"})
	var cat handler.CategoryResponse
	json.NewDecoder(wCat.Body).Decode(&cat)

	var productIDs []int
	for i := 1; i <= 3; i++ {
		w := createProduct(r, handler.ProductRequest{Name: fmt.Sprintf("Product %d", i), Price: 10, CategoryID: cat.Id})
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to create test product %d", i)
		}
		var p handler.ProductResponse
		json.NewDecoder(w.Body).Decode(&p)
		productIDs = append(productIDs, p.Id)
	}

	// Restock two of the three; the remaining one stays at quantity 0.
	for _, id := range productIDs[:2] {
		if w := patchInventory(r, id, `{"quantity": 100}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK restocking product %d, got %d", id, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory/low-stock", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var items []handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 low stock record, got %d", len(items))
	}
	if items[0].ProductID != productIDs[2] {
		t.Errorf("expected product %d to be low stock, got %d", productIDs[2], items[0].ProductID)
	}
	for _, inv := range items {
		if inv.Quantity > inv.LowStockThreshold {
			t.Errorf("low stock record with quantity %d above threshold %d", inv.Quantity, inv.LowStockThreshold)
		}
	}
}
