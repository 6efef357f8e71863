package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/ecommerce-admin/internal/http/handlers"
	rl "github.com/rogerio-castellano/ecommerce-admin/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ecommerce-admin/internal/repo"
)

var (
	categoryRepo  *repo.InMemoryCategoryRepository
	productRepo   *repo.InMemoryProductRepository
	inventoryRepo *repo.InMemoryInventoryRepository
	saleRepo      *repo.InMemorySaleRepository
)

func init() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	handler.SetCategoryRepo(categoryRepo)

	inventoryRepo = repo.NewInMemoryInventoryRepository()
	handler.SetInventoryRepo(inventoryRepo)

	productRepo = repo.NewInMemoryProductRepository(inventoryRepo)
	handler.SetProductRepo(productRepo)

	saleRepo = repo.NewInMemorySaleRepository()
	handler.SetSaleRepo(saleRepo)
}

// clearAll resets every repository and the per-IP rate limiters; httptest
// requests all originate from the same address, so state would otherwise
// leak between tests.
func clearAll() {
	categoryRepo.Clear()
	productRepo.Clear()
	inventoryRepo.Clear()
	saleRepo.Clear()
	rl.CleanupAllVisitors()
}

func createCategory(r http.Handler, c handler.CategoryRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(c)
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSale(r http.Handler, s handler.SaleRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(s)
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// mustCreateProduct seeds a category and a product through the API and
// returns the product ID.
func mustCreateProduct(r http.Handler, name string, price float64) (int, error) {
	wCat := createCategory(r, handler.CategoryRequest{Name: "Electronics"})
	if wCat.Code != http.StatusCreated {
		return 0, fmt.Errorf("expected 201 creating category, got %d", wCat.Code)
	}
	var cat handler.CategoryResponse
	if err := json.NewDecoder(wCat.Body).Decode(&cat); err != nil {
		return 0, fmt.Errorf("decoding category response: %v", err)
	}

	wProd := createProduct(r, handler.ProductRequest{Name: name, Price: price, CategoryID: cat.Id})
	if wProd.Code != http.StatusCreated {
		return 0, fmt.Errorf("expected 201 creating product, got %d", wProd.Code)
	}
	var prod handler.ProductResponse
	if err := json.NewDecoder(wProd.Body).Decode(&prod); err != nil {
		return 0, fmt.Errorf("decoding product response: %v", err)
	}
	return prod.Id, nil
}
