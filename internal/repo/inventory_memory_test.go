package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

func newTestRepos() (*InMemoryProductRepository, *InMemoryInventoryRepository) {
	inventoryRepo := NewInMemoryInventoryRepository()
	productRepo := NewInMemoryProductRepository(inventoryRepo)
	return productRepo, inventoryRepo
}

func TestProductCreate_CreatesInitialInventory(t *testing.T) {
	productRepo, inventoryRepo := newTestRepos()

	created, err := productRepo.Create(models.Product{Name: "Laptop", Price: 1500.0, CategoryID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv, err := inventoryRepo.GetByProductID(created.ID)
	if err != nil {
		t.Fatalf("expected inventory row for product %d, got error: %v", created.ID, err)
	}
	if inv.Quantity != 0 {
		t.Errorf("expected initial quantity 0, got %d", inv.Quantity)
	}
	if inv.LowStockThreshold != 10 {
		t.Errorf("expected initial threshold 10, got %d", inv.LowStockThreshold)
	}
}

func TestGetLowStock_OnlyRowsAtOrBelowThreshold(t *testing.T) {
	productRepo, inventoryRepo := newTestRepos()

	quantities := []int{0, 5, 10, 11, 50}
	for range quantities {
		if _, err := productRepo.Create(models.Product{Name: "P", Price: 1, CategoryID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for i, qty := range quantities {
		q := qty
		if _, err := inventoryRepo.UpdateByProductID(i+1, InventoryPatch{Quantity: &q}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	low, err := inventoryRepo.GetLowStock(0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 3 {
		t.Fatalf("expected 3 low stock rows (0, 5 and 10), got %d", len(low))
	}
	for _, inv := range low {
		if inv.Quantity > inv.LowStockThreshold {
			t.Errorf("row for product %d has quantity %d above threshold %d",
				inv.ProductID, inv.Quantity, inv.LowStockThreshold)
		}
	}
}

func TestUpdateByProductID_PartialPatch(t *testing.T) {
	productRepo, inventoryRepo := newTestRepos()

	created, _ := productRepo.Create(models.Product{Name: "Laptop", Price: 1500.0, CategoryID: 1})

	qty := 50
	updated, err := inventoryRepo.UpdateByProductID(created.ID, InventoryPatch{Quantity: &qty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 50 {
		t.Errorf("expected quantity 50, got %d", updated.Quantity)
	}
	if updated.LowStockThreshold != 10 {
		t.Errorf("expected threshold to stay 10, got %d", updated.LowStockThreshold)
	}

	threshold := 25
	updated, err = inventoryRepo.UpdateByProductID(created.ID, InventoryPatch{LowStockThreshold: &threshold})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 50 {
		t.Errorf("expected quantity to stay 50, got %d", updated.Quantity)
	}
	if updated.LowStockThreshold != 25 {
		t.Errorf("expected threshold 25, got %d", updated.LowStockThreshold)
	}
}

func TestUpdateByProductID_NotFound(t *testing.T) {
	_, inventoryRepo := newTestRepos()

	qty := 5
	_, err := inventoryRepo.UpdateByProductID(42, InventoryPatch{Quantity: &qty})
	if !errors.Is(err, ErrInventoryNotFound) {
		t.Errorf("expected ErrInventoryNotFound, got %v", err)
	}
}

func TestInventoryGetAll_Pagination(t *testing.T) {
	productRepo, inventoryRepo := newTestRepos()

	for i := 0; i < 5; i++ {
		productRepo.Create(models.Product{Name: "P", Price: 1, CategoryID: 1})
	}

	page, err := inventoryRepo.GetAll(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page))
	}
	if page[0].ProductID != 3 || page[1].ProductID != 4 {
		t.Errorf("expected products 3 and 4, got %d and %d", page[0].ProductID, page[1].ProductID)
	}

	empty, err := inventoryRepo.GetAll(10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty page beyond total, got %d rows", len(empty))
	}
}
