package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/ecommerce-admin/internal/http/handlers"
	mw "github.com/rogerio-castellano/ecommerce-admin/internal/http/middleware"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(mw.RateLimit)

	r.Post("/categories", handlers.CreateCategoryHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)

	r.Post("/products", handlers.CreateProductHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	r.Get("/inventory", handlers.GetInventoryHandler)
	r.Get("/inventory/low-stock", handlers.GetLowStockHandler)
	r.Patch("/inventory/{productId}", handlers.UpdateInventoryHandler)

	r.Post("/sales", handlers.CreateSaleHandler)
	r.Get("/sales", handlers.GetSalesHandler)
	r.Get("/sales/revenue", handlers.GetRevenueByIntervalHandler)
	r.Get("/sales/revenue/compare", handlers.CompareRevenueHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
