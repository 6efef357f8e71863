package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/ecommerce-admin/internal/config"
	"github.com/rogerio-castellano/ecommerce-admin/internal/db"
	"github.com/rogerio-castellano/ecommerce-admin/internal/http/handlers"
	rl "github.com/rogerio-castellano/ecommerce-admin/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ecommerce-admin/internal/http/router"
	"github.com/rogerio-castellano/ecommerce-admin/internal/redissvc"
	"github.com/rogerio-castellano/ecommerce-admin/internal/repo"
)

// @title E-commerce Admin API
// @version 1.0
// @description Administrative REST API for catalog, inventory and sales revenue reporting.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("❌ Could not ensure database schema:", err)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetReportCache(redissvc.NewRedisService(rdb, ctx), cfg.RevenueCacheTTL)
	}

	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetInventoryRepo(repo.NewPostgresInventoryRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))

	r := router.NewRouter()
	log.Println("✅ Server running on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
