package main

import (
	"log"
	"net/http"

	"delights/internal/api/router"
	"delights/internal/cache"
	"delights/internal/config"
	"delights/internal/core/repository"
	"delights/internal/core/service"
)

func main() {
	cfg := config.Load()

	// Select the backing store once at startup. Nothing downstream
	// branches on it; only the health endpoint reports which is active.
	var (
		menuRepo    repository.MenuRepository
		orderRepo   repository.OrderRepository
		contactRepo repository.ContactRepository
	)
	database := "local-json"
	if cfg.MongoURI != "" {
		db, err := config.ConnectMongoDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		menuRepo = repository.NewMongoMenuRepository(db)
		orderRepo = repository.NewMongoOrderRepository(db)
		contactRepo = repository.NewMongoContactRepository(db)
		database = "mongodb"
	} else {
		menuRepo = repository.NewFileMenuRepository(cfg.DataDir)
		orderRepo = repository.NewFileOrderRepository(cfg.DataDir)
		contactRepo = repository.NewFileContactRepository(cfg.DataDir)
	}

	cache.Initialize(cfg.RedisURL)
	defer cache.Close()

	var tokens service.TokenStore
	if cfg.JWTSecret != "" {
		tokens = service.NewJWTTokenStore(cfg.JWTSecret)
	} else {
		tokens = service.NewMemoryTokenStore()
	}

	adminService := service.NewAdminService(cfg.AdminPassword, cfg.AllowAnyPassword, tokens)
	if adminService.BypassActive() {
		log.Printf("WARNING: admin auth bypass is active (set ADMIN_PASSWORD and unset ALLOW_ANY_PASSWORD for production)")
	}

	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(orderRepo)
	contactService := service.NewContactService(contactRepo)

	r := router.NewRouter(cfg, database, menuService, orderService, contactService, adminService)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("%s %s listening on %s (database: %s)", config.AppName, config.AppVersion, addr, database)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
