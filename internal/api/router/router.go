package router

import (
	"net/http"

	"delights/internal/api/handler"
	"delights/internal/api/middleware"
	"delights/internal/config"
	"delights/internal/core/service"
)

func NewRouter(
	cfg *config.Config,
	database string,
	menuService service.MenuService,
	orderService service.OrderService,
	contactService service.ContactService,
	adminService service.AdminService,
) http.Handler {
	// Initialize handlers
	menuHandler := handler.NewMenuHandler(menuService)
	orderHandler := handler.NewOrderHandler(orderService)
	contactHandler := handler.NewContactHandler(contactService)
	authHandler := handler.NewAuthHandler(adminService)
	healthHandler := handler.NewHealthHandler(database, adminService)
	adminAuth := middleware.NewAdminAuthMiddleware(adminService)

	mux := http.NewServeMux()

	admin := func(h http.HandlerFunc) http.Handler {
		return adminAuth.RequireAdmin(h)
	}

	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.HandleFunc("POST /api/admin/login", authHandler.Login)

	mux.HandleFunc("GET /api/menu", menuHandler.List)
	mux.Handle("POST /api/menu", admin(menuHandler.Create))
	mux.Handle("PUT /api/menu/{id}", admin(menuHandler.Update))
	mux.Handle("DELETE /api/menu/{id}", admin(menuHandler.Delete))

	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.Handle("GET /api/orders", admin(orderHandler.List))
	mux.Handle("PUT /api/orders/{id}/status", admin(orderHandler.UpdateStatus))
	mux.Handle("DELETE /api/orders/{id}", admin(orderHandler.Delete))

	mux.HandleFunc("POST /api/contact", contactHandler.Create)
	mux.Handle("GET /api/contact", admin(contactHandler.List))

	// Common admin-URL typos go to the canonical admin entry point.
	for _, path := range []string{"/admin", "/isadmin", "/isadmin.html"} {
		mux.Handle("GET "+path, http.RedirectHandler("/admin.html", http.StatusFound))
	}

	// Everything else is the static site with an SPA fallback.
	mux.Handle("/", NewSPAHandler(cfg.PublicDir))

	return middleware.CORSMiddleware(middleware.LoggingMiddleware(mux))
}
