package middleware

import (
	"encoding/json"
	"net/http"

	"delights/internal/api/util"
	"delights/internal/core/service"
)

type AdminAuthMiddleware struct {
	adminService service.AdminService
}

func NewAdminAuthMiddleware(adminService service.AdminService) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		adminService: adminService,
	}
}

// RequireAdmin gates a route on a valid admin token. On failure the
// response is always the authorization error, never a partial result.
func (m *AdminAuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.adminService.Authorize(util.AdminToken(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Admin auth required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
