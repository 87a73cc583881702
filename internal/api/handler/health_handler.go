package handler

import (
	"net/http"

	"delights/internal/config"
	"delights/internal/core/service"
)

type HealthHandler struct {
	database     string
	adminService service.AdminService
}

func NewHealthHandler(database string, adminService service.AdminService) *HealthHandler {
	return &HealthHandler{
		database:     database,
		adminService: adminService,
	}
}

// Health reports which backing store is active and whether admin auth is
// enforced, so a bypass deployment is immediately visible.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":                 config.AppName,
		"version":              config.AppVersion,
		"database":             h.database,
		"requireAdminPassword": h.adminService.PasswordRequired(),
	})
}
