package handler

import (
	"encoding/json"
	"net/http"

	"delights/internal/core/service"
)

type AuthHandler struct {
	adminService service.AdminService
}

func NewAuthHandler(adminService service.AdminService) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Best-effort decode: a missing body is just a missing password, and
	// bypass mode accepts the login regardless.
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	token, err := h.adminService.Login(req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
