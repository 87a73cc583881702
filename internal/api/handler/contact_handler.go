package handler

import (
	"encoding/json"
	"net/http"

	"delights/internal/core/model"
	"delights/internal/core/service"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.contactService.Submit(req.Name, req.Email, req.Message); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.ListMessages()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
