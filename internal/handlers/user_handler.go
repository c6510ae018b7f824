package handlers

import (
	"net/http"

	"medreports-backend/internal/services"
	"medreports-backend/utils/response"
)

type UserHandler struct {
	service *services.AuthService
}

func NewUserHandler(service *services.AuthService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns patient accounts only; admin wiring in the router keeps this
// off-limits to plain users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListPatients(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}
