package handler

import (
	"encoding/json"
	"net/http"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/service"
)

type MaintenanceHandler struct {
	svc *service.MaintenanceService
}

func NewMaintenanceHandler(s *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: s}
}

// @Summary Reconstruir las listas de nombres de categorías/tags de todos los movies
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /admin/maintenance/rebuild-name-lists [post]
func (h *MaintenanceHandler) PostRebuildNameLists(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	updated, err := h.svc.RebuildNameLists(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]int{"moviesUpdated": updated})
}
