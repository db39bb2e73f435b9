package handlers

import (
	"net/http"

	"loket-backend/internal/services"
	"loket-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// GET /api/dashboard/financial?business_id=&start_date=&end_date=
func (h *DashboardHandler) Financial(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dash, err := h.Service.FinancialDashboard(r.Context(), q.Get("business_id"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, "Financial", err)
		return
	}
	utils.JSON(w, http.StatusOK, dash)
}
