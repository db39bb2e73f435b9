package handlers

import (
	"net/http"
	"strconv"

	"loket-backend/internal/apperror"
	"loket-backend/internal/middleware"
	"loket-backend/internal/models"
	"loket-backend/internal/services"
	"loket-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type AlertHandler struct {
	Service *services.AlertService
}

func NewAlertHandler(s *services.AlertService) *AlertHandler {
	return &AlertHandler{Service: s}
}

// POST /api/alerts/check
func (h *AlertHandler) Check(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.CheckAlerts(r.Context())
	if err != nil {
		writeError(w, "Check", err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// GET /api/alerts?severity=&is_resolved=&business_id=&limit=
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.AlertFilter{
		Severity:   models.AlertSeverity(q.Get("severity")),
		BusinessID: q.Get("business_id"),
	}
	if v := q.Get("is_resolved"); v != "" {
		resolved, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, "List", apperror.InvalidArgument("invalid is_resolved %q", v))
			return
		}
		filter.IsResolved = &resolved
	}
	var err error
	if filter.Limit, err = intParam(r, "limit"); err != nil {
		writeError(w, "List", err)
		return
	}

	list, err := h.Service.List(r.Context(), filter)
	if err != nil {
		writeError(w, "List", err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

// PUT /api/alerts/{id}/resolve
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req models.ResolveAlertRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, "Resolve", err)
			return
		}
	}

	alert, err := h.Service.Resolve(r.Context(), mux.Vars(r)["id"], middleware.Actor(r.Context()), req.Notes)
	if err != nil {
		writeError(w, "Resolve", err)
		return
	}
	utils.JSON(w, http.StatusOK, alert)
}
