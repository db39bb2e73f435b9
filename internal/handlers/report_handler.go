package handlers

import (
	"net/http"

	"loket-backend/internal/apperror"
	"loket-backend/internal/middleware"
	"loket-backend/internal/models"
	"loket-backend/internal/services"
	"loket-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// ReportHandler serves daily shift reports. PPOB reports share the resync
// route, so the PPOB service is held here as well.
type ReportHandler struct {
	Shifts *services.ShiftReportService
	PPOB   *services.PPOBService
}

func NewReportHandler(shifts *services.ShiftReportService, ppob *services.PPOBService) *ReportHandler {
	return &ReportHandler{Shifts: shifts, PPOB: ppob}
}

// POST /api/reports/loket
func (h *ReportHandler) SubmitLoket(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLoketReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "SubmitLoket", err)
		return
	}

	result, err := h.Shifts.SubmitLoket(r.Context(), &req, middleware.Actor(r.Context()))
	if err != nil {
		writeError(w, "SubmitLoket", err)
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

// POST /api/reports/kasir
func (h *ReportHandler) SubmitKasir(w http.ResponseWriter, r *http.Request) {
	var req models.CreateKasirReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "SubmitKasir", err)
		return
	}

	result, err := h.Shifts.SubmitKasir(r.Context(), &req, middleware.Actor(r.Context()))
	if err != nil {
		writeError(w, "SubmitKasir", err)
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

func reportFilter(r *http.Request) models.ReportFilter {
	q := r.URL.Query()
	return models.ReportFilter{
		BusinessID: q.Get("business_id"),
		ReportDate: q.Get("report_date"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}
}

// GET /api/reports/loket
func (h *ReportHandler) ListLoket(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Shifts.ListLoket(r.Context(), reportFilter(r))
	if err != nil {
		writeError(w, "ListLoket", err)
		return
	}
	if reports == nil {
		reports = []models.LoketReport{}
	}
	utils.JSON(w, http.StatusOK, reports)
}

// GET /api/reports/kasir
func (h *ReportHandler) ListKasir(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Shifts.ListKasir(r.Context(), reportFilter(r))
	if err != nil {
		writeError(w, "ListKasir", err)
		return
	}
	if reports == nil {
		reports = []models.KasirReport{}
	}
	utils.JSON(w, http.StatusOK, reports)
}

// POST /api/reports/{type}/{id}/resync
func (h *ReportHandler) Resync(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportType := models.ReportType(vars["type"])

	var (
		result *models.ShiftReportResult
		err    error
	)
	switch reportType {
	case models.ReportLoket, models.ReportKasir:
		result, err = h.Shifts.Resync(r.Context(), reportType, vars["id"])
	case models.ReportPPOBLoket, models.ReportPPOBKasir:
		result, err = h.PPOB.Resync(r.Context(), reportType, vars["id"])
	default:
		err = apperror.InvalidArgument("unknown report type %q", reportType)
	}
	if err != nil {
		writeError(w, "Resync", err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}
