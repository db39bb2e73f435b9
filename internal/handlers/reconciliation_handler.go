package handlers

import (
	"net/http"

	"loket-backend/internal/apperror"
	"loket-backend/internal/services"
	"loket-backend/pkg/utils"
)

type ReconciliationHandler struct {
	Recon        *services.ReconciliationService
	Verification *services.VerificationService
}

func NewReconciliationHandler(recon *services.ReconciliationService, verification *services.VerificationService) *ReconciliationHandler {
	return &ReconciliationHandler{Recon: recon, Verification: verification}
}

// GET /api/reconciliation/kasir?report_date=&business_id=
func (h *ReconciliationHandler) Kasir(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("report_date") == "" {
		writeError(w, "Kasir", apperror.InvalidArgument("report_date is required"))
		return
	}

	summary, err := h.Recon.ReconcileKasir(r.Context(), q.Get("report_date"), q.Get("business_id"))
	if err != nil {
		writeError(w, "Kasir", err)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

// GET /api/reconciliation/loket?report_date=&business_id=
func (h *ReconciliationHandler) Loket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("report_date") == "" {
		writeError(w, "Loket", apperror.InvalidArgument("report_date is required"))
		return
	}

	summary, err := h.Recon.ReconcileLoket(r.Context(), q.Get("report_date"), q.Get("business_id"))
	if err != nil {
		writeError(w, "Loket", err)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

// GET /api/reconciliation/verification-summary?start_date=&end_date=
func (h *ReconciliationHandler) VerificationSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	summary, err := h.Verification.Summary(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, "VerificationSummary", err)
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}
