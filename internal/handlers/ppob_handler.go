package handlers

import (
	"net/http"

	"loket-backend/internal/middleware"
	"loket-backend/internal/models"
	"loket-backend/internal/services"
	"loket-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PPOBHandler struct {
	Service *services.PPOBService
}

func NewPPOBHandler(s *services.PPOBService) *PPOBHandler {
	return &PPOBHandler{Service: s}
}

// POST /api/ppob/shifts
func (h *PPOBHandler) SubmitShift(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePPOBShiftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "SubmitShift", err)
		return
	}

	result, err := h.Service.SubmitShift(r.Context(), &req, middleware.Actor(r.Context()))
	if err != nil {
		writeError(w, "SubmitShift", err)
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

// POST /api/ppob/kasir
func (h *PPOBHandler) SubmitKasir(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePPOBKasirRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "SubmitKasir", err)
		return
	}

	result, err := h.Service.SubmitKasir(r.Context(), &req, middleware.Actor(r.Context()))
	if err != nil {
		writeError(w, "SubmitKasir", err)
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

// GET /api/ppob/shifts?business_id=&tanggal=&status_setoran=
func (h *PPOBHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	shifts, err := h.Service.ListShifts(r.Context(), models.PPOBShiftFilter{
		BusinessID:    q.Get("business_id"),
		Tanggal:       q.Get("tanggal"),
		StatusSetoran: q.Get("status_setoran"),
	})
	if err != nil {
		writeError(w, "ListShifts", err)
		return
	}
	if shifts == nil {
		shifts = []models.PPOBShiftReport{}
	}
	utils.JSON(w, http.StatusOK, shifts)
}

func journalFilter(r *http.Request) (models.JournalFilter, error) {
	q := r.URL.Query()
	filter := models.JournalFilter{
		BusinessID:    q.Get("business_id"),
		Account:       mux.Vars(r)["account"],
		ReferenceType: q.Get("reference_type"),
		ReferenceID:   q.Get("reference_id"),
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
	}
	var err error
	filter.Limit, err = intParam(r, "limit")
	return filter, err
}

// GET /api/ppob/journal
func (h *PPOBHandler) Journal(w http.ResponseWriter, r *http.Request) {
	filter, err := journalFilter(r)
	if err != nil {
		writeError(w, "Journal", err)
		return
	}

	lines, err := h.Service.Journal(r.Context(), filter)
	if err != nil {
		writeError(w, "Journal", err)
		return
	}
	if lines == nil {
		lines = []models.JournalLine{}
	}
	utils.JSON(w, http.StatusOK, lines)
}

// GET /api/ppob/ledger/{account}
func (h *PPOBHandler) AccountLedger(w http.ResponseWriter, r *http.Request) {
	filter, err := journalFilter(r)
	if err != nil {
		writeError(w, "AccountLedger", err)
		return
	}

	ledger, err := h.Service.AccountLedger(r.Context(), filter)
	if err != nil {
		writeError(w, "AccountLedger", err)
		return
	}
	utils.JSON(w, http.StatusOK, ledger)
}

// GET /api/ppob/balances
func (h *PPOBHandler) Balances(w http.ResponseWriter, r *http.Request) {
	filter, err := journalFilter(r)
	if err != nil {
		writeError(w, "Balances", err)
		return
	}

	balances, err := h.Service.Balances(r.Context(), filter)
	if err != nil {
		writeError(w, "Balances", err)
		return
	}
	if balances == nil {
		balances = []models.AccountBalance{}
	}
	utils.JSON(w, http.StatusOK, balances)
}

// GET /api/ppob/profit-loss
func (h *PPOBHandler) ProfitLoss(w http.ResponseWriter, r *http.Request) {
	filter, err := journalFilter(r)
	if err != nil {
		writeError(w, "ProfitLoss", err)
		return
	}

	pl, err := h.Service.ProfitLoss(r.Context(), filter)
	if err != nil {
		writeError(w, "ProfitLoss", err)
		return
	}
	utils.JSON(w, http.StatusOK, pl)
}
