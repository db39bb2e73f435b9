package handlers

import (
	"net/http"
	"strings"

	"loket-backend/internal/middleware"
	"loket-backend/internal/models"
	"loket-backend/internal/services"
	"loket-backend/pkg/utils"
)

// TransactionHandler exposes the ledger directly. Posted entries are never
// edited; mistakes are corrected with an offsetting entry.
type TransactionHandler struct {
	Ledger *services.LedgerService
}

func NewTransactionHandler(ledger *services.LedgerService) *TransactionHandler {
	return &TransactionHandler{Ledger: ledger}
}

// POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLedgerEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "CreateTransaction", err)
		return
	}

	entry, err := h.Ledger.CreateManual(r.Context(), &req, middleware.Actor(r.Context()))
	if err != nil {
		writeError(w, "CreateTransaction", err)
		return
	}
	utils.JSON(w, http.StatusCreated, entry)
}

// GET /api/transactions?business_id=&transaction_type=&category=a,b&reference_number=&start_date=&end_date=&limit=&offset=
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.LedgerFilter{
		BusinessID:      q.Get("business_id"),
		TransactionType: models.TransactionType(q.Get("transaction_type")),
		ReferenceNumber: q.Get("reference_number"),
	}
	if v := q.Get("category"); v != "" {
		for _, c := range strings.Split(v, ",") {
			filter.Categories = append(filter.Categories, models.Category(strings.TrimSpace(c)))
		}
	}

	var err error
	if filter.StartDate, err = dateParam(r, "start_date", false); err != nil {
		writeError(w, "ListTransactions", err)
		return
	}
	if filter.EndDate, err = dateParam(r, "end_date", true); err != nil {
		writeError(w, "ListTransactions", err)
		return
	}
	if filter.Limit, err = intParam(r, "limit"); err != nil {
		writeError(w, "ListTransactions", err)
		return
	}
	if filter.Offset, err = intParam(r, "offset"); err != nil {
		writeError(w, "ListTransactions", err)
		return
	}

	entries, err := h.Ledger.List(r.Context(), filter)
	if err != nil {
		writeError(w, "ListTransactions", err)
		return
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	utils.JSON(w, http.StatusOK, entries)
}
