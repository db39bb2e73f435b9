package handlers

import (
	"net/http"

	"loket-backend/internal/middleware"
	"loket-backend/internal/models"
	"loket-backend/internal/services"
	"loket-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	Service *services.PaymentSyncService
}

func NewOrderHandler(s *services.PaymentSyncService) *OrderHandler {
	return &OrderHandler{Service: s}
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "CreateOrder", err)
		return
	}

	result, err := h.Service.CreateOrder(r.Context(), &req, middleware.Actor(r.Context()))
	if err != nil {
		writeError(w, "CreateOrder", err)
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

// PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "UpdateOrder", err)
		return
	}

	result, err := h.Service.UpdateOrder(r.Context(), mux.Vars(r)["id"], &req, middleware.Actor(r.Context()))
	if err != nil {
		writeError(w, "UpdateOrder", err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "GetOrder", err)
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

// GET /api/orders?business_id=&status=&start_date=&end_date=&limit=
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.OrderFilter{
		BusinessID: q.Get("business_id"),
		Status:     models.OrderStatus(q.Get("status")),
	}

	var err error
	if filter.StartDate, err = dateParam(r, "start_date", false); err != nil {
		writeError(w, "ListOrders", err)
		return
	}
	if filter.EndDate, err = dateParam(r, "end_date", true); err != nil {
		writeError(w, "ListOrders", err)
		return
	}
	if filter.Limit, err = intParam(r, "limit"); err != nil {
		writeError(w, "ListOrders", err)
		return
	}

	orders, err := h.Service.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, "ListOrders", err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	utils.JSON(w, http.StatusOK, orders)
}
