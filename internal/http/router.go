package http

import (
	"net/http"

	"loket-backend/internal/auth"
	"loket-backend/internal/handlers"
	"loket-backend/internal/middleware"
	"loket-backend/internal/monitoring"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	orderHandler *handlers.OrderHandler,
	reportHandler *handlers.ReportHandler,
	ppobHandler *handlers.PPOBHandler,
	reconciliationHandler *handlers.ReconciliationHandler,
	dashboardHandler *handlers.DashboardHandler,
	alertHandler *handlers.AlertHandler,
	transactionHandler *handlers.TransactionHandler,
	healthHandler *handlers.HealthHandler,
	alertHub *monitoring.AlertHub,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// Counter staff submit; owners and admins read the books.
	staff := authMiddleware.RequireRole(auth.RoleLoket, auth.RoleKasir, auth.RoleAdmin, auth.RoleOwner)
	managers := authMiddleware.RequireRole(auth.RoleAdmin, auth.RoleOwner)

	// Orders - payment sync
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(staff)
	ordersAPI.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.UpdateOrder).Methods("PUT")

	// Shift reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(staff)
	reportsAPI.HandleFunc("/loket", reportHandler.SubmitLoket).Methods("POST")
	reportsAPI.HandleFunc("/kasir", reportHandler.SubmitKasir).Methods("POST")
	reportsAPI.HandleFunc("/loket", reportHandler.ListLoket).Methods("GET")
	reportsAPI.HandleFunc("/kasir", reportHandler.ListKasir).Methods("GET")
	reportsAPI.Handle("/{type}/{id}/resync", managers(http.HandlerFunc(reportHandler.Resync))).Methods("POST")

	// PPOB
	ppobAPI := r.PathPrefix("/api/ppob").Subrouter()
	ppobAPI.Use(staff)
	ppobAPI.HandleFunc("/shifts", ppobHandler.SubmitShift).Methods("POST")
	ppobAPI.HandleFunc("/kasir", ppobHandler.SubmitKasir).Methods("POST")
	ppobAPI.HandleFunc("/shifts", ppobHandler.ListShifts).Methods("GET")
	ppobAPI.Handle("/journal", managers(http.HandlerFunc(ppobHandler.Journal))).Methods("GET")
	ppobAPI.Handle("/ledger/{account}", managers(http.HandlerFunc(ppobHandler.AccountLedger))).Methods("GET")
	ppobAPI.Handle("/balances", managers(http.HandlerFunc(ppobHandler.Balances))).Methods("GET")
	ppobAPI.Handle("/profit-loss", managers(http.HandlerFunc(ppobHandler.ProfitLoss))).Methods("GET")

	// Reconciliation
	reconAPI := r.PathPrefix("/api/reconciliation").Subrouter()
	reconAPI.Use(managers)
	reconAPI.HandleFunc("/kasir", reconciliationHandler.Kasir).Methods("GET")
	reconAPI.HandleFunc("/loket", reconciliationHandler.Loket).Methods("GET")
	reconAPI.HandleFunc("/verification-summary", reconciliationHandler.VerificationSummary).Methods("GET")

	// Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(managers)
	dashboardAPI.HandleFunc("/financial", dashboardHandler.Financial).Methods("GET")

	// Alerts
	alertsAPI := r.PathPrefix("/api/alerts").Subrouter()
	alertsAPI.Use(managers)
	alertsAPI.HandleFunc("/check", alertHandler.Check).Methods("POST")
	alertsAPI.HandleFunc("/stream", alertHub.HandleWebSocket).Methods("GET")
	alertsAPI.HandleFunc("", alertHandler.List).Methods("GET")
	alertsAPI.HandleFunc("/{id}/resolve", alertHandler.Resolve).Methods("PUT")

	// Manual ledger entries
	transactionsAPI := r.PathPrefix("/api/transactions").Subrouter()
	transactionsAPI.Use(managers)
	transactionsAPI.HandleFunc("", transactionHandler.Create).Methods("POST")
	transactionsAPI.HandleFunc("", transactionHandler.List).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
