package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loket-backend/internal/auth"
	"loket-backend/internal/config"
	"loket-backend/internal/handlers"
	"loket-backend/internal/health"
	apphttp "loket-backend/internal/http"
	"loket-backend/internal/middleware"
	"loket-backend/internal/models"
	"loket-backend/internal/monitoring"
	"loket-backend/internal/repositories/memory"
	"loket-backend/internal/services"
	"loket-backend/internal/timeutil"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *mux.Router
	store  *memory.Store
	owner  string
	loket  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	restore := timeutil.SetClock(func() time.Time {
		return time.Date(2024, 3, 1, 10, 0, 0, 0, timeutil.WIB)
	})
	t.Cleanup(restore)

	cfg := &config.Config{}
	cfg.JWT.Secret = "router-test"
	cfg.JWT.Issuer = "loket-backend"
	cfg.JWT.ExpirationHours = 1
	cfg.Accounting = config.DefaultAccounting()
	jwtManager := auth.NewJWTManager(cfg)

	store := memory.New()
	hub := monitoring.NewAlertHub(logrus.New())

	ledger := services.NewLedgerService(store.Ledger)
	orders := services.NewPaymentSyncService(store.Orders, nil)
	shifts := services.NewShiftReportService(store.Reports, ledger)
	ppob := services.NewPPOBService(store.PPOB)
	recon := services.NewReconciliationService(store.Reports, store.Ledger, cfg.Accounting)
	verification := services.NewVerificationService(store.Reports, store.Ledger, cfg.Accounting)
	dashboard := services.NewDashboardService(store.Ledger, store.Orders, cfg.Accounting)
	alerts := services.NewAlertService(store.Alerts, store.Ledger, store.Orders, store.Businesses, store.PPOB, store.Reports, cfg.Accounting)
	alerts.Publisher = hub

	router := apphttp.NewRouter(
		handlers.NewOrderHandler(orders),
		handlers.NewReportHandler(shifts, ppob),
		handlers.NewPPOBHandler(ppob),
		handlers.NewReconciliationHandler(recon, verification),
		handlers.NewDashboardHandler(dashboard),
		handlers.NewAlertHandler(alerts),
		handlers.NewTransactionHandler(ledger),
		handlers.NewHealthHandler(health.NewHealthChecker(nil)),
		hub,
		middleware.NewAuthMiddleware(jwtManager),
	)

	owner, err := jwtManager.GenerateToken("u-owner", "Bu Rina", auth.RoleOwner)
	require.NoError(t, err)
	loket, err := jwtManager.GenerateToken("u-loket", "Sari", auth.RoleLoket)
	require.NoError(t, err)

	return &testServer{router: router, store: store, owner: owner, loket: loket}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst), rec.Body.String())
}

const kasirBody = `{
	"business_id": "biz-1",
	"report_date": "2024-03-01",
	"setoran_pagi": 100000,
	"setoran_siang": 100000,
	"setoran_sore": 100000,
	"total_admin": 5000,
	"belanja_loket": 20000,
	"penerimaan_kas_kecil": 10000,
	"pengurangan_kas_kecil": 4000,
	"topup_transfers": [{"bank_name": "BRI", "amount": 30000}, {"bank_name": "BCA", "amount": 20000}]
}`

func TestOrderPaymentsReachDashboard(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/orders", s.loket,
		`{"business_id":"biz-1","customer_name":"Budi","service_type":"Fotokopi","total_amount":100000,"paid_amount":40000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.OrderSyncResult
	decodeBody(t, rec, &created)
	assert.True(t, created.AutoTransactionCreated)
	assert.Equal(t, models.PaymentPartial, created.PaymentStatus)

	rec = s.do(http.MethodPut, "/api/orders/"+created.Order.ID, s.loket, `{"paid_amount":100000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.OrderSyncResult
	decodeBody(t, rec, &updated)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	require.NotNil(t, updated.Transaction)
	assert.True(t, updated.Transaction.Amount.Equal(decimal.NewFromInt(60000)))

	rec = s.do(http.MethodGet, "/api/dashboard/financial?business_id=biz-1&start_date=2024-03-01&end_date=2024-03-01", s.owner, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var dash models.FinancialDashboard
	decodeBody(t, rec, &dash)
	assert.True(t, dash.FinancialSummary.TotalIncome.Equal(decimal.NewFromInt(100000)), dash.FinancialSummary.TotalIncome.String())
	assert.Equal(t, 1, dash.OrdersSummary.PaidOrders)

	rec = s.do(http.MethodGet, "/api/transactions?category=Order%20Payment", s.owner, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.LedgerEntry
	decodeBody(t, rec, &entries)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Sari", entries[0].CreatedBy)
}

func TestRolesAreEnforced(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/orders", "", "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/dashboard/financial", s.loket, "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/reports/kasir/abc/resync", s.loket, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/reports/loket", s.loket, "").Code)
}

func TestRequestErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{name: "malformed body", method: http.MethodPost, path: "/api/orders", body: `{`, wantCode: http.StatusBadRequest},
		{name: "missing customer", method: http.MethodPost, path: "/api/orders", body: `{"business_id":"biz-1","service_type":"Print"}`, wantCode: http.StatusBadRequest},
		{name: "shift out of range", method: http.MethodPost, path: "/api/reports/loket", body: `{"business_id":"biz-1","report_date":"2024-03-01","shift":4,"nama_petugas":"Sari","bank_balances":[{"bank_name":"BRI"}]}`, wantCode: http.StatusBadRequest},
		{name: "unknown order", method: http.MethodGet, path: "/api/orders/missing", wantCode: http.StatusNotFound},
		{name: "unknown report type", method: http.MethodPost, path: "/api/reports/weekly/abc/resync", wantCode: http.StatusBadRequest},
		{name: "missing report", method: http.MethodPost, path: "/api/reports/kasir/abc/resync", wantCode: http.StatusNotFound},
		{name: "reconcile without date", method: http.MethodGet, path: "/api/reconciliation/kasir", wantCode: http.StatusBadRequest},
		{name: "reconcile empty day", method: http.MethodGet, path: "/api/reconciliation/kasir?report_date=2024-03-01", wantCode: http.StatusNotFound},
		{name: "bad list date", method: http.MethodGet, path: "/api/transactions?start_date=01-03-2024", wantCode: http.StatusBadRequest},
		{name: "unknown category", method: http.MethodPost, path: "/api/transactions", body: `{"business_id":"biz-1","transaction_type":"income","category":"Bonus","amount":1000}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(tt.method, tt.path, s.owner, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			var body map[string]interface{}
			decodeBody(t, rec, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestPartialSyncCanBeResynced(t *testing.T) {
	s := newTestServer(t)
	s.store.LedgerFault = func(e *models.LedgerEntry) error {
		if e.Category == models.CategoryAdminFee {
			return errors.New("disk full")
		}
		return nil
	}

	rec := s.do(http.MethodPost, "/api/reports/kasir", s.owner, kasirBody)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var partial struct {
		Error    string `json:"error"`
		Partial  bool   `json:"partial"`
		ReportID string `json:"report_id"`
	}
	decodeBody(t, rec, &partial)
	assert.True(t, partial.Partial)
	require.NotEmpty(t, partial.ReportID)
	assert.NotContains(t, partial.Error, "disk full")

	s.store.LedgerFault = nil
	rec = s.do(http.MethodPost, "/api/reports/kasir/"+partial.ReportID+"/resync", s.owner, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result models.ShiftReportResult
	decodeBody(t, rec, &result)
	assert.Equal(t, 3, result.TransactionsCreated)

	rec = s.do(http.MethodGet, "/api/reconciliation/kasir?report_date=2024-03-01", s.owner, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var summary models.ReconciliationSummary
	decodeBody(t, rec, &summary)
	assert.Equal(t, 1, summary.TotalReports)
	assert.Equal(t, 1, summary.MatchedReports)

	// the slot is taken even though the first sync was partial
	rec = s.do(http.MethodPost, "/api/reports/kasir", s.owner, kasirBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAlertCheckAndResolve(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/alerts/check", s.owner, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var check models.AlertCheckResult
	decodeBody(t, rec, &check)
	require.Equal(t, 1, check.AlertsGenerated)
	id := check.Alerts[0].ID

	rec = s.do(http.MethodPut, "/api/alerts/"+id+"/resolve", s.owner, `{"notes":"cash topped up"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resolved models.Alert
	decodeBody(t, rec, &resolved)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, "Bu Rina", *resolved.ResolvedBy)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPut, "/api/alerts/"+id+"/resolve", s.owner, "").Code)

	rec = s.do(http.MethodGet, "/api/alerts?is_resolved=false", s.owner, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.AlertList
	decodeBody(t, rec, &list)
	assert.Equal(t, 0, list.Total)
}

func TestOpsEndpoints(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health/ready", "", "").Code)

	rec := s.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
