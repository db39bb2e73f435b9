package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/metrics"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AlertService evaluates operational conditions on demand and manages the
// resulting alerts. A condition that already has an open alert for the
// same day does not raise another one.
type AlertService struct {
	Alerts     AlertStore
	Ledger     LedgerStore
	Orders     OrderStore
	Businesses BusinessStore
	PPOB       PPOBStore
	Reports    ShiftReportStore
	Publisher  AlertPublisher
	Cfg        config.Accounting
}

func NewAlertService(alerts AlertStore, ledger LedgerStore, orders OrderStore, businesses BusinessStore, ppob PPOBStore, reports ShiftReportStore, cfg config.Accounting) *AlertService {
	return &AlertService{
		Alerts:     alerts,
		Ledger:     ledger,
		Orders:     orders,
		Businesses: businesses,
		PPOB:       ppob,
		Reports:    reports,
		Cfg:        withAlertDefaults(cfg),
	}
}

func withAlertDefaults(cfg config.Accounting) config.Accounting {
	d := config.DefaultAccounting()
	if cfg.LowCashFloor <= 0 {
		cfg.LowCashFloor = d.LowCashFloor
	}
	if cfg.PendingOrderDays <= 0 {
		cfg.PendingOrderDays = d.PendingOrderDays
	}
	if cfg.MaxPendingAlerts <= 0 {
		cfg.MaxPendingAlerts = d.MaxPendingAlerts
	}
	if cfg.HighExpenseRatio <= 0 {
		cfg.HighExpenseRatio = d.HighExpenseRatio
	}
	if cfg.ReceivableAgingDays <= 0 {
		cfg.ReceivableAgingDays = d.ReceivableAgingDays
	}
	if cfg.DashboardMaxRecords <= 0 {
		cfg.DashboardMaxRecords = d.DashboardMaxRecords
	}
	return cfg
}

// CheckAlerts runs every check and stores the alerts that are new.
func (s *AlertService) CheckAlerts(ctx context.Context) (*models.AlertCheckResult, error) {
	now := timeutil.Now()

	businesses, err := s.Businesses.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	checks := []func(context.Context, time.Time, []models.Business) ([]models.Alert, error){
		s.checkLowCash,
		s.checkPendingOrders,
		s.checkHighExpenses,
		s.checkAgingReceivables,
		s.checkMissingReports,
	}

	var candidates []models.Alert
	for _, check := range checks {
		alerts, err := check(ctx, now, businesses)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, alerts...)
	}

	result := &models.AlertCheckResult{Alerts: []models.Alert{}}
	for i := range candidates {
		a := &candidates[i]
		created, err := s.Alerts.CreateIfAbsent(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s alert: %w", a.AlertType, err)
		}
		if !created {
			continue
		}
		metrics.AlertsGenerated.WithLabelValues(string(a.AlertType)).Inc()
		result.Alerts = append(result.Alerts, *a)
	}
	result.AlertsGenerated = len(result.Alerts)

	config.GetLogger().WithFields(logrus.Fields{
		"module":     "alerts",
		"candidates": len(candidates),
		"generated":  result.AlertsGenerated,
	}).Info("alert check completed")

	if s.Publisher != nil && len(result.Alerts) > 0 {
		s.Publisher.PublishAlerts(result.Alerts)
	}
	return result, nil
}

func (s *AlertService) todayEntries(ctx context.Context, now time.Time, businessID string) ([]models.LedgerEntry, error) {
	start := timeutil.StartOfDay(now)
	end := timeutil.EndOfDay(now)
	return s.Ledger.List(ctx, models.LedgerFilter{
		BusinessID: businessID,
		StartDate:  &start,
		EndDate:    &end,
		Limit:      s.Cfg.DashboardMaxRecords,
	})
}

func cashPosition(entries []models.LedgerEntry) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.IsIncome() {
			income = income.Add(e.Amount)
		} else if e.IsExpense() {
			expense = expense.Add(e.Amount)
		}
	}
	return income, expense
}

func (s *AlertService) checkLowCash(ctx context.Context, now time.Time, _ []models.Business) ([]models.Alert, error) {
	entries, err := s.todayEntries(ctx, now, "")
	if err != nil {
		return nil, err
	}
	income, expense := cashPosition(entries)
	position := income.Sub(expense)
	floor := decimal.NewFromFloat(s.Cfg.LowCashFloor)
	if !position.LessThan(floor) {
		return nil, nil
	}

	a := newAlert(models.AlertLowCash, models.SeverityWarning, "Low cash position",
		fmt.Sprintf("Today's cash position is Rp %s, below the Rp %s floor", position.StringFixed(0), floor.StringFixed(0)),
		now)
	a.ThresholdValue = floor
	a.CurrentValue = position
	a.DedupeKey = DedupeKey(a.AlertType, "", "", now)
	return []models.Alert{a}, nil
}

func (s *AlertService) checkPendingOrders(ctx context.Context, now time.Time, _ []models.Business) ([]models.Alert, error) {
	cutoff := now.AddDate(0, 0, -s.Cfg.PendingOrderDays)
	orders, err := s.Orders.List(ctx, models.OrderFilter{
		Status:        models.OrderPending,
		CreatedBefore: &cutoff,
		Limit:         s.Cfg.MaxPendingAlerts,
	})
	if err != nil {
		return nil, err
	}

	var alerts []models.Alert
	for i, o := range orders {
		if i >= s.Cfg.MaxPendingAlerts {
			break
		}
		a := newAlert(models.AlertPendingOrders, models.SeverityWarning, "Order pending too long",
			fmt.Sprintf("Order #%s has been pending since %s", o.OrderNumber, timeutil.ToWIB(o.CreatedAt).Format(timeutil.DateTimeLayout)),
			now)
		a.BusinessID = strPtr(o.BusinessID)
		a.RelatedID = strPtr(o.ID)
		a.RelatedType = strPtr("order")
		a.ActionURL = "/orders?id=" + o.ID
		a.ThresholdValue = decimal.NewFromInt(int64(s.Cfg.PendingOrderDays))
		a.CurrentValue = decimal.NewFromFloat(now.Sub(o.CreatedAt).Hours() / 24).Round(1)
		a.DedupeKey = DedupeKey(a.AlertType, o.BusinessID, o.ID, now)
		alerts = append(alerts, a)
	}
	return alerts, nil
}

func (s *AlertService) checkHighExpenses(ctx context.Context, now time.Time, businesses []models.Business) ([]models.Alert, error) {
	ratio := decimal.NewFromFloat(s.Cfg.HighExpenseRatio)

	var alerts []models.Alert
	for _, b := range businesses {
		entries, err := s.todayEntries(ctx, now, b.ID)
		if err != nil {
			return nil, err
		}
		income, expense := cashPosition(entries)
		if !income.IsPositive() || !expense.Div(income).GreaterThan(ratio) {
			continue
		}

		pct := models.Percentage(expense, income)
		a := newAlert(models.AlertHighExpenses, models.SeverityWarning, "High expense ratio",
			fmt.Sprintf("%s: expenses are %s%% of income today", b.Name, pct.StringFixed(1)),
			now)
		a.BusinessID = strPtr(b.ID)
		a.ThresholdValue = ratio.Mul(decimal.NewFromInt(100))
		a.CurrentValue = pct
		a.DedupeKey = DedupeKey(a.AlertType, b.ID, "", now)
		alerts = append(alerts, a)
	}
	return alerts, nil
}

func (s *AlertService) checkAgingReceivables(ctx context.Context, now time.Time, businesses []models.Business) ([]models.Alert, error) {
	cutoff := timeutil.FormatDate(now.AddDate(0, 0, -s.Cfg.ReceivableAgingDays))
	shifts, err := s.PPOB.ListShifts(ctx, models.PPOBShiftFilter{
		StatusSetoran: models.StatusBelumDisetor,
		TanggalBefore: cutoff,
	})
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(businesses))
	for _, b := range businesses {
		names[b.ID] = b.Name
	}

	outstanding := map[string]decimal.Decimal{}
	counts := map[string]int{}
	var order []string
	for _, sh := range shifts {
		if _, seen := outstanding[sh.BusinessID]; !seen {
			order = append(order, sh.BusinessID)
		}
		outstanding[sh.BusinessID] = outstanding[sh.BusinessID].Add(sh.TotalSisaSetoran)
		counts[sh.BusinessID]++
	}

	var alerts []models.Alert
	for _, bizID := range order {
		name := names[bizID]
		if name == "" {
			name = bizID
		}
		a := newAlert(models.AlertAgingReceivables, models.SeverityWarning, "Unsettled PPOB shifts",
			fmt.Sprintf("%s: %d PPOB shift(s) older than %d days not yet settled, Rp %s outstanding",
				name, counts[bizID], s.Cfg.ReceivableAgingDays, outstanding[bizID].StringFixed(0)),
			now)
		a.BusinessID = strPtr(bizID)
		a.RelatedType = strPtr("ppob_shift")
		a.ThresholdValue = decimal.NewFromInt(int64(s.Cfg.ReceivableAgingDays))
		a.CurrentValue = outstanding[bizID]
		a.DedupeKey = DedupeKey(a.AlertType, bizID, "", now)
		alerts = append(alerts, a)
	}
	return alerts, nil
}

func (s *AlertService) checkMissingReports(ctx context.Context, now time.Time, businesses []models.Business) ([]models.Alert, error) {
	yesterday := timeutil.FormatDate(now.AddDate(0, 0, -1))
	reports, err := s.Reports.ListKasir(ctx, models.ReportFilter{ReportDate: yesterday})
	if err != nil {
		return nil, err
	}
	reported := make(map[string]bool, len(reports))
	for _, r := range reports {
		reported[r.BusinessID] = true
	}

	var alerts []models.Alert
	for _, b := range businesses {
		if reported[b.ID] {
			continue
		}
		a := newAlert(models.AlertMissingReports, models.SeverityInfo, "Missing kasir report",
			fmt.Sprintf("%s has no kasir report for %s", b.Name, yesterday), now)
		a.BusinessID = strPtr(b.ID)
		a.RelatedType = strPtr("kasir_report")
		a.DedupeKey = DedupeKey(a.AlertType, b.ID, yesterday, now)
		alerts = append(alerts, a)
	}
	return alerts, nil
}

func (s *AlertService) List(ctx context.Context, filter models.AlertFilter) (*models.AlertList, error) {
	alerts, err := s.Alerts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	unresolved, err := s.Alerts.CountUnresolved(ctx, filter.BusinessID)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return &models.AlertList{Alerts: alerts, Total: len(alerts), UnresolvedCount: unresolved}, nil
}

// Resolve closes an open alert, freeing its dedupe key.
func (s *AlertService) Resolve(ctx context.Context, id, resolvedBy, notes string) (*models.Alert, error) {
	alert, err := s.Alerts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, apperror.NotFound("alert %s not found", id)
	}
	if alert.IsResolved {
		return nil, apperror.Conflict("alert %s is already resolved", id)
	}

	ok, err := s.Alerts.Resolve(ctx, id, resolvedBy, notes, timeutil.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.Conflict("alert %s is already resolved", id)
	}
	return s.Alerts.Get(ctx, id)
}

// DedupeKey identifies an alert condition for one WIB day.
func DedupeKey(alertType models.AlertType, businessID, relatedID string, day time.Time) string {
	return strings.Join([]string{string(alertType), businessID, relatedID, timeutil.FormatDate(day)}, "|")
}

func newAlert(alertType models.AlertType, severity models.AlertSeverity, title, message string, now time.Time) models.Alert {
	return models.Alert{
		ID:             uuid.NewString(),
		AlertType:      alertType,
		Severity:       severity,
		Title:          title,
		Message:        message,
		ThresholdValue: decimal.Zero,
		CurrentValue:   decimal.Zero,
		TriggeredAt:    now,
	}
}

func strPtr(s string) *string {
	return &s
}
