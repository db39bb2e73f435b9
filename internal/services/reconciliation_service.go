package services

import (
	"context"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/metrics"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Tolerances in rupiah. A difference equal to the tolerance still matches.
type Tolerances struct {
	Deposit decimal.Decimal
	Line    decimal.Decimal
	Bank    decimal.Decimal
}

// DefaultTolerances: 1000 on deposits, 100 on single lines and bank channels.
var DefaultTolerances = TolerancesFrom(config.DefaultAccounting())

// TolerancesFrom reads the configured tolerances. Values that are not
// positive fall back to the defaults.
func TolerancesFrom(acc config.Accounting) Tolerances {
	d := config.DefaultAccounting()
	pick := func(v, def float64) decimal.Decimal {
		if v <= 0 {
			v = def
		}
		return decimal.NewFromFloat(v)
	}
	return Tolerances{
		Deposit: pick(acc.DepositTolerance, d.DepositTolerance),
		Line:    pick(acc.LineTolerance, d.LineTolerance),
		Bank:    pick(acc.BankTolerance, d.BankTolerance),
	}
}

// ReconciliationService compares what shifts declared against what the
// ledger recorded on the same day.
type ReconciliationService struct {
	Reports    ShiftReportStore
	Ledger     LedgerStore
	MaxRecords int
	Tolerances Tolerances
}

func NewReconciliationService(reports ShiftReportStore, ledger LedgerStore, acc config.Accounting) *ReconciliationService {
	maxRecords := acc.ReconcileMaxRecords
	if maxRecords <= 0 {
		maxRecords = config.DefaultAccounting().ReconcileMaxRecords
	}
	return &ReconciliationService{
		Reports:    reports,
		Ledger:     ledger,
		MaxRecords: maxRecords,
		Tolerances: TolerancesFrom(acc),
	}
}

func (s *ReconciliationService) ReconcileKasir(ctx context.Context, reportDate, businessID string) (*models.ReconciliationSummary, error) {
	day, err := timeutil.ParseDate(reportDate)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid report_date %q, expected YYYY-MM-DD", reportDate)
	}

	reports, err := s.Reports.ListKasir(ctx, models.ReportFilter{BusinessID: businessID, ReportDate: reportDate})
	if err != nil {
		return nil, err
	}
	entries, err := s.entriesForDay(ctx, day, businessID, models.KasirCategories)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 && len(entries) == 0 {
		return nil, apperror.NotFound("no kasir reports or transactions for %s", reportDate)
	}

	byBusiness := groupByBusiness(entries)
	results := make([]models.ReconciliationResult, 0, len(reports))
	for i := range reports {
		results = append(results, s.Tolerances.ReconcileKasirReport(&reports[i], byBusiness[reports[i].BusinessID]))
	}
	return summarize(reportDate, models.ReportKasir, results), nil
}

func (s *ReconciliationService) ReconcileLoket(ctx context.Context, reportDate, businessID string) (*models.ReconciliationSummary, error) {
	day, err := timeutil.ParseDate(reportDate)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid report_date %q, expected YYYY-MM-DD", reportDate)
	}

	reports, err := s.Reports.ListLoket(ctx, models.ReportFilter{BusinessID: businessID, ReportDate: reportDate})
	if err != nil {
		return nil, err
	}
	entries, err := s.entriesForDay(ctx, day, businessID, models.LoketCategories)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 && len(entries) == 0 {
		return nil, apperror.NotFound("no loket reports or transactions for %s", reportDate)
	}

	byBusiness := groupByBusiness(entries)
	results := make([]models.ReconciliationResult, 0, len(reports))
	for i := range reports {
		results = append(results, s.Tolerances.ReconcileLoketReport(&reports[i], byBusiness[reports[i].BusinessID]))
	}
	return summarize(reportDate, models.ReportLoket, results), nil
}

func (s *ReconciliationService) entriesForDay(ctx context.Context, day time.Time, businessID string, categories []models.Category) ([]models.LedgerEntry, error) {
	start := timeutil.StartOfDay(day)
	end := timeutil.EndOfDay(day)
	entries, err := s.Ledger.List(ctx, models.LedgerFilter{
		BusinessID: businessID,
		Categories: categories,
		StartDate:  &start,
		EndDate:    &end,
		Limit:      s.MaxRecords,
	})
	if err != nil {
		return nil, err
	}
	if len(entries) >= s.MaxRecords {
		config.GetLogger().WithFields(logrus.Fields{
			"module": "reconciliation",
			"date":   timeutil.FormatDate(day),
			"limit":  s.MaxRecords,
		}).Warn("ledger scan hit the row cap; actual totals may be understated")
	}
	return entries, nil
}

// ReconcileKasirReport compares one kasir report with the entries of its
// business on the report date, using the default tolerances.
func ReconcileKasirReport(r *models.KasirReport, entries []models.LedgerEntry) models.ReconciliationResult {
	return DefaultTolerances.ReconcileKasirReport(r, entries)
}

// ReconcileLoketReport applies DefaultTolerances.
func ReconcileLoketReport(r *models.LoketReport, entries []models.LedgerEntry) models.ReconciliationResult {
	return DefaultTolerances.ReconcileLoketReport(r, entries)
}

// CheckBank applies DefaultTolerances.
func CheckBank(b models.BankBalance) models.BankCheck {
	return DefaultTolerances.CheckBank(b)
}

func (t Tolerances) ReconcileKasirReport(r *models.KasirReport, entries []models.LedgerEntry) models.ReconciliationResult {
	actualSetoran := decimal.Zero
	actualAdmin := decimal.Zero
	actualBelanja := decimal.Zero
	actualTotal := decimal.Zero

	for _, e := range entries {
		switch {
		case e.Category == models.CategorySetoranKasir:
			actualSetoran = actualSetoran.Add(e.Amount)
		case e.Category == models.CategoryAdminFee:
			actualAdmin = actualAdmin.Add(e.Amount)
		case e.Category.IsBelanja():
			actualBelanja = actualBelanja.Add(e.Amount)
		}
		if e.IsIncome() {
			actualTotal = actualTotal.Add(e.Amount)
		} else if e.IsExpense() {
			actualTotal = actualTotal.Sub(e.Amount)
		}
	}

	reportedTotal := r.ReportedTotal()
	result := models.ReconciliationResult{
		ReportID:        r.ID,
		ReportType:      models.ReportKasir,
		ReportDate:      r.ReportDate,
		BusinessID:      r.BusinessID,
		ReportedTotal:   reportedTotal,
		ActualTotal:     actualTotal,
		TotalDifference: reportedTotal.Sub(actualTotal),
		Breakdown:       map[string]models.CategoryComparison{},
		Discrepancies:   []models.Discrepancy{},
		CreatedBy:       r.CreatedBy,
		Notes:           r.Notes,
	}

	compareLine(&result, "setoran_kasir", string(models.CategorySetoranKasir), r.TotalSetoran(), actualSetoran, t.Deposit)
	compareLine(&result, "admin_fee", string(models.CategoryAdminFee), r.TotalAdmin, actualAdmin, t.Line)
	compareLine(&result, "belanja_loket", string(models.CategoryBelanjaLoket), r.BelanjaLoket, actualBelanja, t.Line)

	finish(&result, true)
	return result
}

// ReconcileLoketReport compares one loket report with the Setoran Loket
// entries carrying its shift reference and checks every bank channel.
func (t Tolerances) ReconcileLoketReport(r *models.LoketReport, entries []models.LedgerEntry) models.ReconciliationResult {
	reference := r.Reference()
	actual := decimal.Zero
	for _, e := range entries {
		if e.Category == models.CategorySetoranLoket && e.ReferenceNumber == reference {
			actual = actual.Add(e.Amount)
		}
	}

	result := models.ReconciliationResult{
		ReportID:        r.ID,
		ReportType:      models.ReportLoket,
		ReportDate:      r.ReportDate,
		BusinessID:      r.BusinessID,
		Shift:           r.Shift,
		NamaPetugas:     r.NamaPetugas,
		ReportedTotal:   r.TotalSetoranShift,
		ActualTotal:     actual,
		TotalDifference: r.TotalSetoranShift.Sub(actual),
		Breakdown:       map[string]models.CategoryComparison{},
		Discrepancies:   []models.Discrepancy{},
		CreatedBy:       r.CreatedBy,
		Notes:           r.Notes,
	}
	compareLine(&result, "setoran_loket", string(models.CategorySetoranLoket), r.TotalSetoranShift, actual, t.Deposit)

	allBalanced := true
	result.BankReconciliation = make([]models.BankCheck, 0, len(r.BankBalances))
	for _, b := range r.BankBalances {
		check := t.CheckBank(b)
		if !check.IsBalanced {
			allBalanced = false
		}
		result.BankReconciliation = append(result.BankReconciliation, check)
	}
	result.AllBanksBalanced = &allBalanced

	finish(&result, allBalanced)
	return result
}

// CheckBank verifies a bank channel against its own figures: the closing
// balance must follow from opening + inject − collections, and the amount
// still owed must follow from collections − handed over − transferred and
// not be negative.
func (t Tolerances) CheckBank(b models.BankBalance) models.BankCheck {
	expectedSaldo := b.ExpectedSaldoAkhir()
	expectedSisa := b.ExpectedSisaSetoran()
	diff := b.SaldoAkhir.Sub(expectedSaldo)

	balanced := diff.Abs().LessThanOrEqual(t.Bank) &&
		b.SisaSetoran.Sub(expectedSisa).Abs().LessThanOrEqual(t.Bank) &&
		!expectedSisa.IsNegative()

	return models.BankCheck{
		BankName:              b.BankName,
		ReportedSaldoAkhir:    b.SaldoAkhir,
		CalculatedSaldoAkhir:  expectedSaldo,
		ReportedSisaSetoran:   b.SisaSetoran,
		CalculatedSisaSetoran: expectedSisa,
		Difference:            diff,
		IsBalanced:            balanced,
	}
}

func compareLine(result *models.ReconciliationResult, key, category string, reported, actual, tolerance decimal.Decimal) {
	diff := reported.Sub(actual)
	result.Breakdown[key] = models.CategoryComparison{Reported: reported, Actual: actual, Difference: diff}
	if diff.Abs().GreaterThan(tolerance) {
		result.Discrepancies = append(result.Discrepancies, models.Discrepancy{
			Category:   category,
			Reported:   reported,
			Actual:     actual,
			Difference: diff,
			Percentage: models.Percentage(diff, reported),
		})
	}
}

func finish(result *models.ReconciliationResult, banksBalanced bool) {
	if len(result.Discrepancies) > 0 || !banksBalanced {
		result.Status = models.StatusDiscrepancy
		result.RequiresInvestigation = true
	} else {
		result.Status = models.StatusMatched
	}
	metrics.ReconciliationReports.WithLabelValues(string(result.ReportType), string(result.Status)).Inc()
}

func summarize(date string, reportType models.ReportType, results []models.ReconciliationResult) *models.ReconciliationSummary {
	summary := &models.ReconciliationSummary{
		ReconciliationDate: date,
		ReportType:         reportType,
		TotalReports:       len(results),
		TotalReported:      decimal.Zero,
		TotalActual:        decimal.Zero,
		Reports:            results,
	}
	for _, r := range results {
		if r.Status == models.StatusMatched {
			summary.MatchedReports++
		} else {
			summary.DiscrepancyReports++
		}
		summary.TotalReported = summary.TotalReported.Add(r.ReportedTotal)
		summary.TotalActual = summary.TotalActual.Add(r.ActualTotal)
	}
	summary.AccuracyRate = AccuracyRate(summary.TotalReported, summary.TotalActual)
	return summary
}

// AccuracyRate is (1 − |reported − actual| / actual) × 100, or 100 when
// nothing was recorded.
func AccuracyRate(reported, actual decimal.Decimal) decimal.Decimal {
	if actual.IsZero() {
		return decimal.NewFromInt(100)
	}
	miss := reported.Sub(actual).Abs().Div(actual.Abs())
	return decimal.NewFromInt(1).Sub(miss).Mul(decimal.NewFromInt(100)).Round(2)
}

func groupByBusiness(entries []models.LedgerEntry) map[string][]models.LedgerEntry {
	grouped := make(map[string][]models.LedgerEntry)
	for _, e := range entries {
		grouped[e.BusinessID] = append(grouped[e.BusinessID], e)
	}
	return grouped
}
