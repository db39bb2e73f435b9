package services

import (
	"context"

	"loket-backend/internal/config"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/shopspring/decimal"
)

const defaultVerificationDays = 7

// VerificationService summarises reported totals against the ledger over
// a period.
type VerificationService struct {
	Reports    ShiftReportStore
	Ledger     LedgerStore
	Tolerance  decimal.Decimal
	MaxRecords int
}

func NewVerificationService(reports ShiftReportStore, ledger LedgerStore, acc config.Accounting) *VerificationService {
	d := config.DefaultAccounting()
	if acc.VerificationTolerance <= 0 {
		acc.VerificationTolerance = d.VerificationTolerance
	}
	if acc.DashboardMaxRecords <= 0 {
		acc.DashboardMaxRecords = d.DashboardMaxRecords
	}
	return &VerificationService{
		Reports:    reports,
		Ledger:     ledger,
		Tolerance:  decimal.NewFromFloat(acc.VerificationTolerance),
		MaxRecords: acc.DashboardMaxRecords,
	}
}

func (s *VerificationService) Summary(ctx context.Context, startDate, endDate string) (*models.VerificationSummary, error) {
	now := timeutil.Now()
	if startDate == "" {
		startDate = timeutil.FormatDate(now.AddDate(0, 0, -defaultVerificationDays))
	}
	if endDate == "" {
		endDate = timeutil.FormatDate(now)
	}
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}
	start, _ := timeutil.ParseDate(startDate)
	end, _ := timeutil.ParseDate(endDate)
	end = timeutil.EndOfDay(end)

	filter := models.ReportFilter{StartDate: startDate, EndDate: endDate}
	kasir, err := s.Reports.ListKasir(ctx, filter)
	if err != nil {
		return nil, err
	}
	loket, err := s.Reports.ListLoket(ctx, filter)
	if err != nil {
		return nil, err
	}
	income, err := s.Ledger.List(ctx, models.LedgerFilter{
		TransactionType: models.TransactionIncome,
		StartDate:       &start,
		EndDate:         &end,
		Limit:           s.MaxRecords,
	})
	if err != nil {
		return nil, err
	}

	kasirTotal := decimal.Zero
	for i := range kasir {
		kasirTotal = kasirTotal.Add(kasir[i].TotalSetoran())
	}
	loketTotal := decimal.Zero
	for _, r := range loket {
		loketTotal = loketTotal.Add(r.TotalSetoranShift)
	}
	actual := decimal.Zero
	for _, e := range income {
		actual = actual.Add(e.Amount)
	}

	reported := kasirTotal.Add(loketTotal)
	diff := reported.Sub(actual)
	investigate := diff.Abs().GreaterThan(s.Tolerance)

	return &models.VerificationSummary{
		Period: models.Period{StartDate: startDate, EndDate: endDate},
		Summary: models.VerificationTotals{
			TotalKasirReports:       len(kasir),
			TotalLoketReports:       len(loket),
			KasirTotalReported:      kasirTotal,
			LoketTotalReported:      loketTotal,
			ActualTotalTransactions: actual,
			OverallDifference:       diff,
		},
		VerificationStatus: models.VerificationStatus{
			RequiresInvestigation: investigate,
			ToleranceThreshold:    s.Tolerance,
			AccuracyRate:          AccuracyRate(reported, actual),
		},
		Recommendations: recommendations(investigate, kasirTotal, actual, len(loket)),
	}, nil
}

var onePercent = decimal.NewFromFloat(0.01)

func recommendations(investigate bool, kasirTotal, actual decimal.Decimal, loketReports int) []string {
	recs := make([]string, 0, 3)

	if investigate {
		recs = append(recs, "Run a daily reconciliation for every date in the period")
	} else {
		recs = append(recs, "Figures are accurate, no investigation needed")
	}

	if actual.IsPositive() && kasirTotal.Sub(actual).Abs().Div(actual).GreaterThan(onePercent) {
		recs = append(recs, "Review kasir reports with a discrepancy above 1%")
	} else {
		recs = append(recs, "Kasir reports agree with the ledger")
	}

	if loketReports > 0 {
		recs = append(recs, "Verify bank balances on the loket reports")
	} else {
		recs = append(recs, "No loket reports in the period")
	}
	return recs
}
