package services

import (
	"context"
	"encoding/json"
	"time"

	"loket-backend/internal/cache"
	"loket-backend/internal/config"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/shopspring/decimal"
)

// DashboardService aggregates the ledger and orders into the financial
// dashboard. It is a pure read: the same filters over the same data give
// the same numbers.
type DashboardService struct {
	Ledger     LedgerStore
	Orders     OrderStore
	MaxRecords int
	CacheTTL   time.Duration
}

func NewDashboardService(ledger LedgerStore, orders OrderStore, acc config.Accounting) *DashboardService {
	if acc.DashboardMaxRecords <= 0 {
		acc.DashboardMaxRecords = config.DefaultAccounting().DashboardMaxRecords
	}
	return &DashboardService{
		Ledger:     ledger,
		Orders:     orders,
		MaxRecords: acc.DashboardMaxRecords,
		CacheTTL:   time.Duration(acc.DashboardCacheSeconds) * time.Second,
	}
}

// FinancialDashboard computes the dashboard for an optional business and
// an optional inclusive YYYY-MM-DD range.
func (s *DashboardService) FinancialDashboard(ctx context.Context, businessID, startDate, endDate string) (*models.FinancialDashboard, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	key := cache.DashboardKey(businessID, startDate, endDate)
	if s.CacheTTL > 0 {
		if data, ok := cache.GetCached(ctx, key); ok {
			var cached models.FinancialDashboard
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var start, end *time.Time
	if startDate != "" {
		t, _ := timeutil.ParseDate(startDate)
		start = &t
	}
	if endDate != "" {
		t, _ := timeutil.ParseDate(endDate)
		t = timeutil.EndOfDay(t)
		end = &t
	}

	entries, err := s.Ledger.List(ctx, models.LedgerFilter{
		BusinessID: businessID,
		StartDate:  start,
		EndDate:    end,
		Limit:      s.MaxRecords,
	})
	if err != nil {
		return nil, err
	}
	orders, err := s.Orders.List(ctx, models.OrderFilter{
		BusinessID: businessID,
		StartDate:  start,
		EndDate:    end,
		Limit:      s.MaxRecords,
	})
	if err != nil {
		return nil, err
	}

	dash := BuildFinancialDashboard(entries, orders)
	dash.Period = models.Period{StartDate: startDate, EndDate: endDate}
	dash.BusinessID = businessID
	dash.Truncated = len(entries) >= s.MaxRecords || len(orders) >= s.MaxRecords

	if s.CacheTTL > 0 {
		if data, err := json.Marshal(dash); err == nil {
			cache.SetCached(ctx, key, data, s.CacheTTL)
		}
	}
	return dash, nil
}

// BuildFinancialDashboard folds entries and orders into the dashboard
// figures. Transfer and commission entries only count towards the total
// transaction count.
func BuildFinancialDashboard(entries []models.LedgerEntry, orders []models.Order) *models.FinancialDashboard {
	dash := &models.FinancialDashboard{
		IncomeBreakdown:  map[string]decimal.Decimal{},
		ExpenseBreakdown: map[string]decimal.Decimal{},
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, e := range entries {
		dash.TransactionCount.Total++

		category := string(e.Category)
		if category == "" {
			category = string(models.CategoryLainnya)
		}

		switch e.TransactionType {
		case models.TransactionIncome:
			income = income.Add(e.Amount)
			dash.IncomeBreakdown[category] = dash.IncomeBreakdown[category].Add(e.Amount)
			dash.TransactionCount.IncomeTransactions++
		case models.TransactionExpense:
			expense = expense.Add(e.Amount)
			dash.ExpenseBreakdown[category] = dash.ExpenseBreakdown[category].Add(e.Amount)
			dash.TransactionCount.ExpenseTransactions++
		}
	}

	net := income.Sub(expense)
	dash.FinancialSummary = models.FinancialSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetProfit:    net,
		ProfitMargin: models.Percentage(net, income),
	}

	summary := models.OrdersSummary{TotalOrderAmount: decimal.Zero}
	for _, o := range orders {
		summary.TotalOrders++
		summary.TotalOrderAmount = summary.TotalOrderAmount.Add(o.TotalAmount)
		switch o.PaymentStatus {
		case models.PaymentPaid:
			summary.PaidOrders++
		case models.PaymentUnpaid, models.PaymentPartial:
			summary.PendingOrders++
		}
	}
	summary.PaymentCollectionRate = models.Percentage(
		decimal.NewFromInt(int64(summary.PaidOrders)),
		decimal.NewFromInt(int64(summary.TotalOrders)),
	)
	dash.OrdersSummary = summary

	return dash
}
