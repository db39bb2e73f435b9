package services_test

import (
	"context"
	"testing"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/models"
	"loket-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFinancialDashboard(t *testing.T) {
	entries := []models.LedgerEntry{
		ledgerLine(models.CategoryOrderPayment, models.TransactionIncome, 100000, ""),
		ledgerLine(models.CategoryAdminFee, models.TransactionIncome, 20000, ""),
		ledgerLine(models.CategoryBelanjaOperasional, models.TransactionExpense, 30000, ""),
		ledgerLine(models.CategoryTopupSaldo, models.TransactionTransfer, 50000, ""),
		ledgerLine("", models.TransactionExpense, 6000, ""),
	}
	orders := []models.Order{
		{TotalAmount: rp(100000), PaymentStatus: models.PaymentPaid},
		{TotalAmount: rp(80000), PaymentStatus: models.PaymentPartial},
		{TotalAmount: rp(20000), PaymentStatus: models.PaymentUnpaid},
	}

	dash := services.BuildFinancialDashboard(entries, orders)

	s := dash.FinancialSummary
	assertAmount(t, 120000, s.TotalIncome)
	assertAmount(t, 36000, s.TotalExpense)
	assertAmount(t, 84000, s.NetProfit)
	assertAmount(t, 70, s.ProfitMargin)
	assert.True(t, s.NetProfit.Equal(s.TotalIncome.Sub(s.TotalExpense)))

	assertAmount(t, 6000, dash.ExpenseBreakdown[string(models.CategoryLainnya)])
	assert.NotContains(t, dash.IncomeBreakdown, string(models.CategoryTopupSaldo))

	assert.Equal(t, 5, dash.TransactionCount.Total)
	assert.Equal(t, 2, dash.TransactionCount.IncomeTransactions)
	assert.Equal(t, 2, dash.TransactionCount.ExpenseTransactions)

	assert.Equal(t, 3, dash.OrdersSummary.TotalOrders)
	assert.Equal(t, 1, dash.OrdersSummary.PaidOrders)
	assert.Equal(t, 2, dash.OrdersSummary.PendingOrders)
	assertAmount(t, 200000, dash.OrdersSummary.TotalOrderAmount)
	assert.Equal(t, "33.33", dash.OrdersSummary.PaymentCollectionRate.StringFixed(2))
}

func TestBuildFinancialDashboardEmpty(t *testing.T) {
	dash := services.BuildFinancialDashboard(nil, nil)
	assert.True(t, dash.FinancialSummary.ProfitMargin.IsZero())
	assert.True(t, dash.OrdersSummary.PaymentCollectionRate.IsZero())
	assert.NotNil(t, dash.IncomeBreakdown)
}

func TestFinancialDashboardFollowsOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := services.NewDashboardService(f.store.Ledger, f.store.Orders, config.Accounting{})

	_, err := f.orders.CreateOrder(ctx, newOrderRequest(100000, 40000), "kasir-1")
	require.NoError(t, err)
	_, err = f.ledger.CreateManual(ctx, &models.CreateLedgerEntryRequest{
		BusinessID:      "biz-1",
		TransactionType: models.TransactionExpense,
		Category:        models.CategoryBelanjaOperasional,
		Amount:          rp(10000),
	}, "admin")
	require.NoError(t, err)

	dash, err := svc.FinancialDashboard(ctx, "biz-1", testDate, testDate)
	require.NoError(t, err)
	assertAmount(t, 40000, dash.FinancialSummary.TotalIncome)
	assertAmount(t, 10000, dash.FinancialSummary.TotalExpense)
	assertAmount(t, 75, dash.FinancialSummary.ProfitMargin)
	assert.Equal(t, 1, dash.OrdersSummary.PendingOrders)
	assert.Equal(t, testDate, dash.Period.StartDate)
	assert.False(t, dash.Truncated)

	other, err := svc.FinancialDashboard(ctx, "biz-9", "", "")
	require.NoError(t, err)
	assert.True(t, other.FinancialSummary.TotalIncome.IsZero())

	_, err = svc.FinancialDashboard(ctx, "", "2024-03-05", "2024-03-01")
	assertKind(t, apperror.KindInvalidArgument, err)
}

func TestCreateManualValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.CreateManual(ctx, &models.CreateLedgerEntryRequest{
		BusinessID: "biz-1", TransactionType: "gift", Category: models.CategoryKoreksi, Amount: rp(1),
	}, "admin")
	assertKind(t, apperror.KindInvalidArgument, err)

	_, err = f.ledger.CreateManual(ctx, &models.CreateLedgerEntryRequest{
		BusinessID: "biz-1", TransactionType: models.TransactionIncome, Category: "Bonus", Amount: rp(1),
	}, "admin")
	assertKind(t, apperror.KindInvalidArgument, err)

	_, err = f.ledger.CreateManual(ctx, &models.CreateLedgerEntryRequest{
		BusinessID: "biz-1", TransactionType: models.TransactionIncome, Category: models.CategoryKoreksi, Amount: rp(0),
	}, "admin")
	assertKind(t, apperror.KindInvalidArgument, err)

	entry, err := f.ledger.CreateManual(ctx, &models.CreateLedgerEntryRequest{
		BusinessID: "biz-1", TransactionType: models.TransactionIncome, Category: models.CategoryKoreksi, Amount: rp(2500),
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "cash", entry.PaymentMethod)

	got, err := f.ledger.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.TransactionCode, got.TransactionCode)

	_, err = f.ledger.Get(ctx, "missing")
	assertKind(t, apperror.KindNotFound, err)
}
