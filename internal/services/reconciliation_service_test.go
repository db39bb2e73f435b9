package services_test

import (
	"context"
	"testing"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/models"
	"loket-backend/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerLine(category models.Category, txType models.TransactionType, amount int64, reference string) models.LedgerEntry {
	return models.LedgerEntry{
		BusinessID:      "biz-1",
		TransactionType: txType,
		Category:        category,
		Amount:          rp(amount),
		ReferenceNumber: reference,
	}
}

func TestReconcileKasirAfterSyncMatches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shifts.SubmitKasir(ctx, kasirRequest(), "kasir-1")
	require.NoError(t, err)

	summary, err := f.recon.ReconcileKasir(ctx, testDate, "")
	require.NoError(t, err)
	require.Equal(t, 1, summary.TotalReports)

	result := summary.Reports[0]
	assert.Equal(t, models.StatusMatched, result.Status)
	assert.Empty(t, result.Discrepancies)
	assertAmount(t, 285000, result.ReportedTotal)
	assertAmount(t, 285000, result.ActualTotal)
	assertAmount(t, 100, summary.AccuracyRate)
	assertAmount(t, 300000, result.Breakdown["setoran_kasir"].Actual)
}

func TestReconcileKasirTolerances(t *testing.T) {
	report := &models.KasirReport{
		ID:          "k1",
		BusinessID:  "biz-1",
		ReportDate:  testDate,
		SetoranPagi: rp(300000),
		TotalAdmin:  rp(5000),
	}

	tests := []struct {
		name       string
		setoran    int64
		admin      int64
		wantStatus models.ReconciliationStatus
		wantLines  []string
	}{
		{name: "exact", setoran: 300000, admin: 5000, wantStatus: models.StatusMatched},
		{name: "deposit off by tolerance", setoran: 299000, admin: 5000, wantStatus: models.StatusMatched},
		{name: "deposit beyond tolerance", setoran: 298999, admin: 5000, wantStatus: models.StatusDiscrepancy, wantLines: []string{"Setoran Kasir"}},
		{name: "admin off by tolerance", setoran: 300000, admin: 4900, wantStatus: models.StatusMatched},
		{name: "admin beyond tolerance", setoran: 300000, admin: 4899, wantStatus: models.StatusDiscrepancy, wantLines: []string{"Admin Fee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []models.LedgerEntry{
				ledgerLine(models.CategorySetoranKasir, models.TransactionIncome, tt.setoran, ""),
				ledgerLine(models.CategoryAdminFee, models.TransactionIncome, tt.admin, ""),
			}
			result := services.ReconcileKasirReport(report, entries)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantStatus == models.StatusDiscrepancy, result.RequiresInvestigation)

			var got []string
			for _, d := range result.Discrepancies {
				got = append(got, d.Category)
			}
			assert.Equal(t, tt.wantLines, got)
		})
	}
}

func TestReconcileKasirCountsBothBelanjaCategories(t *testing.T) {
	report := &models.KasirReport{ID: "k1", BusinessID: "biz-1", ReportDate: testDate, BelanjaLoket: rp(30000)}
	entries := []models.LedgerEntry{
		ledgerLine(models.CategoryBelanjaLoket, models.TransactionExpense, 10000, ""),
		ledgerLine(models.CategoryBelanjaOperasional, models.TransactionExpense, 20000, ""),
	}

	result := services.ReconcileKasirReport(report, entries)
	assert.Equal(t, models.StatusMatched, result.Status)
	assertAmount(t, 30000, result.Breakdown["belanja_loket"].Actual)
	assertAmount(t, -30000, result.ActualTotal)
}

func TestReconcileKasirDiscrepancyPercentage(t *testing.T) {
	report := &models.KasirReport{ID: "k1", BusinessID: "biz-1", ReportDate: testDate, SetoranPagi: rp(200000)}
	entries := []models.LedgerEntry{ledgerLine(models.CategorySetoranKasir, models.TransactionIncome, 190000, "")}

	result := services.ReconcileKasirReport(report, entries)
	require.Len(t, result.Discrepancies, 1)
	assertAmount(t, 10000, result.Discrepancies[0].Difference)
	assertAmount(t, 5, result.Discrepancies[0].Percentage)
}

func TestReconcileLoketMatchesOnShiftReference(t *testing.T) {
	report := &models.LoketReport{
		ID:                "l1",
		BusinessID:        "biz-1",
		ReportDate:        testDate,
		Shift:             2,
		TotalSetoranShift: rp(150000),
		BankBalances:      loketRequest(2, 0).BankBalances,
	}
	entries := []models.LedgerEntry{
		ledgerLine(models.CategorySetoranLoket, models.TransactionIncome, 150000, "LOKET-2024-03-01-SHIFT2"),
		ledgerLine(models.CategorySetoranLoket, models.TransactionIncome, 90000, "LOKET-2024-03-01-SHIFT1"),
		ledgerLine(models.CategoryOrderPayment, models.TransactionIncome, 5000, "LOKET-2024-03-01-SHIFT2"),
	}

	result := services.ReconcileLoketReport(report, entries)
	assert.Equal(t, models.StatusMatched, result.Status)
	assertAmount(t, 150000, result.ActualTotal)
	require.NotNil(t, result.AllBanksBalanced)
	assert.True(t, *result.AllBanksBalanced)
	require.Len(t, result.BankReconciliation, 1)
}

func TestReconcileLoketUnbalancedBankIsDiscrepancy(t *testing.T) {
	banks := loketRequest(1, 0).BankBalances
	banks[0].SaldoAkhir = rp(1200101)
	report := &models.LoketReport{ID: "l1", BusinessID: "biz-1", ReportDate: testDate, Shift: 1, BankBalances: banks}

	result := services.ReconcileLoketReport(report, nil)
	assert.Equal(t, models.StatusDiscrepancy, result.Status)
	assert.Empty(t, result.Discrepancies)
	assert.False(t, *result.AllBanksBalanced)
}

func TestCheckBank(t *testing.T) {
	base := models.BankBalance{
		BankName:       "BCA",
		SaldoAwal:      rp(1000000),
		SaldoInject:    rp(500000),
		DataLunas:      rp(300000),
		SetorKasir:     rp(200000),
		TransferAmount: rp(50000),
		SisaSetoran:    rp(50000),
		SaldoAkhir:     rp(1200000),
	}

	tests := []struct {
		name   string
		mutate func(b *models.BankBalance)
		want   bool
	}{
		{name: "consistent", mutate: func(*models.BankBalance) {}, want: true},
		{name: "saldo akhir within tolerance", mutate: func(b *models.BankBalance) { b.SaldoAkhir = rp(1200100) }, want: true},
		{name: "saldo akhir beyond tolerance", mutate: func(b *models.BankBalance) { b.SaldoAkhir = rp(1199899) }, want: false},
		{name: "sisa within tolerance", mutate: func(b *models.BankBalance) { b.SisaSetoran = rp(49900) }, want: true},
		{name: "sisa beyond tolerance", mutate: func(b *models.BankBalance) { b.SisaSetoran = rp(50101) }, want: false},
		{name: "handed over more than collected", mutate: func(b *models.BankBalance) {
			b.SetorKasir = rp(300000)
			b.SisaSetoran = rp(-50000)
		}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base
			tt.mutate(&b)
			check := services.CheckBank(b)
			assert.Equal(t, tt.want, check.IsBalanced)
			assertAmount(t, 1200000, check.CalculatedSaldoAkhir)
		})
	}
}

func TestReconcileNotFoundVersusEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.recon.ReconcileKasir(ctx, testDate, "")
	assertKind(t, apperror.KindNotFound, err)

	_, err = f.recon.ReconcileLoket(ctx, testDate, "")
	assertKind(t, apperror.KindNotFound, err)

	_, err = f.recon.ReconcileKasir(ctx, "2024/03/01", "")
	assertKind(t, apperror.KindInvalidArgument, err)

	// A ledger entry without any report is still a reconcilable day.
	_, err = f.ledger.CreateManual(ctx, &models.CreateLedgerEntryRequest{
		BusinessID:      "biz-1",
		TransactionType: models.TransactionIncome,
		Category:        models.CategorySetoranKasir,
		Amount:          rp(1000),
	}, "admin")
	require.NoError(t, err)

	summary, err := f.recon.ReconcileKasir(ctx, testDate, "")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalReports)
	assert.Empty(t, summary.Reports)
}

func TestReconcileKeepsBusinessesApart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := kasirRequest()
	_, err := f.shifts.SubmitKasir(ctx, a, "kasir-1")
	require.NoError(t, err)

	b := &models.CreateKasirReportRequest{BusinessID: "biz-2", ReportDate: testDate, SetoranPagi: rp(50000)}
	_, err = f.shifts.SubmitKasir(ctx, b, "kasir-2")
	require.NoError(t, err)

	summary, err := f.recon.ReconcileKasir(ctx, testDate, "")
	require.NoError(t, err)
	require.Equal(t, 2, summary.TotalReports)
	assert.Equal(t, 2, summary.MatchedReports)
	for _, r := range summary.Reports {
		assert.True(t, r.ReportedTotal.Equal(r.ActualTotal), r.BusinessID)
	}

	only, err := f.recon.ReconcileKasir(ctx, testDate, "biz-2")
	require.NoError(t, err)
	require.Equal(t, 1, only.TotalReports)
	assertAmount(t, 50000, only.Reports[0].ActualTotal)
}

func TestAccuracyRate(t *testing.T) {
	assertAmount(t, 100, services.AccuracyRate(rp(5000), decimal.Zero))
	assertAmount(t, 99, services.AccuracyRate(rp(990), rp(1000)))
	assertAmount(t, 99, services.AccuracyRate(rp(1010), rp(1000)))
}

func TestReconcileUsesConfiguredTolerances(t *testing.T) {
	report := &models.KasirReport{ID: "k1", BusinessID: "biz-1", ReportDate: testDate, SetoranPagi: rp(300000)}
	entries := []models.LedgerEntry{ledgerLine(models.CategorySetoranKasir, models.TransactionIncome, 297000, "")}

	assert.Equal(t, models.StatusDiscrepancy, services.ReconcileKasirReport(report, entries).Status)

	acc := config.DefaultAccounting()
	acc.DepositTolerance = 5000
	svc := services.NewReconciliationService(nil, nil, acc)
	assertAmount(t, 5000, svc.Tolerances.Deposit)
	assertAmount(t, 100, svc.Tolerances.Line)
	assert.Equal(t, models.StatusMatched, svc.Tolerances.ReconcileKasirReport(report, entries).Status)

	unset := services.TolerancesFrom(config.Accounting{})
	assertAmount(t, 1000, unset.Deposit)
	assertAmount(t, 100, unset.Bank)
}
