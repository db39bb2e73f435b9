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

func TestVerificationSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := services.NewVerificationService(f.store.Reports, f.store.Ledger, config.Accounting{})

	kasir := kasirRequest()
	kasir.TotalAdmin = rp(0)
	_, err := f.shifts.SubmitKasir(ctx, kasir, "kasir-1")
	require.NoError(t, err)
	_, err = f.shifts.SubmitLoket(ctx, loketRequest(1, 200000), "loket-1")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, testDate, testDate)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Summary.TotalKasirReports)
	assert.Equal(t, 1, summary.Summary.TotalLoketReports)
	assertAmount(t, 300000, summary.Summary.KasirTotalReported)
	assertAmount(t, 200000, summary.Summary.LoketTotalReported)
	assertAmount(t, 500000, summary.Summary.ActualTotalTransactions)
	assert.True(t, summary.Summary.OverallDifference.IsZero())
	assert.False(t, summary.VerificationStatus.RequiresInvestigation)
	assertAmount(t, 100, summary.VerificationStatus.AccuracyRate)
	assert.Len(t, summary.Recommendations, 3)

	_, err = f.ledger.CreateManual(ctx, &models.CreateLedgerEntryRequest{
		BusinessID:      "biz-1",
		TransactionType: models.TransactionIncome,
		Category:        models.CategoryLainnya,
		Amount:          rp(25000),
	}, "admin")
	require.NoError(t, err)

	summary, err = svc.Summary(ctx, testDate, testDate)
	require.NoError(t, err)
	assertAmount(t, -25000, summary.Summary.OverallDifference)
	assert.True(t, summary.VerificationStatus.RequiresInvestigation)
	assertAmount(t, 10000, summary.VerificationStatus.ToleranceThreshold)
}

func TestVerificationDefaultsAndValidation(t *testing.T) {
	f := newFixture(t)
	svc := services.NewVerificationService(f.store.Reports, f.store.Ledger, config.Accounting{})

	summary, err := svc.Summary(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-23", summary.Period.StartDate)
	assert.Equal(t, testDate, summary.Period.EndDate)
	assert.Equal(t, "No loket reports in the period", summary.Recommendations[2])

	_, err = svc.Summary(context.Background(), "2024-03-10", "2024-03-01")
	assertKind(t, apperror.KindInvalidArgument, err)
}
