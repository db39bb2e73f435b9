package services_test

import (
	"context"
	"errors"
	"testing"

	"loket-backend/internal/apperror"
	"loket-backend/internal/models"
	"loket-backend/internal/services"
	"loket-backend/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kasirRequest() *models.CreateKasirReportRequest {
	return &models.CreateKasirReportRequest{
		BusinessID:          "biz-1",
		ReportDate:          testDate,
		SetoranPagi:         rp(100000),
		SetoranSiang:        rp(100000),
		SetoranSore:         rp(100000),
		TotalAdmin:          rp(5000),
		BelanjaLoket:        rp(20000),
		PenerimaanKasKecil:  rp(10000),
		PenguranganKasKecil: rp(4000),
		TopupTransfers:      []models.TopupTransfer{{BankName: "BRI", Amount: rp(30000)}, {BankName: "BCA", Amount: rp(20000)}},
	}
}

// loketRequest builds a self-consistent single-channel shift that still owes
// sisa to the cashier.
func loketRequest(shift int, sisa int64) *models.CreateLoketReportRequest {
	return &models.CreateLoketReportRequest{
		BusinessID:  "biz-1",
		ReportDate:  testDate,
		Shift:       shift,
		NamaPetugas: "Sari",
		BankBalances: []models.BankBalance{{
			BankName:    "BRI",
			SaldoAwal:   rp(1000000),
			SaldoInject: rp(500000),
			DataLunas:   rp(250000 + sisa),
			SetorKasir:  rp(250000),
			SisaSetoran: rp(sisa),
			SaldoAkhir:  rp(1250000 - sisa),
		}},
	}
}

func TestSubmitKasirDerivesEntries(t *testing.T) {
	f := newFixture(t)

	res, err := f.shifts.SubmitKasir(context.Background(), kasirRequest(), "kasir-1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportKasir, res.Type)
	assert.Equal(t, 5, res.TransactionsCreated)
	assertAmount(t, 285000, res.Total)

	entries := f.entries(t, models.LedgerFilter{})
	require.Len(t, entries, 5)

	byCategory := map[models.Category]models.LedgerEntry{}
	for _, e := range entries {
		byCategory[e.Category] = e
	}

	setoran := byCategory[models.CategorySetoranKasir]
	assertAmount(t, 300000, setoran.Amount)
	assert.Equal(t, models.TransactionIncome, setoran.TransactionType)
	assert.Equal(t, "KASIR-2024-03-01", setoran.ReferenceNumber)

	belanja := byCategory[models.CategoryBelanjaOperasional]
	assertAmount(t, 20000, belanja.Amount)
	assert.Equal(t, models.TransactionExpense, belanja.TransactionType)

	assertAmount(t, 5000, byCategory[models.CategoryAdminFee].Amount)
	assertAmount(t, 6000, byCategory[models.CategoryKasKecil].Amount)
	assert.Equal(t, models.TransactionTransfer, byCategory[models.CategoryKasKecil].TransactionType)
	assertAmount(t, 50000, byCategory[models.CategoryTopupSaldo].Amount)
}

func TestSubmitKasirSkipsZeroLines(t *testing.T) {
	f := newFixture(t)

	req := &models.CreateKasirReportRequest{BusinessID: "biz-1", ReportDate: testDate, SetoranPagi: rp(75000)}
	res, err := f.shifts.SubmitKasir(context.Background(), req, "kasir-1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.TransactionsCreated)
}

func TestSubmitKasirValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bad := kasirRequest()
	bad.ReportDate = "01-03-2024"
	_, err := f.shifts.SubmitKasir(ctx, bad, "kasir-1")
	assertKind(t, apperror.KindInvalidArgument, err)

	negative := kasirRequest()
	negative.TotalAdmin = rp(-1)
	_, err = f.shifts.SubmitKasir(ctx, negative, "kasir-1")
	assertKind(t, apperror.KindInvalidArgument, err)

	_, err = f.shifts.SubmitKasir(ctx, kasirRequest(), "kasir-1")
	require.NoError(t, err)
	_, err = f.shifts.SubmitKasir(ctx, kasirRequest(), "kasir-1")
	assertKind(t, apperror.KindConflict, err)
	assert.Equal(t, 5, f.store.Count())
}

func TestSubmitLoket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.shifts.SubmitLoket(ctx, loketRequest(1, 200000), "loket-1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.TransactionsCreated)

	entries := f.entries(t, models.LedgerFilter{ReferenceNumber: "LOKET-2024-03-01-SHIFT1"})
	require.Len(t, entries, 1)
	assert.Equal(t, models.CategorySetoranLoket, entries[0].Category)
	assertAmount(t, 200000, entries[0].Amount)

	res, err = f.shifts.SubmitLoket(ctx, loketRequest(2, 0), "loket-1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.TransactionsCreated)

	_, err = f.shifts.SubmitLoket(ctx, loketRequest(4, 1000), "loket-1")
	assertKind(t, apperror.KindInvalidArgument, err)

	_, err = f.shifts.SubmitLoket(ctx, loketRequest(1, 1000), "loket-1")
	assertKind(t, apperror.KindConflict, err)

	negative := loketRequest(3, 0)
	negative.BankBalances[0].SisaSetoran = rp(-1)
	_, err = f.shifts.SubmitLoket(ctx, negative, "loket-1")
	assertKind(t, apperror.KindInvalidArgument, err)
}

func TestSubmitLoketTotalsChannels(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := loketRequest(1, 50000)
	bca := loketRequest(1, 30000).BankBalances[0]
	bca.BankName = "BCA"
	req.BankBalances = append(req.BankBalances, bca)

	res, err := f.shifts.SubmitLoket(ctx, req, "loket-1")
	require.NoError(t, err)
	assertAmount(t, 80000, res.Total)

	reports, err := f.shifts.ListLoket(ctx, models.ReportFilter{ReportDate: testDate})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assertAmount(t, 80000, reports[0].TotalSetoranShift)

	entries := f.entries(t, models.LedgerFilter{ReferenceNumber: "LOKET-2024-03-01-SHIFT1"})
	require.Len(t, entries, 1)
	assertAmount(t, 80000, entries[0].Amount)

	summary, err := f.recon.ReconcileLoket(ctx, testDate, "")
	require.NoError(t, err)
	require.Len(t, summary.Reports, 1)
	assert.Equal(t, models.StatusMatched, summary.Reports[0].Status)
	assertAmount(t, 80000, summary.Reports[0].ReportedTotal)
}

func TestPartialFailureThenResync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.LedgerFault = func(e *models.LedgerEntry) error {
		if e.Category == models.CategoryAdminFee {
			return errors.New("deadlock detected")
		}
		return nil
	}

	_, err := f.shifts.SubmitKasir(ctx, kasirRequest(), "kasir-1")
	assertKind(t, apperror.KindPartialFailure, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	require.NotEmpty(t, appErr.ReportID)
	assert.Equal(t, 2, f.store.Count(), "setoran and belanja land before the failing line")

	f.store.LedgerFault = nil
	res, err := f.shifts.Resync(ctx, models.ReportKasir, appErr.ReportID)
	require.NoError(t, err)
	assert.Equal(t, 3, res.TransactionsCreated)
	assert.Equal(t, 5, f.store.Count())

	res, err = f.shifts.Resync(ctx, models.ReportKasir, appErr.ReportID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TransactionsCreated)
	assert.Equal(t, 5, f.store.Count())
}

func TestResyncErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shifts.Resync(ctx, models.ReportLoket, "missing")
	assertKind(t, apperror.KindNotFound, err)

	_, err = f.shifts.Resync(ctx, models.ReportKasir, "missing")
	assertKind(t, apperror.KindNotFound, err)

	_, err = f.shifts.Resync(ctx, models.ReportType("weekly"), "x")
	assertKind(t, apperror.KindInvalidArgument, err)
}

func TestSubmitLoketLedgerFailureKeepsReport(t *testing.T) {
	pinClock(t, testNow)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mocks.NewMockShiftReportStore(ctrl)
	ledger := mocks.NewMockLedgerStore(ctrl)
	svc := services.NewShiftReportService(reports, services.NewLedgerService(ledger))

	gomock.InOrder(
		reports.EXPECT().CreateLoket(gomock.Any(), gomock.Any()).Return(nil),
		ledger.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, errors.New("timeout")),
	)

	_, err := svc.SubmitLoket(context.Background(), loketRequest(1, 150000), "loket-1")
	assertKind(t, apperror.KindPartialFailure, err)
}

func TestSubmitLoketSyncKeyIsStable(t *testing.T) {
	pinClock(t, testNow)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mocks.NewMockShiftReportStore(ctrl)
	ledger := mocks.NewMockLedgerStore(ctrl)
	svc := services.NewShiftReportService(reports, services.NewLedgerService(ledger))

	var reportID string
	reports.EXPECT().CreateLoket(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *models.LoketReport) error {
			reportID = r.ID
			return nil
		})
	ledger.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *models.LedgerEntry) (bool, error) {
			assert.Equal(t, "loket:"+reportID+":setoran", e.SyncKey)
			return true, nil
		})

	res, err := svc.SubmitLoket(context.Background(), loketRequest(3, 90000), "loket-1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.TransactionsCreated)
}
