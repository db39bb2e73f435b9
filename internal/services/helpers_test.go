package services_test

import (
	"context"
	"testing"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/models"
	"loket-backend/internal/repositories/memory"
	"loket-backend/internal/services"
	"loket-backend/internal/timeutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// testNow is 10:00 WIB on the day most tests report against.
var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, timeutil.WIB)

const testDate = "2024-03-01"

func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	restore := timeutil.SetClock(func() time.Time { return at })
	t.Cleanup(restore)
}

func rp(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertKind(t *testing.T, want apperror.Kind, err error) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Equal(t, want, apperror.KindOf(err), err.Error())
	}
}

func assertAmount(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(rp(want)), "want %d, got %s %v", want, got.String(), msgAndArgs)
}

type fixture struct {
	store  *memory.Store
	ledger *services.LedgerService
	orders *services.PaymentSyncService
	shifts *services.ShiftReportService
	ppob   *services.PPOBService
	recon  *services.ReconciliationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pinClock(t, testNow)

	store := memory.New()
	ledger := services.NewLedgerService(store.Ledger)
	return &fixture{
		store:  store,
		ledger: ledger,
		orders: services.NewPaymentSyncService(store.Orders, nil),
		shifts: services.NewShiftReportService(store.Reports, ledger),
		ppob:   services.NewPPOBService(store.PPOB),
		recon:  services.NewReconciliationService(store.Reports, store.Ledger, config.Accounting{}),
	}
}

func (f *fixture) entries(t *testing.T, filter models.LedgerFilter) []models.LedgerEntry {
	t.Helper()
	entries, err := f.ledger.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	return entries
}

func sumByCategory(entries []models.LedgerEntry, category models.Category) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Category == category {
			total = total.Add(e.Amount)
		}
	}
	return total
}
