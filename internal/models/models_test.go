package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name  string
		paid  int64
		total int64
		want  PaymentStatus
	}{
		{"nothing paid", 0, 5000000, PaymentUnpaid},
		{"zero total zero paid", 0, 0, PaymentUnpaid},
		{"partial", 2000000, 5000000, PaymentPartial},
		{"exact", 5000000, 5000000, PaymentPaid},
		{"overpaid", 6000000, 5000000, PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(d(tt.paid), d(tt.total)))
		})
	}
}

func TestStatusValidity(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentRefunded} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, PaymentStatus("bogus").Valid())
	assert.False(t, PaymentStatus("").Valid())
	assert.True(t, OrderCancelled.Valid())
	assert.False(t, OrderStatus("lost").Valid())
}

func TestBankBalanceExpectations(t *testing.T) {
	b := BankBalance{
		BankName:       "BRI",
		SaldoAwal:      d(1000000),
		SaldoInject:    d(0),
		DataLunas:      d(500000),
		SetorKasir:     d(300000),
		TransferAmount: d(50000),
	}

	assert.True(t, b.ExpectedSaldoAkhir().Equal(d(500000)))
	assert.True(t, b.ExpectedSisaSetoran().Equal(d(150000)))
}

func TestKasirReportTotals(t *testing.T) {
	r := KasirReport{
		SetoranPagi:         d(1000000),
		SetoranSiang:        d(2000000),
		SetoranSore:         d(500000),
		TotalAdmin:          d(75000),
		BelanjaLoket:        d(25000),
		PenerimaanKasKecil:  d(200000),
		PenguranganKasKecil: d(50000),
		TopupTransfers: []TopupTransfer{
			{BankName: "BCA", Amount: d(100000)},
			{BankName: "BNI", Amount: d(250000)},
		},
	}

	assert.True(t, r.TotalSetoran().Equal(d(3500000)))
	assert.True(t, r.ReportedTotal().Equal(d(3550000)))
	assert.True(t, r.KasKecilNet().Equal(d(150000)))
	assert.True(t, r.TotalTopup().Equal(d(350000)))
}

func TestReferences(t *testing.T) {
	assert.Equal(t, "LOKET-2026-03-01-SHIFT2", LoketReference("2026-03-01", 2))
	assert.Equal(t, "KASIR-2026-03-01", KasirReference("2026-03-01", ""))
	assert.Equal(t, "KASIR-2026-03-01-ADMIN", KasirReference("2026-03-01", "ADMIN"))
}

func TestPercentage(t *testing.T) {
	assert.True(t, Percentage(d(1), d(0)).IsZero())
	assert.Equal(t, "33.33", Percentage(d(1), d(3)).String())
	assert.Equal(t, "-50", Percentage(d(-500), d(1000)).String())
}

func TestCategoryWireStrings(t *testing.T) {
	assert.True(t, CategoryOrderPayment.Valid())
	assert.False(t, Category("order payment").Valid())
	assert.True(t, CategoryBelanjaLoket.IsBelanja())
	assert.True(t, CategoryBelanjaOperasional.IsBelanja())
	assert.False(t, CategoryAdminFee.IsBelanja())

	raw, err := json.Marshal(LedgerEntry{Category: CategorySetoranKasir, Amount: d(1500000), SyncKey: "hidden"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"category":"Setoran Kasir"`)
	assert.Contains(t, string(raw), `"amount":1500000`)
	assert.NotContains(t, string(raw), "hidden")
}
