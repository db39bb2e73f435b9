package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType distinguishes the two daily shift report variants.
type ReportType string

const (
	ReportLoket     ReportType = "loket"
	ReportKasir     ReportType = "kasir"
	ReportPPOBLoket ReportType = "ppob_loket"
	ReportPPOBKasir ReportType = "ppob_kasir"
)

// BankBalance is one bank channel of a loket shift.
type BankBalance struct {
	BankName       string          `json:"bank_name" validate:"required"`
	SaldoAwal      decimal.Decimal `json:"saldo_awal"`
	SaldoInject    decimal.Decimal `json:"saldo_inject"`
	DataLunas      decimal.Decimal `json:"data_lunas"`
	SetorKasir     decimal.Decimal `json:"setor_kasir"`
	TransferAmount decimal.Decimal `json:"transfer_amount"`
	SisaSetoran    decimal.Decimal `json:"sisa_setoran"`
	SaldoAkhir     decimal.Decimal `json:"saldo_akhir"`
}

// ExpectedSaldoAkhir is the closing balance implied by the channel's
// opening balance, injections and gross collections.
func (b BankBalance) ExpectedSaldoAkhir() decimal.Decimal {
	return b.SaldoAwal.Add(b.SaldoInject).Sub(b.DataLunas)
}

// ExpectedSisaSetoran is what should still be owed to the cashier.
func (b BankBalance) ExpectedSisaSetoran() decimal.Decimal {
	return b.DataLunas.Sub(b.SetorKasir).Sub(b.TransferAmount)
}

// LoketReport is a front-counter end-of-shift declaration.
type LoketReport struct {
	ID                string          `json:"id"`
	BusinessID        string          `json:"business_id"`
	ReportDate        string          `json:"report_date"`
	Shift             int             `json:"shift"`
	NamaPetugas       string          `json:"nama_petugas"`
	BankBalances      []BankBalance   `json:"bank_balances"`
	TotalSetoranShift decimal.Decimal `json:"total_setoran_shift"` // Σ sisa_setoran of the channels
	Notes             string          `json:"notes"`
	CreatedBy         string          `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Reference is the ledger reference number tying entries to this shift.
func (r *LoketReport) Reference() string {
	return LoketReference(r.ReportDate, r.Shift)
}

type CreateLoketReportRequest struct {
	BusinessID   string        `json:"business_id" validate:"required"`
	ReportDate   string        `json:"report_date" validate:"required"`
	Shift        int           `json:"shift" validate:"required,min=1,max=3"`
	NamaPetugas  string        `json:"nama_petugas" validate:"required"`
	BankBalances []BankBalance `json:"bank_balances" validate:"required,min=1,dive"`
	Notes        string        `json:"notes"`
}

// TopupTransfer is a balance top-up paid out of the cashier drawer.
type TopupTransfer struct {
	BankName string          `json:"bank_name" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

// KasirReport is a cashier's daily declaration.
type KasirReport struct {
	ID                  string          `json:"id"`
	BusinessID          string          `json:"business_id"`
	ReportDate          string          `json:"report_date"`
	SetoranPagi         decimal.Decimal `json:"setoran_pagi"`
	SetoranSiang        decimal.Decimal `json:"setoran_siang"`
	SetoranSore         decimal.Decimal `json:"setoran_sore"`
	TotalAdmin          decimal.Decimal `json:"total_admin"`
	BelanjaLoket        decimal.Decimal `json:"belanja_loket"`
	PenerimaanKasKecil  decimal.Decimal `json:"penerimaan_kas_kecil"`
	PenguranganKasKecil decimal.Decimal `json:"pengurangan_kas_kecil"`
	TopupTransfers      []TopupTransfer `json:"topup_transfers"`
	Notes               string          `json:"notes"`
	CreatedBy           string          `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
}

// TotalSetoran is the sum of the three deposit slots.
func (r *KasirReport) TotalSetoran() decimal.Decimal {
	return SumAmounts(r.SetoranPagi, r.SetoranSiang, r.SetoranSore)
}

// TotalTopup is the sum of the top-up transfers.
func (r *KasirReport) TotalTopup() decimal.Decimal {
	total := decimal.Zero
	for _, t := range r.TopupTransfers {
		total = total.Add(t.Amount)
	}
	return total
}

// KasKecilNet is the petty cash movement declared on the report.
func (r *KasirReport) KasKecilNet() decimal.Decimal {
	return r.PenerimaanKasKecil.Sub(r.PenguranganKasKecil)
}

// ReportedTotal is deposits plus admin fees minus operational spend.
func (r *KasirReport) ReportedTotal() decimal.Decimal {
	return r.TotalSetoran().Add(r.TotalAdmin).Sub(r.BelanjaLoket)
}

type CreateKasirReportRequest struct {
	BusinessID          string          `json:"business_id" validate:"required"`
	ReportDate          string          `json:"report_date" validate:"required"`
	SetoranPagi         decimal.Decimal `json:"setoran_pagi"`
	SetoranSiang        decimal.Decimal `json:"setoran_siang"`
	SetoranSore         decimal.Decimal `json:"setoran_sore"`
	TotalAdmin          decimal.Decimal `json:"total_admin"`
	BelanjaLoket        decimal.Decimal `json:"belanja_loket"`
	PenerimaanKasKecil  decimal.Decimal `json:"penerimaan_kas_kecil"`
	PenguranganKasKecil decimal.Decimal `json:"pengurangan_kas_kecil"`
	TopupTransfers      []TopupTransfer `json:"topup_transfers" validate:"dive"`
	Notes               string          `json:"notes"`
}

// ShiftReportResult is returned by report submission and re-sync.
type ShiftReportResult struct {
	ID                  string          `json:"id"`
	Type                ReportType      `json:"type"`
	Total               decimal.Decimal `json:"total"`
	StatusSetoran       string          `json:"status_setoran,omitempty"`
	TransactionsCreated int             `json:"transactions_created"`
}

type ReportFilter struct {
	BusinessID string
	ReportDate string
	StartDate  string
	EndDate    string
}

// LoketReference builds the reference number of a loket shift.
func LoketReference(reportDate string, shift int) string {
	return "LOKET-" + reportDate + "-SHIFT" + strconv.Itoa(shift)
}

// KasirReference builds the reference number of a kasir report line.
// An empty suffix is the deposit line.
func KasirReference(reportDate, suffix string) string {
	if suffix == "" {
		return "KASIR-" + reportDate
	}
	return "KASIR-" + reportDate + "-" + suffix
}
