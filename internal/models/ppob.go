package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement states of a PPOB loket shift.
const (
	StatusBelumDisetor = "Belum Disetor"
	StatusLunas        = "Lunas"
)

// Journal accounts used by the PPOB sub-ledger.
const (
	AccountKas                 = "Kas"
	AccountKasKecil            = "Kas Kecil"
	AccountPiutangSetoranLoket = "Piutang Setoran Loket"
	AccountPendapatanPPOB      = "Pendapatan PPOB"
	AccountPendapatanLoketLuar = "Pendapatan PPOB Loket Luar"
	AccountPendapatanAdmin     = "Pendapatan Admin"
	AccountModalSaldoPPOB      = "Modal Saldo PPOB"
	AccountBiayaOperasional    = "Biaya Operasional"

	RevenueAccountPrefix = "Pendapatan"
	ExpenseAccountPrefix = "Biaya"
)

// Journal reference types.
const (
	JournalRefPPOBLoketShift  = "ppob_loket_shift"
	JournalRefPPOBKasirReport = "ppob_kasir_report"
)

// JournalLine is one debit/credit pair of the PPOB journal. Debit and
// credit amounts are always equal.
type JournalLine struct {
	ID            string          `json:"id"`
	BusinessID    string          `json:"business_id"`
	Tanggal       string          `json:"tanggal"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debit_account"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	KreditAccount string          `json:"kredit_account"`
	KreditAmount  decimal.Decimal `json:"kredit_amount"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   string          `json:"reference_id"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`

	SyncKey string `json:"-"`
}

// Balanced reports whether the pair posts the same amount on both sides.
func (l *JournalLine) Balanced() bool {
	return l.DebitAmount.Equal(l.KreditAmount)
}

// PPOBChannel is one selling channel of a PPOB loket shift.
type PPOBChannel struct {
	Channel        string          `json:"channel" validate:"required"`
	SaldoAwal      decimal.Decimal `json:"saldo_awal"`
	SaldoInject    decimal.Decimal `json:"saldo_inject"`
	TotalPenjualan decimal.Decimal `json:"total_penjualan"`
	SisaSetoran    decimal.Decimal `json:"sisa_setoran"`
	SaldoAkhir     decimal.Decimal `json:"saldo_akhir"`
}

type PPOBShiftReport struct {
	ID               string          `json:"id"`
	BusinessID       string          `json:"business_id"`
	Tanggal          string          `json:"tanggal"`
	Shift            int             `json:"shift"`
	NamaPetugas      string          `json:"nama_petugas"`
	Channels         []PPOBChannel   `json:"channels"`
	TotalPenjualan   decimal.Decimal `json:"total_penjualan"`
	TotalSisaSetoran decimal.Decimal `json:"total_sisa_setoran"`
	StatusSetoran    string          `json:"status_setoran"`
	SettledBy        string          `json:"settled_by,omitempty"`
	Notes            string          `json:"notes"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
}

type CreatePPOBShiftRequest struct {
	BusinessID  string        `json:"business_id" validate:"required"`
	Tanggal     string        `json:"tanggal" validate:"required"`
	Shift       int           `json:"shift" validate:"required,min=1,max=3"`
	NamaPetugas string        `json:"nama_petugas" validate:"required"`
	Channels    []PPOBChannel `json:"channels" validate:"required,min=1,dive"`
	Notes       string        `json:"notes"`
}

// SetoranLoketItem settles (part of) a PPOB loket shift.
type SetoranLoketItem struct {
	LoketReportID string          `json:"loket_report_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

type TopupSaldoItem struct {
	Channel string          `json:"channel" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

type PPOBKasirReport struct {
	ID                  string             `json:"id"`
	BusinessID          string             `json:"business_id"`
	Tanggal             string             `json:"tanggal"`
	SetoranLoket        []SetoranLoketItem `json:"setoran_loket"`
	SetoranLoketLuar    decimal.Decimal    `json:"setoran_loket_luar"`
	PenerimaanAdmin     decimal.Decimal    `json:"penerimaan_admin"`
	TopupSaldo          []TopupSaldoItem   `json:"topup_saldo"`
	PenerimaanKasKecil  decimal.Decimal    `json:"penerimaan_kas_kecil"`
	PenguranganKasKecil decimal.Decimal    `json:"pengurangan_kas_kecil"`
	SaldoKasKecil       decimal.Decimal    `json:"saldo_kas_kecil"`
	Notes               string             `json:"notes"`
	CreatedBy           string             `json:"created_by"`
	CreatedAt           time.Time          `json:"created_at"`
}

// SettledShiftIDs lists the loket shifts the report settles.
func (r *PPOBKasirReport) SettledShiftIDs() []string {
	ids := make([]string, 0, len(r.SetoranLoket))
	for _, item := range r.SetoranLoket {
		ids = append(ids, item.LoketReportID)
	}
	return ids
}

type CreatePPOBKasirRequest struct {
	BusinessID          string             `json:"business_id" validate:"required"`
	Tanggal             string             `json:"tanggal" validate:"required"`
	SetoranLoket        []SetoranLoketItem `json:"setoran_loket" validate:"dive"`
	SetoranLoketLuar    decimal.Decimal    `json:"setoran_loket_luar"`
	PenerimaanAdmin     decimal.Decimal    `json:"penerimaan_admin"`
	TopupSaldo          []TopupSaldoItem   `json:"topup_saldo" validate:"dive"`
	PenerimaanKasKecil  decimal.Decimal    `json:"penerimaan_kas_kecil"`
	PenguranganKasKecil decimal.Decimal    `json:"pengurangan_kas_kecil"`
	Notes               string             `json:"notes"`
}

type JournalFilter struct {
	BusinessID    string
	Account       string
	ReferenceType string
	ReferenceID   string
	StartDate     string
	EndDate       string
	Limit         int
}

type PPOBShiftFilter struct {
	BusinessID    string
	Tanggal       string
	StatusSetoran string
	// TanggalBefore selects shifts dated strictly before the given day.
	TanggalBefore string
}

// AccountBalance is Σdebits − Σcredits of a named account.
type AccountBalance struct {
	Account     string          `json:"account"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalKredit decimal.Decimal `json:"total_kredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountLedgerLine is a journal line seen from one account.
type AccountLedgerLine struct {
	JournalLine
	Debit          decimal.Decimal `json:"debit"`
	Kredit         decimal.Decimal `json:"kredit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

type AccountLedger struct {
	Account string              `json:"account"`
	Lines   []AccountLedgerLine `json:"lines"`
	Balance decimal.Decimal     `json:"balance"`
}

type ProfitLoss struct {
	Period       Period          `json:"period"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}
