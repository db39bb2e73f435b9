package models

import "github.com/shopspring/decimal"

type ReconciliationStatus string

const (
	StatusMatched     ReconciliationStatus = "MATCHED"
	StatusDiscrepancy ReconciliationStatus = "DISCREPANCY"
)

// CategoryComparison is reported vs ledger for one report line.
type CategoryComparison struct {
	Reported   decimal.Decimal `json:"reported"`
	Actual     decimal.Decimal `json:"actual"`
	Difference decimal.Decimal `json:"difference"`
}

// Discrepancy is a report line whose difference exceeds its tolerance.
type Discrepancy struct {
	Category   string          `json:"category"`
	Reported   decimal.Decimal `json:"reported"`
	Actual     decimal.Decimal `json:"actual"`
	Difference decimal.Decimal `json:"difference"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BankCheck is the internal consistency check of a loket bank channel.
type BankCheck struct {
	BankName              string          `json:"bank_name"`
	ReportedSaldoAkhir    decimal.Decimal `json:"reported_saldo_akhir"`
	CalculatedSaldoAkhir  decimal.Decimal `json:"calculated_saldo_akhir"`
	ReportedSisaSetoran   decimal.Decimal `json:"sisa_setoran"`
	CalculatedSisaSetoran decimal.Decimal `json:"calculated_sisa_setoran"`
	Difference            decimal.Decimal `json:"difference"`
	IsBalanced            bool            `json:"is_balanced"`
}

// ReconciliationResult is derived per report and never persisted.
type ReconciliationResult struct {
	ReportID              string                        `json:"report_id"`
	ReportType            ReportType                    `json:"report_type"`
	ReportDate            string                        `json:"report_date"`
	BusinessID            string                        `json:"business_id"`
	Shift                 int                           `json:"shift,omitempty"`
	NamaPetugas           string                        `json:"nama_petugas,omitempty"`
	Status                ReconciliationStatus          `json:"status"`
	ReportedTotal         decimal.Decimal               `json:"reported_total"`
	ActualTotal           decimal.Decimal               `json:"actual_total"`
	TotalDifference       decimal.Decimal               `json:"total_difference"`
	Breakdown             map[string]CategoryComparison `json:"breakdown"`
	BankReconciliation    []BankCheck                   `json:"bank_reconciliation,omitempty"`
	AllBanksBalanced      *bool                         `json:"all_banks_balanced,omitempty"`
	Discrepancies         []Discrepancy                 `json:"discrepancies"`
	RequiresInvestigation bool                          `json:"requires_investigation"`
	CreatedBy             string                        `json:"created_by"`
	Notes                 string                        `json:"notes"`
}

// ReconciliationSummary is the response of a reconciliation run for a date.
type ReconciliationSummary struct {
	ReconciliationDate string                 `json:"reconciliation_date"`
	ReportType         ReportType             `json:"report_type"`
	TotalReports       int                    `json:"total_reports"`
	MatchedReports     int                    `json:"matched_reports"`
	DiscrepancyReports int                    `json:"discrepancy_reports"`
	TotalReported      decimal.Decimal        `json:"total_reported"`
	TotalActual        decimal.Decimal        `json:"total_actual"`
	AccuracyRate       decimal.Decimal        `json:"accuracy_rate"`
	Reports            []ReconciliationResult `json:"reports"`
}

// VerificationSummary compares reported totals against the ledger over a
// date range.
type VerificationSummary struct {
	Period             Period             `json:"period"`
	Summary            VerificationTotals `json:"summary"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Recommendations    []string           `json:"recommendations"`
}

type VerificationTotals struct {
	TotalKasirReports       int             `json:"total_kasir_reports"`
	TotalLoketReports       int             `json:"total_loket_reports"`
	KasirTotalReported      decimal.Decimal `json:"kasir_total_reported"`
	LoketTotalReported      decimal.Decimal `json:"loket_total_reported"`
	ActualTotalTransactions decimal.Decimal `json:"actual_total_transactions"`
	OverallDifference       decimal.Decimal `json:"overall_difference"`
}

type VerificationStatus struct {
	RequiresInvestigation bool            `json:"requires_investigation"`
	ToleranceThreshold    decimal.Decimal `json:"tolerance_threshold"`
	AccuracyRate          decimal.Decimal `json:"accuracy_rate"`
}
