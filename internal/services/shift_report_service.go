package services

import (
	"context"
	"fmt"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/metrics"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShiftReportService stores loket and kasir reports and derives their
// ledger entries. The report row is written first; derived entries carry
// sync keys so Resync can finish a partially synced report.
type ShiftReportService struct {
	Reports ShiftReportStore
	Ledger  *LedgerService
}

func NewShiftReportService(reports ShiftReportStore, ledger *LedgerService) *ShiftReportService {
	return &ShiftReportService{Reports: reports, Ledger: ledger}
}

func (s *ShiftReportService) SubmitLoket(ctx context.Context, req *models.CreateLoketReportRequest, createdBy string) (*models.ShiftReportResult, error) {
	if _, err := timeutil.ParseDate(req.ReportDate); err != nil {
		return nil, apperror.InvalidArgument("invalid report_date %q, expected YYYY-MM-DD", req.ReportDate)
	}
	if req.Shift < 1 || req.Shift > 3 {
		return nil, apperror.InvalidArgument("shift must be between 1 and 3")
	}
	total := decimal.Zero
	for _, b := range req.BankBalances {
		if b.SisaSetoran.IsNegative() {
			return nil, apperror.InvalidArgument("sisa_setoran of %s must not be negative", b.BankName)
		}
		total = total.Add(b.SisaSetoran)
	}

	report := &models.LoketReport{
		ID:                uuid.NewString(),
		BusinessID:        req.BusinessID,
		ReportDate:        req.ReportDate,
		Shift:             req.Shift,
		NamaPetugas:       req.NamaPetugas,
		BankBalances:      req.BankBalances,
		TotalSetoranShift: total,
		Notes:             req.Notes,
		CreatedBy:         createdBy,
		CreatedAt:         timeutil.Now(),
	}
	if err := s.Reports.CreateLoket(ctx, report); err != nil {
		return nil, err
	}

	created, err := s.syncEntries(ctx, "loket", report.ID, loketEntries(report, timeutil.Now()))
	if err != nil {
		return nil, err
	}

	return &models.ShiftReportResult{
		ID:                  report.ID,
		Type:                models.ReportLoket,
		Total:               report.TotalSetoranShift,
		TransactionsCreated: created,
	}, nil
}

func (s *ShiftReportService) SubmitKasir(ctx context.Context, req *models.CreateKasirReportRequest, createdBy string) (*models.ShiftReportResult, error) {
	if _, err := timeutil.ParseDate(req.ReportDate); err != nil {
		return nil, apperror.InvalidArgument("invalid report_date %q, expected YYYY-MM-DD", req.ReportDate)
	}
	amounts := map[string]decimal.Decimal{
		"setoran_pagi":          req.SetoranPagi,
		"setoran_siang":         req.SetoranSiang,
		"setoran_sore":          req.SetoranSore,
		"total_admin":           req.TotalAdmin,
		"belanja_loket":         req.BelanjaLoket,
		"penerimaan_kas_kecil":  req.PenerimaanKasKecil,
		"pengurangan_kas_kecil": req.PenguranganKasKecil,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			return nil, apperror.InvalidArgument("%s must not be negative", field)
		}
	}
	for _, t := range req.TopupTransfers {
		if t.Amount.IsNegative() {
			return nil, apperror.InvalidArgument("topup amount for %s must not be negative", t.BankName)
		}
	}

	report := &models.KasirReport{
		ID:                  uuid.NewString(),
		BusinessID:          req.BusinessID,
		ReportDate:          req.ReportDate,
		SetoranPagi:         req.SetoranPagi,
		SetoranSiang:        req.SetoranSiang,
		SetoranSore:         req.SetoranSore,
		TotalAdmin:          req.TotalAdmin,
		BelanjaLoket:        req.BelanjaLoket,
		PenerimaanKasKecil:  req.PenerimaanKasKecil,
		PenguranganKasKecil: req.PenguranganKasKecil,
		TopupTransfers:      req.TopupTransfers,
		Notes:               req.Notes,
		CreatedBy:           createdBy,
		CreatedAt:           timeutil.Now(),
	}
	if err := s.Reports.CreateKasir(ctx, report); err != nil {
		return nil, err
	}

	created, err := s.syncEntries(ctx, "kasir", report.ID, kasirEntries(report, timeutil.Now()))
	if err != nil {
		return nil, err
	}

	return &models.ShiftReportResult{
		ID:                  report.ID,
		Type:                models.ReportKasir,
		Total:               report.ReportedTotal(),
		TransactionsCreated: created,
	}, nil
}

// Resync re-derives the ledger entries of a stored report. Entries that
// were already written are skipped.
func (s *ShiftReportService) Resync(ctx context.Context, reportType models.ReportType, id string) (*models.ShiftReportResult, error) {
	now := timeutil.Now()

	switch reportType {
	case models.ReportLoket:
		report, err := s.Reports.GetLoket(ctx, id)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, apperror.NotFound("loket report %s not found", id)
		}
		created, err := s.syncEntries(ctx, "loket", report.ID, loketEntries(report, now))
		if err != nil {
			return nil, err
		}
		return &models.ShiftReportResult{ID: id, Type: reportType, Total: report.TotalSetoranShift, TransactionsCreated: created}, nil

	case models.ReportKasir:
		report, err := s.Reports.GetKasir(ctx, id)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, apperror.NotFound("kasir report %s not found", id)
		}
		created, err := s.syncEntries(ctx, "kasir", report.ID, kasirEntries(report, now))
		if err != nil {
			return nil, err
		}
		return &models.ShiftReportResult{ID: id, Type: reportType, Total: report.ReportedTotal(), TransactionsCreated: created}, nil
	}

	return nil, apperror.InvalidArgument("unknown report type %q", reportType)
}

func (s *ShiftReportService) ListLoket(ctx context.Context, filter models.ReportFilter) ([]models.LoketReport, error) {
	return s.Reports.ListLoket(ctx, filter)
}

func (s *ShiftReportService) ListKasir(ctx context.Context, filter models.ReportFilter) ([]models.KasirReport, error) {
	return s.Reports.ListKasir(ctx, filter)
}

// syncEntries records entries in order and stops at the first failure.
func (s *ShiftReportService) syncEntries(ctx context.Context, source, reportID string, entries []*models.LedgerEntry) (int, error) {
	created := 0
	for _, e := range entries {
		ok, err := s.Ledger.Record(ctx, e)
		if err != nil {
			metrics.SyncFailures.WithLabelValues(source).Inc()
			config.LogError(config.GetLogger(), "shift_report", "syncEntries",
				fmt.Sprintf("%s sync of %s", source, e.Category),
				map[string]string{"report_id": reportID, "sync_key": e.SyncKey}, err)
			return created, apperror.PartialFailure(reportID, err)
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// loketEntries derives the ledger consequence of a loket report.
func loketEntries(r *models.LoketReport, now time.Time) []*models.LedgerEntry {
	if !r.TotalSetoranShift.IsPositive() {
		return nil
	}
	return []*models.LedgerEntry{
		newLedgerEntry(entryFields{
			businessID: r.BusinessID,
			txType:     models.TransactionIncome,
			category:   models.CategorySetoranLoket,
			desc:       fmt.Sprintf("Setoran harian loket shift %d - %s", r.Shift, r.NamaPetugas),
			amount:     r.TotalSetoranShift,
			reference:  r.Reference(),
			createdBy:  r.CreatedBy,
			syncKey:    "loket:" + r.ID + ":setoran",
		}, now),
	}
}

// kasirEntries derives up to five entries from a kasir report; zero lines
// produce nothing.
func kasirEntries(r *models.KasirReport, now time.Time) []*models.LedgerEntry {
	var entries []*models.LedgerEntry
	add := func(event string, txType models.TransactionType, category models.Category, desc string, amount decimal.Decimal, suffix string) {
		if amount.IsZero() {
			return
		}
		entries = append(entries, newLedgerEntry(entryFields{
			businessID: r.BusinessID,
			txType:     txType,
			category:   category,
			desc:       desc,
			amount:     amount.Abs(),
			reference:  models.KasirReference(r.ReportDate, suffix),
			createdBy:  r.CreatedBy,
			syncKey:    "kasir:" + r.ID + ":" + event,
		}, now))
	}

	add("setoran", models.TransactionIncome, models.CategorySetoranKasir,
		fmt.Sprintf("Total setoran harian kasir (Pagi: %s, Siang: %s, Sore: %s)",
			r.SetoranPagi.String(), r.SetoranSiang.String(), r.SetoranSore.String()),
		r.TotalSetoran(), "")
	add("belanja", models.TransactionExpense, models.CategoryBelanjaOperasional,
		"Belanja loket harian", r.BelanjaLoket, "BELANJA")
	add("admin", models.TransactionIncome, models.CategoryAdminFee,
		"Pendapatan admin harian", r.TotalAdmin, "ADMIN")
	add("kaskecil", models.TransactionTransfer, models.CategoryKasKecil,
		fmt.Sprintf("Mutasi kas kecil (masuk: %s, keluar: %s)",
			r.PenerimaanKasKecil.String(), r.PenguranganKasKecil.String()),
		r.KasKecilNet(), "KASKECIL")
	add("topup", models.TransactionTransfer, models.CategoryTopupSaldo,
		fmt.Sprintf("Topup saldo %d channel", len(r.TopupTransfers)), r.TotalTopup(), "TOPUP")

	return entries
}
