package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/metrics"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PPOBService runs the PPOB sub-ledger: loket shifts create receivables,
// cashier settlements collect them, and every movement is a balanced
// journal pair.
type PPOBService struct {
	Repo PPOBStore
}

func NewPPOBService(repo PPOBStore) *PPOBService {
	return &PPOBService{Repo: repo}
}

func (s *PPOBService) SubmitShift(ctx context.Context, req *models.CreatePPOBShiftRequest, createdBy string) (*models.ShiftReportResult, error) {
	if _, err := timeutil.ParseDate(req.Tanggal); err != nil {
		return nil, apperror.InvalidArgument("invalid tanggal %q, expected YYYY-MM-DD", req.Tanggal)
	}
	if req.Shift < 1 || req.Shift > 3 {
		return nil, apperror.InvalidArgument("shift must be between 1 and 3")
	}

	channels := make([]models.PPOBChannel, len(req.Channels))
	totalPenjualan := decimal.Zero
	for i, ch := range req.Channels {
		if ch.TotalPenjualan.IsNegative() {
			return nil, apperror.InvalidArgument("total_penjualan of %s must not be negative", ch.Channel)
		}
		ch.SisaSetoran = ch.TotalPenjualan
		ch.SaldoAkhir = ch.SaldoAwal.Add(ch.SaldoInject).Sub(ch.TotalPenjualan)
		channels[i] = ch
		totalPenjualan = totalPenjualan.Add(ch.TotalPenjualan)
	}

	shift := &models.PPOBShiftReport{
		ID:               uuid.NewString(),
		BusinessID:       req.BusinessID,
		Tanggal:          req.Tanggal,
		Shift:            req.Shift,
		NamaPetugas:      req.NamaPetugas,
		Channels:         channels,
		TotalPenjualan:   totalPenjualan,
		TotalSisaSetoran: totalPenjualan,
		StatusSetoran:    models.StatusBelumDisetor,
		Notes:            req.Notes,
		CreatedBy:        createdBy,
		CreatedAt:        timeutil.Now(),
	}
	if err := s.Repo.CreateShift(ctx, shift); err != nil {
		return nil, err
	}

	created, err := s.postJournal(ctx, "ppob_loket", shift.ID, shiftJournal(shift, timeutil.Now()))
	if err != nil {
		return nil, err
	}

	return &models.ShiftReportResult{
		ID:                  shift.ID,
		Type:                models.ReportPPOBLoket,
		Total:               shift.TotalPenjualan,
		StatusSetoran:       shift.StatusSetoran,
		TransactionsCreated: created,
	}, nil
}

// SubmitKasir records a cashier settlement. Every referenced loket shift
// must exist, belong to the business and still be Belum Disetor before
// anything is written. The store settles the shifts together with the
// report, so a shift is collected at most once.
func (s *PPOBService) SubmitKasir(ctx context.Context, req *models.CreatePPOBKasirRequest, createdBy string) (*models.ShiftReportResult, error) {
	if _, err := timeutil.ParseDate(req.Tanggal); err != nil {
		return nil, apperror.InvalidArgument("invalid tanggal %q, expected YYYY-MM-DD", req.Tanggal)
	}
	for field, amount := range map[string]decimal.Decimal{
		"setoran_loket_luar":    req.SetoranLoketLuar,
		"penerimaan_admin":      req.PenerimaanAdmin,
		"penerimaan_kas_kecil":  req.PenerimaanKasKecil,
		"pengurangan_kas_kecil": req.PenguranganKasKecil,
	} {
		if amount.IsNegative() {
			return nil, apperror.InvalidArgument("%s must not be negative", field)
		}
	}
	for _, t := range req.TopupSaldo {
		if t.Amount.IsNegative() {
			return nil, apperror.InvalidArgument("topup for %s must not be negative", t.Channel)
		}
	}
	seen := make(map[string]bool, len(req.SetoranLoket))
	for _, item := range req.SetoranLoket {
		if item.Amount.IsNegative() {
			return nil, apperror.InvalidArgument("setoran for shift %s must not be negative", item.LoketReportID)
		}
		if seen[item.LoketReportID] {
			return nil, apperror.InvalidArgument("ppob loket shift %s is listed more than once", item.LoketReportID)
		}
		seen[item.LoketReportID] = true

		shift, err := s.Repo.GetShift(ctx, item.LoketReportID)
		if err != nil {
			return nil, err
		}
		if shift == nil {
			return nil, apperror.NotFound("ppob loket shift %s not found", item.LoketReportID)
		}
		if shift.BusinessID != req.BusinessID {
			return nil, apperror.InvalidArgument("ppob loket shift %s belongs to another business", item.LoketReportID)
		}
		if shift.StatusSetoran != models.StatusBelumDisetor {
			return nil, apperror.Conflict("ppob loket shift %s is already %s", item.LoketReportID, shift.StatusSetoran)
		}
		if !item.Amount.Equal(shift.TotalSisaSetoran) {
			config.GetLogger().WithFields(logrus.Fields{
				"module":      "ppob",
				"shift_id":    shift.ID,
				"outstanding": shift.TotalSisaSetoran.String(),
				"setoran":     item.Amount.String(),
				"selisih":     item.Amount.Sub(shift.TotalSisaSetoran).String(),
			}).Warn("setoran does not match the shift's outstanding balance")
		}
	}

	report := &models.PPOBKasirReport{
		ID:                  uuid.NewString(),
		BusinessID:          req.BusinessID,
		Tanggal:             req.Tanggal,
		SetoranLoket:        req.SetoranLoket,
		SetoranLoketLuar:    req.SetoranLoketLuar,
		PenerimaanAdmin:     req.PenerimaanAdmin,
		TopupSaldo:          req.TopupSaldo,
		PenerimaanKasKecil:  req.PenerimaanKasKecil,
		PenguranganKasKecil: req.PenguranganKasKecil,
		SaldoKasKecil:       req.PenerimaanKasKecil.Sub(req.PenguranganKasKecil),
		Notes:               req.Notes,
		CreatedBy:           createdBy,
		CreatedAt:           timeutil.Now(),
	}
	if err := s.Repo.CreateKasirReport(ctx, report); err != nil {
		return nil, err
	}

	return s.settleKasir(ctx, report)
}

// Resync re-posts the journal of a stored PPOB report.
func (s *PPOBService) Resync(ctx context.Context, reportType models.ReportType, id string) (*models.ShiftReportResult, error) {
	switch reportType {
	case models.ReportPPOBLoket:
		shift, err := s.Repo.GetShift(ctx, id)
		if err != nil {
			return nil, err
		}
		if shift == nil {
			return nil, apperror.NotFound("ppob loket shift %s not found", id)
		}
		created, err := s.postJournal(ctx, "ppob_loket", shift.ID, shiftJournal(shift, timeutil.Now()))
		if err != nil {
			return nil, err
		}
		return &models.ShiftReportResult{ID: id, Type: reportType, Total: shift.TotalPenjualan, StatusSetoran: shift.StatusSetoran, TransactionsCreated: created}, nil

	case models.ReportPPOBKasir:
		report, err := s.Repo.GetKasirReport(ctx, id)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, apperror.NotFound("ppob kasir report %s not found", id)
		}
		return s.settleKasir(ctx, report)
	}
	return nil, apperror.InvalidArgument("unknown report type %q", reportType)
}

func (s *PPOBService) settleKasir(ctx context.Context, report *models.PPOBKasirReport) (*models.ShiftReportResult, error) {
	created, err := s.postJournal(ctx, "ppob_kasir", report.ID, kasirJournal(report, timeutil.Now()))
	if err != nil {
		return nil, err
	}

	status := ""
	if len(report.SetoranLoket) > 0 {
		status = models.StatusLunas
	}

	total := report.SetoranLoketLuar.Add(report.PenerimaanAdmin)
	for _, item := range report.SetoranLoket {
		total = total.Add(item.Amount)
	}

	return &models.ShiftReportResult{
		ID:                  report.ID,
		Type:                models.ReportPPOBKasir,
		Total:               total,
		StatusSetoran:       status,
		TransactionsCreated: created,
	}, nil
}

func (s *PPOBService) postJournal(ctx context.Context, source, reportID string, lines []models.JournalLine) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	created, err := s.Repo.InsertJournalLines(ctx, lines)
	if err != nil {
		metrics.SyncFailures.WithLabelValues(source).Inc()
		config.LogError(config.GetLogger(), "ppob", "postJournal", source+" journal", reportID, err)
		return 0, apperror.PartialFailure(reportID, err)
	}
	return created, nil
}

func (s *PPOBService) ListShifts(ctx context.Context, filter models.PPOBShiftFilter) ([]models.PPOBShiftReport, error) {
	return s.Repo.ListShifts(ctx, filter)
}

func (s *PPOBService) Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalLine, error) {
	if err := validateRange(filter.StartDate, filter.EndDate); err != nil {
		return nil, err
	}
	return s.Repo.ListJournal(ctx, filter)
}

// AccountLedger lists the journal lines touching account with a running
// balance of debits minus credits.
func (s *PPOBService) AccountLedger(ctx context.Context, filter models.JournalFilter) (*models.AccountLedger, error) {
	if filter.Account == "" {
		return nil, apperror.InvalidArgument("account is required")
	}
	lines, err := s.Journal(ctx, filter)
	if err != nil {
		return nil, err
	}

	ledger := &models.AccountLedger{Account: filter.Account, Lines: []models.AccountLedgerLine{}}
	running := decimal.Zero
	for _, l := range lines {
		line := models.AccountLedgerLine{JournalLine: l, Debit: decimal.Zero, Kredit: decimal.Zero}
		if l.DebitAccount == filter.Account {
			line.Debit = l.DebitAmount
		}
		if l.KreditAccount == filter.Account {
			line.Kredit = l.KreditAmount
		}
		running = running.Add(line.Debit).Sub(line.Kredit)
		line.RunningBalance = running
		ledger.Lines = append(ledger.Lines, line)
	}
	ledger.Balance = running
	return ledger, nil
}

// Balances returns Σdebits − Σcredits for every account seen in the
// journal, sorted by account name.
func (s *PPOBService) Balances(ctx context.Context, filter models.JournalFilter) ([]models.AccountBalance, error) {
	filter.Account = ""
	lines, err := s.Journal(ctx, filter)
	if err != nil {
		return nil, err
	}
	return accountBalances(lines), nil
}

func (s *PPOBService) ProfitLoss(ctx context.Context, filter models.JournalFilter) (*models.ProfitLoss, error) {
	filter.Account = ""
	lines, err := s.Journal(ctx, filter)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	expenses := decimal.Zero
	for _, l := range lines {
		if strings.HasPrefix(l.KreditAccount, models.RevenueAccountPrefix) {
			revenue = revenue.Add(l.KreditAmount)
		}
		if strings.HasPrefix(l.DebitAccount, models.RevenueAccountPrefix) {
			revenue = revenue.Sub(l.DebitAmount)
		}
		if strings.HasPrefix(l.DebitAccount, models.ExpenseAccountPrefix) {
			expenses = expenses.Add(l.DebitAmount)
		}
		if strings.HasPrefix(l.KreditAccount, models.ExpenseAccountPrefix) {
			expenses = expenses.Sub(l.KreditAmount)
		}
	}

	net := revenue.Sub(expenses)
	return &models.ProfitLoss{
		Period:       models.Period{StartDate: filter.StartDate, EndDate: filter.EndDate},
		Revenue:      revenue,
		Expenses:     expenses,
		NetProfit:    net,
		ProfitMargin: models.Percentage(net, revenue),
	}, nil
}

func accountBalances(lines []models.JournalLine) []models.AccountBalance {
	byAccount := map[string]*models.AccountBalance{}
	get := func(name string) *models.AccountBalance {
		b, ok := byAccount[name]
		if !ok {
			b = &models.AccountBalance{Account: name, TotalDebit: decimal.Zero, TotalKredit: decimal.Zero}
			byAccount[name] = b
		}
		return b
	}
	for _, l := range lines {
		d := get(l.DebitAccount)
		d.TotalDebit = d.TotalDebit.Add(l.DebitAmount)
		k := get(l.KreditAccount)
		k.TotalKredit = k.TotalKredit.Add(l.KreditAmount)
	}

	balances := make([]models.AccountBalance, 0, len(byAccount))
	for _, b := range byAccount {
		b.Balance = b.TotalDebit.Sub(b.TotalKredit)
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].Account < balances[j].Account })
	return balances
}

type posting struct {
	event   string
	desc    string
	debit   string
	kredit  string
	amount  decimal.Decimal
	refType string
}

func journalLines(businessID, tanggal, refID, createdBy, keyPrefix string, postings []posting, now time.Time) []models.JournalLine {
	var lines []models.JournalLine
	for _, p := range postings {
		if !p.amount.IsPositive() {
			continue
		}
		lines = append(lines, models.JournalLine{
			ID:            uuid.NewString(),
			BusinessID:    businessID,
			Tanggal:       tanggal,
			Description:   p.desc,
			DebitAccount:  p.debit,
			DebitAmount:   p.amount,
			KreditAccount: p.kredit,
			KreditAmount:  p.amount,
			ReferenceType: p.refType,
			ReferenceID:   refID,
			CreatedBy:     createdBy,
			CreatedAt:     now,
			SyncKey:       keyPrefix + ":" + refID + ":" + p.event,
		})
	}
	return lines
}

func shiftJournal(shift *models.PPOBShiftReport, now time.Time) []models.JournalLine {
	return journalLines(shift.BusinessID, shift.Tanggal, shift.ID, shift.CreatedBy, "ppob_shift", []posting{{
		event:   "penjualan",
		desc:    fmt.Sprintf("Penjualan PPOB shift %d - %s", shift.Shift, shift.NamaPetugas),
		debit:   models.AccountPiutangSetoranLoket,
		kredit:  models.AccountPendapatanPPOB,
		amount:  shift.TotalPenjualan,
		refType: models.JournalRefPPOBLoketShift,
	}}, now)
}

func kasirJournal(r *models.PPOBKasirReport, now time.Time) []models.JournalLine {
	var postings []posting
	for i, item := range r.SetoranLoket {
		postings = append(postings, posting{
			event:   fmt.Sprintf("setoran_loket:%d:%s", i, item.LoketReportID),
			desc:    "Setoran loket shift " + item.LoketReportID,
			debit:   models.AccountKas,
			kredit:  models.AccountPiutangSetoranLoket,
			amount:  item.Amount,
			refType: models.JournalRefPPOBKasirReport,
		})
	}

	topup := decimal.Zero
	for _, t := range r.TopupSaldo {
		topup = topup.Add(t.Amount)
	}

	postings = append(postings,
		posting{event: "loket_luar", desc: "Setoran loket luar", debit: models.AccountKas,
			kredit: models.AccountPendapatanLoketLuar, amount: r.SetoranLoketLuar, refType: models.JournalRefPPOBKasirReport},
		posting{event: "admin", desc: "Penerimaan admin", debit: models.AccountKas,
			kredit: models.AccountPendapatanAdmin, amount: r.PenerimaanAdmin, refType: models.JournalRefPPOBKasirReport},
		posting{event: "topup", desc: fmt.Sprintf("Topup saldo %d channel", len(r.TopupSaldo)), debit: models.AccountModalSaldoPPOB,
			kredit: models.AccountKas, amount: topup, refType: models.JournalRefPPOBKasirReport},
		posting{event: "kas_kecil_keluar", desc: "Pengurangan kas kecil", debit: models.AccountBiayaOperasional,
			kredit: models.AccountKasKecil, amount: r.PenguranganKasKecil, refType: models.JournalRefPPOBKasirReport},
		posting{event: "kas_kecil_masuk", desc: "Penerimaan kas kecil", debit: models.AccountKasKecil,
			kredit: models.AccountKas, amount: r.PenerimaanKasKecil, refType: models.JournalRefPPOBKasirReport},
	)

	return journalLines(r.BusinessID, r.Tanggal, r.ID, r.CreatedBy, "ppob_kasir", postings, now)
}

// validateRange checks optional YYYY-MM-DD bounds.
func validateRange(start, end string) error {
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, err := timeutil.ParseDate(d); err != nil {
			return apperror.InvalidArgument("invalid date %q, expected YYYY-MM-DD", d)
		}
	}
	if start != "" && end != "" && start > end {
		return apperror.InvalidArgument("start_date must not be after end_date")
	}
	return nil
}
