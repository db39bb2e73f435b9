package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loket-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShiftReportRepository stores loket and kasir daily reports. Channel
// breakdowns are kept as JSONB next to the report row.
type ShiftReportRepository struct {
	DB *pgxpool.Pool
}

func NewShiftReportRepository(db *pgxpool.Pool) *ShiftReportRepository {
	return &ShiftReportRepository{DB: db}
}

func (r *ShiftReportRepository) CreateLoket(ctx context.Context, report *models.LoketReport) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO loket_reports (
			id, business_id, report_date, shift, nama_petugas, bank_balances,
			total_setoran_shift, notes, created_by, created_at
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10)`,
		report.ID, report.BusinessID, report.ReportDate, report.Shift, report.NamaPetugas,
		report.BankBalances, report.TotalSetoranShift, report.Notes, report.CreatedBy, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create loket report: %w", translate(err))
	}
	return nil
}

func (r *ShiftReportRepository) GetLoket(ctx context.Context, id string) (*models.LoketReport, error) {
	rep, err := scanLoket(r.DB.QueryRow(ctx, `SELECT `+loketColumns+` FROM loket_reports WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loket report: %w", err)
	}
	return rep, nil
}

func (r *ShiftReportRepository) ListLoket(ctx context.Context, filter models.ReportFilter) ([]models.LoketReport, error) {
	where, args := reportWhere(filter)
	rows, err := r.DB.Query(ctx,
		`SELECT `+loketColumns+` FROM loket_reports `+where+` ORDER BY report_date DESC, shift`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loket reports: %w", err)
	}
	defer rows.Close()

	var reports []models.LoketReport
	for rows.Next() {
		rep, err := scanLoket(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	return reports, rows.Err()
}

func (r *ShiftReportRepository) CreateKasir(ctx context.Context, report *models.KasirReport) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO kasir_reports (
			id, business_id, report_date, setoran_pagi, setoran_siang, setoran_sore,
			total_admin, belanja_loket, penerimaan_kas_kecil, pengurangan_kas_kecil,
			topup_transfers, notes, created_by, created_at
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		report.ID, report.BusinessID, report.ReportDate, report.SetoranPagi, report.SetoranSiang,
		report.SetoranSore, report.TotalAdmin, report.BelanjaLoket, report.PenerimaanKasKecil,
		report.PenguranganKasKecil, report.TopupTransfers, report.Notes, report.CreatedBy, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create kasir report: %w", translate(err))
	}
	return nil
}

func (r *ShiftReportRepository) GetKasir(ctx context.Context, id string) (*models.KasirReport, error) {
	rep, err := scanKasir(r.DB.QueryRow(ctx, `SELECT `+kasirColumns+` FROM kasir_reports WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kasir report: %w", err)
	}
	return rep, nil
}

func (r *ShiftReportRepository) ListKasir(ctx context.Context, filter models.ReportFilter) ([]models.KasirReport, error) {
	where, args := reportWhere(filter)
	rows, err := r.DB.Query(ctx,
		`SELECT `+kasirColumns+` FROM kasir_reports `+where+` ORDER BY report_date DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list kasir reports: %w", err)
	}
	defer rows.Close()

	var reports []models.KasirReport
	for rows.Next() {
		rep, err := scanKasir(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	return reports, rows.Err()
}

const loketColumns = `id, business_id, to_char(report_date, 'YYYY-MM-DD'), shift,
	COALESCE(nama_petugas, ''), bank_balances, total_setoran_shift, COALESCE(notes, ''),
	COALESCE(created_by, ''), created_at`

const kasirColumns = `id, business_id, to_char(report_date, 'YYYY-MM-DD'), setoran_pagi,
	setoran_siang, setoran_sore, total_admin, belanja_loket, penerimaan_kas_kecil,
	pengurangan_kas_kecil, topup_transfers, COALESCE(notes, ''), COALESCE(created_by, ''), created_at`

func scanLoket(row pgx.Row) (*models.LoketReport, error) {
	var rep models.LoketReport
	err := row.Scan(
		&rep.ID, &rep.BusinessID, &rep.ReportDate, &rep.Shift, &rep.NamaPetugas,
		&rep.BankBalances, &rep.TotalSetoranShift, &rep.Notes, &rep.CreatedBy, &rep.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func scanKasir(row pgx.Row) (*models.KasirReport, error) {
	var rep models.KasirReport
	err := row.Scan(
		&rep.ID, &rep.BusinessID, &rep.ReportDate, &rep.SetoranPagi, &rep.SetoranSiang,
		&rep.SetoranSore, &rep.TotalAdmin, &rep.BelanjaLoket, &rep.PenerimaanKasKecil,
		&rep.PenguranganKasKecil, &rep.TopupTransfers, &rep.Notes, &rep.CreatedBy, &rep.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// reportWhere builds the WHERE clause shared by both report tables.
func reportWhere(filter models.ReportFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.BusinessID != "" {
		conditions = append(conditions, fmt.Sprintf("business_id = $%d", argNum))
		args = append(args, filter.BusinessID)
		argNum++
	}
	if filter.ReportDate != "" {
		conditions = append(conditions, fmt.Sprintf("report_date = $%d::date", argNum))
		args = append(args, filter.ReportDate)
		argNum++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("report_date >= $%d::date", argNum))
		args = append(args, filter.StartDate)
		argNum++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("report_date <= $%d::date", argNum))
		args = append(args, filter.EndDate)
		argNum++
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
