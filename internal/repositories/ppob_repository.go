package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loket-backend/internal/apperror"
	"loket-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PPOBRepository stores PPOB shifts, cashier settlements and the
// double-entry journal they produce.
type PPOBRepository struct {
	DB *pgxpool.Pool
}

func NewPPOBRepository(db *pgxpool.Pool) *PPOBRepository {
	return &PPOBRepository{DB: db}
}

const ppobShiftColumns = `id, business_id, to_char(tanggal, 'YYYY-MM-DD'), shift, COALESCE(nama_petugas, ''),
	channels, total_penjualan, total_sisa_setoran, status_setoran, COALESCE(settled_by, ''),
	COALESCE(notes, ''), COALESCE(created_by, ''), created_at`

func (r *PPOBRepository) CreateShift(ctx context.Context, shift *models.PPOBShiftReport) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO ppob_shift_reports (
			id, business_id, tanggal, shift, nama_petugas, channels, total_penjualan,
			total_sisa_setoran, status_setoran, notes, created_by, created_at
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		shift.ID, shift.BusinessID, shift.Tanggal, shift.Shift, shift.NamaPetugas, shift.Channels,
		shift.TotalPenjualan, shift.TotalSisaSetoran, shift.StatusSetoran, shift.Notes,
		shift.CreatedBy, shift.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ppob shift: %w", translate(err))
	}
	return nil
}

func (r *PPOBRepository) GetShift(ctx context.Context, id string) (*models.PPOBShiftReport, error) {
	s, err := scanPPOBShift(r.DB.QueryRow(ctx, `SELECT `+ppobShiftColumns+` FROM ppob_shift_reports WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ppob shift: %w", err)
	}
	return s, nil
}

func (r *PPOBRepository) ListShifts(ctx context.Context, filter models.PPOBShiftFilter) ([]models.PPOBShiftReport, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.BusinessID != "" {
		conditions = append(conditions, fmt.Sprintf("business_id = $%d", argNum))
		args = append(args, filter.BusinessID)
		argNum++
	}
	if filter.Tanggal != "" {
		conditions = append(conditions, fmt.Sprintf("tanggal = $%d::date", argNum))
		args = append(args, filter.Tanggal)
		argNum++
	}
	if filter.StatusSetoran != "" {
		conditions = append(conditions, fmt.Sprintf("status_setoran = $%d", argNum))
		args = append(args, filter.StatusSetoran)
		argNum++
	}
	if filter.TanggalBefore != "" {
		conditions = append(conditions, fmt.Sprintf("tanggal < $%d::date", argNum))
		args = append(args, filter.TanggalBefore)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.DB.Query(ctx,
		`SELECT `+ppobShiftColumns+` FROM ppob_shift_reports `+whereClause+` ORDER BY tanggal DESC, shift`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ppob shifts: %w", err)
	}
	defer rows.Close()

	var shifts []models.PPOBShiftReport
	for rows.Next() {
		s, err := scanPPOBShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *s)
	}
	return shifts, rows.Err()
}

// CreateKasirReport inserts the report and flips the shifts it settles to
// "Lunas" in one transaction. Only shifts still "Belum Disetor" are
// flipped; if any listed shift was settled already the whole write is
// rolled back.
func (r *PPOBRepository) CreateKasirReport(ctx context.Context, report *models.PPOBKasirReport) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO ppob_kasir_reports (
			id, business_id, tanggal, setoran_loket, setoran_loket_luar, penerimaan_admin,
			topup_saldo, penerimaan_kas_kecil, pengurangan_kas_kecil, saldo_kas_kecil,
			notes, created_by, created_at
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		report.ID, report.BusinessID, report.Tanggal, report.SetoranLoket, report.SetoranLoketLuar,
		report.PenerimaanAdmin, report.TopupSaldo, report.PenerimaanKasKecil, report.PenguranganKasKecil,
		report.SaldoKasKecil, report.Notes, report.CreatedBy, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ppob kasir report: %w", translate(err))
	}

	ids := report.SettledShiftIDs()
	if len(ids) > 0 {
		tag, err := tx.Exec(ctx, `
			UPDATE ppob_shift_reports
			SET status_setoran = $1, settled_by = $2
			WHERE id = ANY($3) AND business_id = $4 AND status_setoran = $5`,
			models.StatusLunas, report.ID, ids, report.BusinessID, models.StatusBelumDisetor,
		)
		if err != nil {
			return fmt.Errorf("failed to settle ppob shifts: %w", err)
		}
		if int(tag.RowsAffected()) != len(ids) {
			return apperror.Conflict("ppob loket shifts %v are not all awaiting settlement", ids)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ppob kasir report: %w", err)
	}
	return nil
}

func (r *PPOBRepository) GetKasirReport(ctx context.Context, id string) (*models.PPOBKasirReport, error) {
	var rep models.PPOBKasirReport
	err := r.DB.QueryRow(ctx, `
		SELECT id, business_id, to_char(tanggal, 'YYYY-MM-DD'), setoran_loket, setoran_loket_luar,
			penerimaan_admin, topup_saldo, penerimaan_kas_kecil, pengurangan_kas_kecil,
			saldo_kas_kecil, COALESCE(notes, ''), COALESCE(created_by, ''), created_at
		FROM ppob_kasir_reports WHERE id = $1`, id,
	).Scan(
		&rep.ID, &rep.BusinessID, &rep.Tanggal, &rep.SetoranLoket, &rep.SetoranLoketLuar,
		&rep.PenerimaanAdmin, &rep.TopupSaldo, &rep.PenerimaanKasKecil, &rep.PenguranganKasKecil,
		&rep.SaldoKasKecil, &rep.Notes, &rep.CreatedBy, &rep.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ppob kasir report: %w", err)
	}
	return &rep, nil
}

// InsertJournalLines writes all pairs in one transaction. Pairs whose sync
// key already exists are skipped; the number of new pairs is returned.
func (r *PPOBRepository) InsertJournalLines(ctx context.Context, lines []models.JournalLine) (int, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	created := 0
	for _, l := range lines {
		tag, err := tx.Exec(ctx, `
			INSERT INTO ppob_journal (
				id, business_id, tanggal, description, debit_account, debit_amount,
				kredit_account, kredit_amount, reference_type, reference_id,
				created_by, created_at, sync_key
			) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, ''))
			ON CONFLICT (sync_key) DO NOTHING`,
			l.ID, l.BusinessID, l.Tanggal, l.Description, l.DebitAccount, l.DebitAmount,
			l.KreditAccount, l.KreditAmount, l.ReferenceType, l.ReferenceID,
			l.CreatedBy, l.CreatedAt, l.SyncKey,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert journal line: %w", err)
		}
		created += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit journal lines: %w", err)
	}
	return created, nil
}

// ListJournal returns journal lines in posting order.
func (r *PPOBRepository) ListJournal(ctx context.Context, filter models.JournalFilter) ([]models.JournalLine, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.BusinessID != "" {
		conditions = append(conditions, fmt.Sprintf("business_id = $%d", argNum))
		args = append(args, filter.BusinessID)
		argNum++
	}
	if filter.Account != "" {
		conditions = append(conditions, fmt.Sprintf("(debit_account = $%d OR kredit_account = $%d)", argNum, argNum))
		args = append(args, filter.Account)
		argNum++
	}
	if filter.ReferenceType != "" {
		conditions = append(conditions, fmt.Sprintf("reference_type = $%d", argNum))
		args = append(args, filter.ReferenceType)
		argNum++
	}
	if filter.ReferenceID != "" {
		conditions = append(conditions, fmt.Sprintf("reference_id = $%d", argNum))
		args = append(args, filter.ReferenceID)
		argNum++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("tanggal >= $%d::date", argNum))
		args = append(args, filter.StartDate)
		argNum++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("tanggal <= $%d::date", argNum))
		args = append(args, filter.EndDate)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 5000
	}

	query := fmt.Sprintf(`
		SELECT id, business_id, to_char(tanggal, 'YYYY-MM-DD'), COALESCE(description, ''),
			debit_account, debit_amount, kredit_account, kredit_amount,
			reference_type, reference_id, COALESCE(created_by, ''), created_at
		FROM ppob_journal
		%s
		ORDER BY tanggal, created_at, id
		LIMIT $%d
	`, whereClause, argNum)
	args = append(args, limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	defer rows.Close()

	var lines []models.JournalLine
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(
			&l.ID, &l.BusinessID, &l.Tanggal, &l.Description,
			&l.DebitAccount, &l.DebitAmount, &l.KreditAccount, &l.KreditAmount,
			&l.ReferenceType, &l.ReferenceID, &l.CreatedBy, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func scanPPOBShift(row pgx.Row) (*models.PPOBShiftReport, error) {
	var s models.PPOBShiftReport
	err := row.Scan(
		&s.ID, &s.BusinessID, &s.Tanggal, &s.Shift, &s.NamaPetugas,
		&s.Channels, &s.TotalPenjualan, &s.TotalSisaSetoran, &s.StatusSetoran, &s.SettledBy,
		&s.Notes, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
