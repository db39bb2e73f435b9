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

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type LedgerRepository struct {
	DB *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

const ledgerColumns = `id, transaction_code, business_id, transaction_type, category,
	COALESCE(description, ''), amount, COALESCE(payment_method, ''),
	COALESCE(reference_number, ''), order_id, COALESCE(created_by, ''), created_at`

// Insert appends an entry. When the entry carries a sync key that was
// already written, nothing is inserted and created is false.
func (r *LedgerRepository) Insert(ctx context.Context, entry *models.LedgerEntry) (created bool, err error) {
	return insertLedgerEntry(ctx, r.DB, entry)
}

func insertLedgerEntry(ctx context.Context, q Querier, entry *models.LedgerEntry) (bool, error) {
	query := `
		INSERT INTO ledger_entries (
			id, transaction_code, business_id, transaction_type, category,
			description, amount, payment_method, reference_number, order_id,
			created_by, created_at, sync_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, ''))
		ON CONFLICT (sync_key) DO NOTHING
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.TransactionCode,
		entry.BusinessID,
		entry.TransactionType,
		entry.Category,
		entry.Description,
		entry.Amount,
		entry.PaymentMethod,
		nullIfEmpty(entry.ReferenceNumber),
		entry.OrderID,
		entry.CreatedBy,
		entry.CreatedAt,
		entry.SyncKey,
	).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create ledger entry: %w", translate(err))
	}
	return true, nil
}

// Get returns a single entry by id.
func (r *LedgerRepository) Get(ctx context.Context, id string) (*models.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`

	e, err := scanLedgerEntry(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return e, nil
}

// List returns entries matching the filter, newest first.
func (r *LedgerRepository) List(ctx context.Context, filter models.LedgerFilter) ([]models.LedgerEntry, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.BusinessID != "" {
		conditions = append(conditions, fmt.Sprintf("business_id = $%d", argNum))
		args = append(args, filter.BusinessID)
		argNum++
	}

	if filter.TransactionType != "" {
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", argNum))
		args = append(args, filter.TransactionType)
		argNum++
	}

	if len(filter.Categories) > 0 {
		cats := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			cats[i] = string(c)
		}
		conditions = append(conditions, fmt.Sprintf("category = ANY($%d)", argNum))
		args = append(args, cats)
		argNum++
	}

	if filter.ReferenceNumber != "" {
		conditions = append(conditions, fmt.Sprintf("reference_number = $%d", argNum))
		args = append(args, filter.ReferenceNumber)
		argNum++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argNum))
		args = append(args, filter.StartDate)
		argNum++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argNum))
		args = append(args, filter.EndDate)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM ledger_entries
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, ledgerColumns, whereClause, argNum, argNum+1)

	args = append(args, limit, filter.Offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}

func scanLedgerEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var e models.LedgerEntry
	err := row.Scan(
		&e.ID, &e.TransactionCode, &e.BusinessID, &e.TransactionType, &e.Category,
		&e.Description, &e.Amount, &e.PaymentMethod,
		&e.ReferenceNumber, &e.OrderID, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
