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

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `id, order_number, business_id, customer_name, COALESCE(customer_phone, ''),
	COALESCE(service_type, ''), total_amount, paid_amount, COALESCE(payment_method, ''),
	payment_status, status, assigned_to, completion_date, COALESCE(notes, ''),
	COALESCE(created_by, ''), created_at, updated_at`

// CreateWithEntry inserts the order and, when entry is not nil, its
// payment entry in one transaction.
func (r *OrderRepository) CreateWithEntry(ctx context.Context, order *models.Order, entry *models.LedgerEntry) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, order_number, business_id, customer_name, customer_phone, service_type,
			total_amount, paid_amount, payment_method, payment_status, status,
			notes, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		order.ID, order.OrderNumber, order.BusinessID, order.CustomerName, order.CustomerPhone,
		order.ServiceType, order.TotalAmount, order.PaidAmount, order.PaymentMethod,
		order.PaymentStatus, order.Status, order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", translate(err))
	}

	if entry != nil {
		if _, err := insertLedgerEntry(ctx, tx, entry); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Get returns the order or nil when it does not exist.
func (r *OrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	o, err := scanOrder(r.DB.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

// ApplyUpdate locks the order row, hands the stored image to mutate and
// writes back the result together with the entry mutate returns. The
// stored paid amount seen by mutate is the committed value, never a
// cached one.
func (r *OrderRepository) ApplyUpdate(ctx context.Context, id string, mutate func(current *models.Order) (*models.Order, *models.LedgerEntry, error)) (*models.Order, *models.LedgerEntry, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	current, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, apperror.NotFound("order %s not found", id)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock order: %w", err)
	}

	updated, entry, err := mutate(current)
	if err != nil {
		return nil, nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE orders SET
			paid_amount = $2, payment_method = $3, payment_status = $4, status = $5,
			assigned_to = $6, completion_date = $7, notes = $8, updated_at = $9
		WHERE id = $1`,
		updated.ID, updated.PaidAmount, updated.PaymentMethod, updated.PaymentStatus, updated.Status,
		updated.AssignedTo, updated.CompletionDate, updated.Notes, updated.UpdatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update order: %w", err)
	}

	if entry != nil {
		if _, err := insertLedgerEntry(ctx, tx, entry); err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit order update: %w", err)
	}
	return updated, entry, nil
}

// List returns orders matching the filter, newest first.
func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.BusinessID != "" {
		conditions = append(conditions, fmt.Sprintf("business_id = $%d", argNum))
		args = append(args, filter.BusinessID)
		argNum++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argNum))
		args = append(args, filter.Status)
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
	if filter.CreatedBefore != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", argNum))
		args = append(args, filter.CreatedBefore)
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

	query := fmt.Sprintf(`SELECT %s FROM orders %s ORDER BY created_at DESC LIMIT $%d`,
		orderColumns, whereClause, argNum)
	args = append(args, limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.BusinessID, &o.CustomerName, &o.CustomerPhone,
		&o.ServiceType, &o.TotalAmount, &o.PaidAmount, &o.PaymentMethod,
		&o.PaymentStatus, &o.Status, &o.AssignedTo, &o.CompletionDate, &o.Notes,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
