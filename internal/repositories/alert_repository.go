package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loket-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepository struct {
	DB *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{DB: db}
}

const alertColumns = `id, alert_type, severity, title, message, business_id, threshold_value,
	current_value, related_id, related_type, COALESCE(action_url, ''), is_resolved,
	resolved_at, resolved_by, COALESCE(resolution_notes, ''), triggered_at`

// CreateIfAbsent inserts the alert unless an unresolved alert with the same
// dedupe key exists. It reports whether a row was written.
func (r *AlertRepository) CreateIfAbsent(ctx context.Context, a *models.Alert) (bool, error) {
	tag, err := r.DB.Exec(ctx, `
		INSERT INTO alerts (
			id, alert_type, severity, title, message, business_id, threshold_value,
			current_value, related_id, related_type, action_url, is_resolved,
			triggered_at, dedupe_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, $12, $13)
		ON CONFLICT (dedupe_key) WHERE is_resolved = FALSE DO NOTHING`,
		a.ID, a.AlertType, a.Severity, a.Title, a.Message, a.BusinessID, a.ThresholdValue,
		a.CurrentValue, a.RelatedID, a.RelatedType, a.ActionURL, a.TriggeredAt, a.DedupeKey,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create alert: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AlertRepository) Get(ctx context.Context, id string) (*models.Alert, error) {
	a, err := scanAlert(r.DB.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return a, nil
}

func (r *AlertRepository) List(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.Severity != "" {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", argNum))
		args = append(args, filter.Severity)
		argNum++
	}
	if filter.IsResolved != nil {
		conditions = append(conditions, fmt.Sprintf("is_resolved = $%d", argNum))
		args = append(args, *filter.IsResolved)
		argNum++
	}
	if filter.BusinessID != "" {
		conditions = append(conditions, fmt.Sprintf("business_id = $%d", argNum))
		args = append(args, filter.BusinessID)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`SELECT %s FROM alerts %s ORDER BY triggered_at DESC LIMIT $%d`,
		alertColumns, whereClause, argNum)
	args = append(args, limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, *a)
	}
	return alerts, rows.Err()
}

func (r *AlertRepository) CountUnresolved(ctx context.Context, businessID string) (int, error) {
	query := `SELECT COUNT(*) FROM alerts WHERE is_resolved = FALSE`
	var args []interface{}
	if businessID != "" {
		query += ` AND business_id = $1`
		args = append(args, businessID)
	}

	var count int
	if err := r.DB.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return count, nil
}

// Resolve marks an unresolved alert as resolved. It returns false when no
// unresolved alert with that id exists.
func (r *AlertRepository) Resolve(ctx context.Context, id, resolvedBy, notes string, at time.Time) (bool, error) {
	tag, err := r.DB.Exec(ctx, `
		UPDATE alerts
		SET is_resolved = TRUE, resolved_at = $2, resolved_by = $3, resolution_notes = $4
		WHERE id = $1 AND is_resolved = FALSE`,
		id, at, resolvedBy, notes,
	)
	if err != nil {
		return false, fmt.Errorf("failed to resolve alert: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	var a models.Alert
	err := row.Scan(
		&a.ID, &a.AlertType, &a.Severity, &a.Title, &a.Message, &a.BusinessID, &a.ThresholdValue,
		&a.CurrentValue, &a.RelatedID, &a.RelatedType, &a.ActionURL, &a.IsResolved,
		&a.ResolvedAt, &a.ResolvedBy, &a.ResolutionNotes, &a.TriggeredAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
