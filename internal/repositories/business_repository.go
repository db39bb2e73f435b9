package repositories

import (
	"context"
	"fmt"

	"loket-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BusinessRepository struct {
	DB *pgxpool.Pool
}

func NewBusinessRepository(db *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

func (r *BusinessRepository) ListActive(ctx context.Context) ([]models.Business, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, COALESCE(category, ''), is_active, created_at
		FROM businesses
		WHERE is_active = TRUE
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []models.Business
	for rows.Next() {
		var b models.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.Category, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}
