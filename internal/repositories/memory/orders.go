package memory

import (
	"context"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/models"
)

type OrderRepository struct{ s *Store }

func (r *OrderRepository) CreateWithEntry(_ context.Context, order *models.Order, entry *models.LedgerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.orders[order.ID]; exists {
		return apperror.Conflict("order %s already exists", order.ID)
	}
	for _, o := range r.s.orders {
		if o.OrderNumber == order.OrderNumber {
			return apperror.Conflict("order number %s already exists", order.OrderNumber)
		}
	}
	if entry != nil {
		if _, err := r.s.insertLedgerLocked(entry); err != nil {
			return err
		}
	}
	r.s.orders[order.ID] = *order
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id string) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// ApplyUpdate holds the store lock for the whole read-mutate-write, which
// plays the part of SELECT ... FOR UPDATE.
func (r *OrderRepository) ApplyUpdate(_ context.Context, id string, mutate func(current *models.Order) (*models.Order, *models.LedgerEntry, error)) (*models.Order, *models.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.orders[id]
	if !ok {
		return nil, nil, apperror.NotFound("order %s not found", id)
	}

	updated, entry, err := mutate(&current)
	if err != nil {
		return nil, nil, err
	}
	if entry != nil {
		if _, err := r.s.insertLedgerLocked(entry); err != nil {
			return nil, nil, err
		}
	}
	r.s.orders[id] = *updated
	return updated, entry, nil
}

func (r *OrderRepository) List(_ context.Context, filter models.OrderFilter) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Order
	for _, o := range r.s.orders {
		if filter.BusinessID != "" && o.BusinessID != filter.BusinessID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if !inRange(o.CreatedAt, filter.StartDate, filter.EndDate) {
			continue
		}
		if filter.CreatedBefore != nil && !o.CreatedAt.Before(*filter.CreatedBefore) {
			continue
		}
		out = append(out, o)
	}

	sortNewestFirst(out, func(o models.Order) time.Time { return o.CreatedAt })
	if limit := limitOr(filter.Limit, 500); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
