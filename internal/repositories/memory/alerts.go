package memory

import (
	"context"
	"time"

	"loket-backend/internal/models"
)

type AlertRepository struct{ s *Store }

func (r *AlertRepository) CreateIfAbsent(_ context.Context, a *models.Alert) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.DedupeKey != "" {
		for _, existing := range r.s.alerts {
			if !existing.IsResolved && existing.DedupeKey == a.DedupeKey {
				return false, nil
			}
		}
	}
	r.s.alerts[a.ID] = *a
	return true, nil
}

func (r *AlertRepository) Get(_ context.Context, id string) (*models.Alert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.alerts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AlertRepository) List(_ context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Alert
	for _, a := range r.s.alerts {
		if filter.Severity != "" && a.Severity != filter.Severity {
			continue
		}
		if filter.IsResolved != nil && a.IsResolved != *filter.IsResolved {
			continue
		}
		if filter.BusinessID != "" && (a.BusinessID == nil || *a.BusinessID != filter.BusinessID) {
			continue
		}
		out = append(out, a)
	}

	sortNewestFirst(out, func(a models.Alert) time.Time { return a.TriggeredAt })
	if limit := limitOr(filter.Limit, 100); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *AlertRepository) CountUnresolved(_ context.Context, businessID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, a := range r.s.alerts {
		if a.IsResolved {
			continue
		}
		if businessID != "" && (a.BusinessID == nil || *a.BusinessID != businessID) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *AlertRepository) Resolve(_ context.Context, id, resolvedBy, notes string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.alerts[id]
	if !ok || a.IsResolved {
		return false, nil
	}
	a.IsResolved = true
	a.ResolvedAt = &at
	a.ResolvedBy = &resolvedBy
	a.ResolutionNotes = notes
	r.s.alerts[id] = a
	return true, nil
}
