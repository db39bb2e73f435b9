package memory

import (
	"context"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/models"
)

type LedgerRepository struct{ s *Store }

func (r *LedgerRepository) Insert(_ context.Context, entry *models.LedgerEntry) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertLedgerLocked(entry)
}

// insertLedgerLocked must be called with s.mu held.
func (s *Store) insertLedgerLocked(entry *models.LedgerEntry) (bool, error) {
	if s.LedgerFault != nil {
		if err := s.LedgerFault(entry); err != nil {
			return false, err
		}
	}
	if entry.SyncKey != "" && s.ledgerKeys[entry.SyncKey] {
		return false, nil
	}
	for i := range s.ledger {
		if s.ledger[i].TransactionCode == entry.TransactionCode {
			return false, apperror.Conflict("transaction code %s already exists", entry.TransactionCode)
		}
	}
	if entry.SyncKey != "" {
		s.ledgerKeys[entry.SyncKey] = true
	}
	s.ledger = append(s.ledger, *entry)
	return true, nil
}

func (r *LedgerRepository) Get(_ context.Context, id string) (*models.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.ledger {
		if r.s.ledger[i].ID == id {
			e := r.s.ledger[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *LedgerRepository) List(_ context.Context, filter models.LedgerFilter) ([]models.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	categories := make(map[models.Category]bool, len(filter.Categories))
	for _, c := range filter.Categories {
		categories[c] = true
	}

	var out []models.LedgerEntry
	for _, e := range r.s.ledger {
		if filter.BusinessID != "" && e.BusinessID != filter.BusinessID {
			continue
		}
		if filter.TransactionType != "" && e.TransactionType != filter.TransactionType {
			continue
		}
		if len(categories) > 0 && !categories[e.Category] {
			continue
		}
		if filter.ReferenceNumber != "" && e.ReferenceNumber != filter.ReferenceNumber {
			continue
		}
		if !inRange(e.CreatedAt, filter.StartDate, filter.EndDate) {
			continue
		}
		out = append(out, e)
	}

	sortNewestFirst(out, func(e models.LedgerEntry) time.Time { return e.CreatedAt })

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if limit := limitOr(filter.Limit, 500); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Count returns the number of ledger entries written so far.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger)
}
