// Package memory holds map-backed repositories with the same behaviour as
// the pgx ones: sync-key idempotency, unique report slots, row locking of
// orders and one open alert per dedupe key. The server runs on it with
// -store=memory and the service tests use it directly.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"loket-backend/internal/models"
)

// Store is the shared state. All repositories lock the same mutex, so an
// order update and its ledger entry are applied atomically.
type Store struct {
	mu sync.Mutex

	businesses map[string]models.Business
	orders     map[string]models.Order
	ledger     []models.LedgerEntry
	ledgerKeys map[string]bool
	loket      map[string]models.LoketReport
	kasir      map[string]models.KasirReport
	ppobShifts map[string]models.PPOBShiftReport
	ppobKasir  map[string]models.PPOBKasirReport
	journal    []models.JournalLine
	journalKey map[string]bool
	alerts     map[string]models.Alert

	// LedgerFault, when set, is called before every ledger insert; a
	// non-nil result fails the insert.
	LedgerFault func(entry *models.LedgerEntry) error
	// JournalFault does the same for journal postings.
	JournalFault func(lines []models.JournalLine) error

	Ledger     *LedgerRepository
	Orders     *OrderRepository
	Reports    *ShiftReportRepository
	PPOB       *PPOBRepository
	Alerts     *AlertRepository
	Businesses *BusinessRepository
}

func New() *Store {
	s := &Store{
		businesses: make(map[string]models.Business),
		orders:     make(map[string]models.Order),
		ledgerKeys: make(map[string]bool),
		loket:      make(map[string]models.LoketReport),
		kasir:      make(map[string]models.KasirReport),
		ppobShifts: make(map[string]models.PPOBShiftReport),
		ppobKasir:  make(map[string]models.PPOBKasirReport),
		journalKey: make(map[string]bool),
		alerts:     make(map[string]models.Alert),
	}
	s.Ledger = &LedgerRepository{s: s}
	s.Orders = &OrderRepository{s: s}
	s.Reports = &ShiftReportRepository{s: s}
	s.PPOB = &PPOBRepository{s: s}
	s.Alerts = &AlertRepository{s: s}
	s.Businesses = &BusinessRepository{s: s}
	return s
}

// AddBusiness registers a business; the engine itself never creates them.
func (s *Store) AddBusiness(b models.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	s.businesses[b.ID] = b
}

func inRange(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

func limitOr(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

type BusinessRepository struct{ s *Store }

func (r *BusinessRepository) ListActive(_ context.Context) ([]models.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Business
	for _, b := range r.s.businesses {
		if b.IsActive {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
