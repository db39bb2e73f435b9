package services

import (
	"context"
	"time"

	"loket-backend/internal/models"
)

// The services depend on these interfaces, not on the pgx repositories, so
// the in-memory store and generated mocks can stand in for them.
//
//go:generate mockgen -destination=mocks/mock_stores.go -package=mocks -source=interfaces.go

// LedgerStore is the append-only ledger.
type LedgerStore interface {
	// Insert writes the entry. created is false when an entry with the same
	// non-empty sync key already exists.
	Insert(ctx context.Context, entry *models.LedgerEntry) (created bool, err error)
	Get(ctx context.Context, id string) (*models.LedgerEntry, error)
	List(ctx context.Context, filter models.LedgerFilter) ([]models.LedgerEntry, error)
}

type OrderStore interface {
	CreateWithEntry(ctx context.Context, order *models.Order, entry *models.LedgerEntry) error
	Get(ctx context.Context, id string) (*models.Order, error)
	// ApplyUpdate runs mutate against the committed order and persists its
	// result atomically with the returned entry.
	ApplyUpdate(ctx context.Context, id string, mutate func(current *models.Order) (*models.Order, *models.LedgerEntry, error)) (*models.Order, *models.LedgerEntry, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
}

type ShiftReportStore interface {
	CreateLoket(ctx context.Context, report *models.LoketReport) error
	GetLoket(ctx context.Context, id string) (*models.LoketReport, error)
	ListLoket(ctx context.Context, filter models.ReportFilter) ([]models.LoketReport, error)
	CreateKasir(ctx context.Context, report *models.KasirReport) error
	GetKasir(ctx context.Context, id string) (*models.KasirReport, error)
	ListKasir(ctx context.Context, filter models.ReportFilter) ([]models.KasirReport, error)
}

type PPOBStore interface {
	CreateShift(ctx context.Context, shift *models.PPOBShiftReport) error
	GetShift(ctx context.Context, id string) (*models.PPOBShiftReport, error)
	ListShifts(ctx context.Context, filter models.PPOBShiftFilter) ([]models.PPOBShiftReport, error)
	// CreateKasirReport saves the report and settles every shift named in
	// its setoran_loket in one step. It fails with Conflict, writing
	// nothing, unless each shift is still Belum Disetor.
	CreateKasirReport(ctx context.Context, report *models.PPOBKasirReport) error
	GetKasirReport(ctx context.Context, id string) (*models.PPOBKasirReport, error)
	InsertJournalLines(ctx context.Context, lines []models.JournalLine) (int, error)
	ListJournal(ctx context.Context, filter models.JournalFilter) ([]models.JournalLine, error)
}

type AlertStore interface {
	// CreateIfAbsent writes the alert unless an unresolved alert with the
	// same dedupe key exists.
	CreateIfAbsent(ctx context.Context, alert *models.Alert) (bool, error)
	Get(ctx context.Context, id string) (*models.Alert, error)
	List(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error)
	CountUnresolved(ctx context.Context, businessID string) (int, error)
	Resolve(ctx context.Context, id, resolvedBy, notes string, at time.Time) (bool, error)
}

type BusinessStore interface {
	ListActive(ctx context.Context) ([]models.Business, error)
}

// AlertPublisher receives alerts as they are generated.
type AlertPublisher interface {
	PublishAlerts(alerts []models.Alert)
}
