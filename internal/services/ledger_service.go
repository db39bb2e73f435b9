package services

import (
	"context"
	"fmt"

	"loket-backend/internal/apperror"
	"loket-backend/internal/cache"
	"loket-backend/internal/config"
	"loket-backend/internal/metrics"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/sirupsen/logrus"
)

// LedgerService is the single write path into the ledger for everything
// except order payments, which are written inside the order transaction.
type LedgerService struct {
	Repo LedgerStore
}

func NewLedgerService(repo LedgerStore) *LedgerService {
	return &LedgerService{Repo: repo}
}

// Record appends an entry. A replay of an already-written sync key is not
// an error; created is false in that case.
func (s *LedgerService) Record(ctx context.Context, entry *models.LedgerEntry) (bool, error) {
	created, err := s.Repo.Insert(ctx, entry)
	if err != nil {
		return false, fmt.Errorf("failed to record ledger entry: %w", err)
	}
	if created {
		ledgerWritten(ctx, entry)
	}
	return created, nil
}

// CreateManual records a hand-entered correction or adjustment.
func (s *LedgerService) CreateManual(ctx context.Context, req *models.CreateLedgerEntryRequest, createdBy string) (*models.LedgerEntry, error) {
	if !req.TransactionType.Valid() {
		return nil, apperror.InvalidArgument("unknown transaction type %q", req.TransactionType)
	}
	if !req.Category.Valid() {
		return nil, apperror.InvalidArgument("unknown category %q", req.Category)
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.InvalidArgument("amount must be greater than zero")
	}

	entry := newLedgerEntry(entryFields{
		businessID: req.BusinessID,
		txType:     req.TransactionType,
		category:   req.Category,
		desc:       req.Description,
		amount:     req.Amount,
		method:     req.PaymentMethod,
		reference:  req.ReferenceNumber,
		orderID:    req.OrderID,
		createdBy:  createdBy,
	}, timeutil.Now())

	if _, err := s.Record(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LedgerService) Get(ctx context.Context, id string) (*models.LedgerEntry, error) {
	entry, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("transaction %s not found", id)
	}
	return entry, nil
}

func (s *LedgerService) List(ctx context.Context, filter models.LedgerFilter) ([]models.LedgerEntry, error) {
	return s.Repo.List(ctx, filter)
}

// invalidateCaches drops every cached dashboard aggregate.
var invalidateCaches = cache.InvalidateLedgerCaches

// ledgerWritten updates metrics and drops cached aggregates after entries
// were actually written.
func ledgerWritten(ctx context.Context, entries ...*models.LedgerEntry) {
	for _, e := range entries {
		metrics.LedgerEntriesCreated.WithLabelValues(string(e.Category)).Inc()
		config.GetLogger().WithFields(logrus.Fields{
			"module":           "ledger",
			"transaction_code": e.TransactionCode,
			"business_id":      e.BusinessID,
			"category":         e.Category,
			"amount":           e.Amount.String(),
		}).Debug("ledger entry created")
	}
	if len(entries) > 0 {
		invalidateCaches(ctx)
	}
}
