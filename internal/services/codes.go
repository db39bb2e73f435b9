package services

import (
	"strings"
	"time"

	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// shortID returns the first n upper-case hex characters of a fresh UUID.
func shortID(n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:n])
}

// NewTransactionCode returns TRX-YYYYMMDD-XXXXXXXX for the WIB day of t.
func NewTransactionCode(t time.Time) string {
	return "TRX-" + timeutil.ToWIB(t).Format(timeutil.CompactLayout) + "-" + shortID(8)
}

// NewOrderNumber returns ORD-YYYYMMDD-XXXXXX for the WIB day of t.
func NewOrderNumber(t time.Time) string {
	return "ORD-" + timeutil.ToWIB(t).Format(timeutil.CompactLayout) + "-" + shortID(6)
}

type entryFields struct {
	businessID string
	txType     models.TransactionType
	category   models.Category
	desc       string
	amount     decimal.Decimal
	method     string
	reference  string
	orderID    *string
	createdBy  string
	syncKey    string
}

func newLedgerEntry(f entryFields, now time.Time) *models.LedgerEntry {
	method := f.method
	if method == "" {
		method = "cash"
	}
	return &models.LedgerEntry{
		ID:              uuid.NewString(),
		TransactionCode: NewTransactionCode(now),
		BusinessID:      f.businessID,
		TransactionType: f.txType,
		Category:        f.category,
		Description:     f.desc,
		Amount:          f.amount,
		PaymentMethod:   method,
		ReferenceNumber: f.reference,
		OrderID:         f.orderID,
		CreatedBy:       f.createdBy,
		CreatedAt:       now,
		SyncKey:         f.syncKey,
	}
}
