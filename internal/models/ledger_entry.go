package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger entry. Amounts are always
// positive; the sign is implied by the type.
type TransactionType string

const (
	TransactionIncome     TransactionType = "income"
	TransactionExpense    TransactionType = "expense"
	TransactionTransfer   TransactionType = "transfer"
	TransactionCommission TransactionType = "commission"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer, TransactionCommission:
		return true
	}
	return false
}

// LedgerEntry is a single immutable money movement of a business.
type LedgerEntry struct {
	ID              string          `json:"id"`
	TransactionCode string          `json:"transaction_code"`
	BusinessID      string          `json:"business_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Category        Category        `json:"category"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	OrderID         *string         `json:"order_id,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`

	// SyncKey identifies the event an auto-synced entry was derived from.
	// A second insert with the same key is a no-op.
	SyncKey string `json:"-"`
}

// IsIncome reports whether the entry adds to the business's cash position.
func (e *LedgerEntry) IsIncome() bool { return e.TransactionType == TransactionIncome }

// IsExpense reports whether the entry takes from the business's cash position.
func (e *LedgerEntry) IsExpense() bool { return e.TransactionType == TransactionExpense }

// CreateLedgerEntryRequest is the body of a manual ledger entry.
type CreateLedgerEntryRequest struct {
	BusinessID      string          `json:"business_id" validate:"required"`
	TransactionType TransactionType `json:"transaction_type" validate:"required,oneof=income expense transfer commission"`
	Category        Category        `json:"category" validate:"required"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number"`
	OrderID         *string         `json:"order_id"`
}

// LedgerFilter narrows ledger reads. Zero values mean "no filter".
type LedgerFilter struct {
	BusinessID      string
	TransactionType TransactionType
	Categories      []Category
	ReferenceNumber string
	StartDate       *time.Time
	EndDate         *time.Time
	Limit           int
	Offset          int
}
