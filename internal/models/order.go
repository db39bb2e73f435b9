package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// DerivePaymentStatus computes the payment status from the paid and total
// amounts. Refunded is never derived.
func DerivePaymentStatus(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.IsZero():
		return PaymentUnpaid
	case paid.GreaterThanOrEqual(total):
		return PaymentPaid
	default:
		return PaymentPartial
	}
}

type Order struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"order_number"`
	BusinessID     string          `json:"business_id"`
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone"`
	ServiceType    string          `json:"service_type"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	Status         OrderStatus     `json:"status"`
	AssignedTo     *string         `json:"assigned_to,omitempty"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	Notes          string          `json:"notes"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsSettled reports whether the order needs no further collection.
func (o *Order) IsSettled() bool {
	return o.PaymentStatus == PaymentPaid || o.PaymentStatus == PaymentRefunded
}

type CreateOrderRequest struct {
	BusinessID    string          `json:"business_id" validate:"required"`
	CustomerName  string          `json:"customer_name" validate:"required"`
	CustomerPhone string          `json:"customer_phone"`
	ServiceType   string          `json:"service_type" validate:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

// UpdateOrderRequest carries optional changes; nil fields are left as is.
type UpdateOrderRequest struct {
	Status        *OrderStatus     `json:"status,omitempty"`
	PaymentStatus *PaymentStatus   `json:"payment_status,omitempty"`
	PaidAmount    *decimal.Decimal `json:"paid_amount,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	AssignedTo    *string          `json:"assigned_to,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// OrderSyncResult is returned by order create and update.
type OrderSyncResult struct {
	Order                  *Order        `json:"order"`
	PaymentStatus          PaymentStatus `json:"payment_status"`
	AutoTransactionCreated bool          `json:"auto_transaction_created"`
	Transaction            *LedgerEntry  `json:"transaction,omitempty"`
}

type OrderFilter struct {
	BusinessID string
	Status     OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
	// CreatedBefore selects orders created strictly before the given time.
	CreatedBefore *time.Time
	Limit         int
}
