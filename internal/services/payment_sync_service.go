package services

import (
	"context"
	"fmt"
	"time"

	"loket-backend/internal/apperror"
	"loket-backend/internal/config"
	"loket-backend/internal/lock"
	"loket-backend/internal/metrics"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentSyncService keeps the ledger in step with order payments: every
// increase of an order's paid amount produces exactly one income entry for
// the increase.
type PaymentSyncService struct {
	Orders OrderStore
	Locker lock.Locker
}

func NewPaymentSyncService(orders OrderStore, locker lock.Locker) *PaymentSyncService {
	if locker == nil {
		locker = lock.NewKeyedMutex()
	}
	return &PaymentSyncService{Orders: orders, Locker: locker}
}

func (s *PaymentSyncService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, createdBy string) (*models.OrderSyncResult, error) {
	if req.TotalAmount.IsNegative() {
		return nil, apperror.InvalidArgument("total_amount must not be negative")
	}
	if req.PaidAmount.IsNegative() {
		return nil, apperror.InvalidArgument("paid_amount must not be negative")
	}

	now := timeutil.Now()
	order := &models.Order{
		ID:            uuid.NewString(),
		OrderNumber:   NewOrderNumber(now),
		BusinessID:    req.BusinessID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceType:   req.ServiceType,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.DerivePaymentStatus(req.PaidAmount, req.TotalAmount),
		Status:        models.OrderPending,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	entry := paymentEntry(order, decimal.Zero, createdBy, now)
	if err := s.Orders.CreateWithEntry(ctx, order, entry); err != nil {
		metrics.SyncFailures.WithLabelValues("order").Inc()
		config.LogError(config.GetLogger(), "payment_sync", "CreateOrder", "order insert", order.OrderNumber, err)
		return nil, err
	}
	orderWritten(ctx, entry)

	return syncResult(order, entry), nil
}

// UpdateOrder applies req to the order. The previous paid amount is the
// committed one read under the order's lock, so concurrent and repeated
// updates never emit the same increase twice.
func (s *PaymentSyncService) UpdateOrder(ctx context.Context, id string, req *models.UpdateOrderRequest, updatedBy string) (*models.OrderSyncResult, error) {
	if req.PaidAmount != nil && req.PaidAmount.IsNegative() {
		return nil, apperror.InvalidArgument("paid_amount must not be negative")
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, apperror.InvalidArgument("unknown order status %q", *req.Status)
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.Valid() {
		return nil, apperror.InvalidArgument("unknown payment status %q", *req.PaymentStatus)
	}

	unlock, err := s.Locker.Lock(ctx, "order:"+id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock order %s: %w", id, err)
	}
	defer unlock()

	now := timeutil.Now()
	updated, entry, err := s.Orders.ApplyUpdate(ctx, id, func(current *models.Order) (*models.Order, *models.LedgerEntry, error) {
		next := applyOrderChanges(current, req, now)
		return next, paymentEntry(next, current.PaidAmount, updatedBy, now), nil
	})
	if err != nil {
		if !apperror.Is(err, apperror.KindNotFound) {
			metrics.SyncFailures.WithLabelValues("order").Inc()
			config.LogError(config.GetLogger(), "payment_sync", "UpdateOrder", "order update", id, err)
		}
		return nil, err
	}
	orderWritten(ctx, entry)

	return syncResult(updated, entry), nil
}

// orderWritten runs after every committed order change. Order counts feed
// the dashboard as well, so the cache is dropped even when no entry was
// written.
func orderWritten(ctx context.Context, entry *models.LedgerEntry) {
	if entry != nil {
		ledgerWritten(ctx, entry)
		return
	}
	invalidateCaches(ctx)
}

func (s *PaymentSyncService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("order %s not found", id)
	}
	return order, nil
}

func (s *PaymentSyncService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	return s.Orders.List(ctx, filter)
}

func applyOrderChanges(current *models.Order, req *models.UpdateOrderRequest, now time.Time) *models.Order {
	next := *current

	if req.PaidAmount != nil {
		next.PaidAmount = *req.PaidAmount
	}
	if req.PaymentMethod != nil {
		next.PaymentMethod = *req.PaymentMethod
	}
	if req.AssignedTo != nil {
		next.AssignedTo = req.AssignedTo
	}
	if req.Notes != nil {
		next.Notes = *req.Notes
	}
	if req.Status != nil {
		next.Status = *req.Status
		if next.Status == models.OrderCompleted && next.CompletionDate == nil {
			completed := now
			next.CompletionDate = &completed
		}
	}

	// An explicit payment status (refunds) wins over the derived one.
	if req.PaymentStatus != nil {
		next.PaymentStatus = *req.PaymentStatus
	} else if req.PaidAmount != nil {
		next.PaymentStatus = models.DerivePaymentStatus(next.PaidAmount, next.TotalAmount)
	}

	next.UpdatedAt = now
	return &next
}

// paymentEntry returns the income entry for the increase from previous to
// the order's paid amount, or nil when there is no increase.
func paymentEntry(order *models.Order, previous decimal.Decimal, createdBy string, now time.Time) *models.LedgerEntry {
	delta := order.PaidAmount.Sub(previous)
	if !delta.IsPositive() {
		return nil
	}

	orderID := order.ID
	return newLedgerEntry(entryFields{
		businessID: order.BusinessID,
		txType:     models.TransactionIncome,
		category:   models.CategoryOrderPayment,
		desc:       fmt.Sprintf("Payment for order %s - %s", order.OrderNumber, order.CustomerName),
		amount:     delta,
		method:     order.PaymentMethod,
		reference:  order.OrderNumber,
		orderID:    &orderID,
		createdBy:  createdBy,
	}, now)
}

func syncResult(order *models.Order, entry *models.LedgerEntry) *models.OrderSyncResult {
	return &models.OrderSyncResult{
		Order:                  order,
		PaymentStatus:          order.PaymentStatus,
		AutoTransactionCreated: entry != nil,
		Transaction:            entry,
	}
}
