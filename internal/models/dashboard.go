package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Period struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type DashboardFilter struct {
	BusinessID string
	StartDate  *time.Time
	EndDate    *time.Time
}

type FinancialSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

type OrdersSummary struct {
	TotalOrders           int             `json:"total_orders"`
	TotalOrderAmount      decimal.Decimal `json:"total_order_amount"`
	PaidOrders            int             `json:"paid_orders"`
	PendingOrders         int             `json:"pending_orders"`
	PaymentCollectionRate decimal.Decimal `json:"payment_collection_rate"`
}

type TransactionCount struct {
	Total               int `json:"total"`
	IncomeTransactions  int `json:"income_transactions"`
	ExpenseTransactions int `json:"expense_transactions"`
}

type FinancialDashboard struct {
	Period           Period                     `json:"period"`
	BusinessID       string                     `json:"business_id,omitempty"`
	FinancialSummary FinancialSummary           `json:"financial_summary"`
	IncomeBreakdown  map[string]decimal.Decimal `json:"income_breakdown"`
	ExpenseBreakdown map[string]decimal.Decimal `json:"expense_breakdown"`
	OrdersSummary    OrdersSummary              `json:"orders_summary"`
	TransactionCount TransactionCount           `json:"transaction_count"`
	// Truncated is set when a row cap cut the scan short.
	Truncated bool `json:"truncated,omitempty"`
}
