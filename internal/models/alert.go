package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

type AlertType string

const (
	AlertLowCash          AlertType = "low_cash"
	AlertPendingOrders    AlertType = "pending_orders"
	AlertAgingReceivables AlertType = "aging_receivables"
	AlertHighExpenses     AlertType = "high_expenses"
	AlertMissingReports   AlertType = "missing_reports"
	AlertSystem           AlertType = "system"
)

type Alert struct {
	ID              string          `json:"id"`
	AlertType       AlertType       `json:"alert_type"`
	Severity        AlertSeverity   `json:"severity"`
	Title           string          `json:"title"`
	Message         string          `json:"message"`
	BusinessID      *string         `json:"business_id,omitempty"`
	ThresholdValue  decimal.Decimal `json:"threshold_value"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	RelatedID       *string         `json:"related_id,omitempty"`
	RelatedType     *string         `json:"related_type,omitempty"`
	ActionURL       string          `json:"action_url,omitempty"`
	IsResolved      bool            `json:"is_resolved"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	ResolvedBy      *string         `json:"resolved_by,omitempty"`
	ResolutionNotes string          `json:"resolution_notes,omitempty"`
	TriggeredAt     time.Time       `json:"triggered_at"`

	// DedupeKey is unique among unresolved alerts.
	DedupeKey string `json:"-"`
}

type AlertFilter struct {
	Severity   AlertSeverity
	IsResolved *bool
	BusinessID string
	Limit      int
}

type AlertList struct {
	Alerts          []Alert `json:"alerts"`
	Total           int     `json:"total"`
	UnresolvedCount int     `json:"unresolved_count"`
}

type AlertCheckResult struct {
	AlertsGenerated int     `json:"alerts_generated"`
	Alerts          []Alert `json:"alerts"`
}

type ResolveAlertRequest struct {
	Notes string `json:"notes"`
}
