package models

import (
	"time"

	"github.com/google/uuid"
)

// SpendingLogEntry is an append-only ledger record. Entries are immutable once
// written and feed window aggregation only.
type SpendingLogEntry struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Category    string    `db:"category"`
	AmountSpent float64   `db:"amount_spent"`
	Description string    `db:"description"`
	Source      string    `db:"source"`
	Timestamp   time.Time `db:"timestamp"`
	CreatedAt   time.Time `db:"created_at"`
}

type GuardrailStatus string

const (
	StatusSafe    GuardrailStatus = "safe"
	StatusWarning GuardrailStatus = "warning"
	StatusOver    GuardrailStatus = "over"
)

// GuardrailAlert is advisory output of a limit evaluation. Alerts are
// re-derivable from the ledger and never the system of record.
type GuardrailAlert struct {
	Category   string          `json:"category"`
	Spent      float64         `json:"spent"`
	Limit      float64         `json:"limit"`
	Percentage float64         `json:"percentage"`
	Status     GuardrailStatus `json:"status"`
}

// CategorySummary is one row of a period summary. Limit is nil for categories
// that have spending but no configured guardrail.
type CategorySummary struct {
	Category   string          `json:"category"`
	Spent      float64         `json:"spent"`
	Limit      *float64        `json:"limit"`
	Percentage float64         `json:"percentage"`
	Status     GuardrailStatus `json:"status"`
}
