package models

import (
	"time"

	"github.com/google/uuid"
)

// SpendingReflection is the persisted weekly summary of guardrail status with
// attached advice text. The advice is produced by an external generator and
// stored opaquely. Unique per (user, weekStart, weekEnd); upserted.
type SpendingReflection struct {
	ID              uuid.UUID                  `db:"id"`
	UserID          uuid.UUID                  `db:"user_id"`
	WeekStartDate   time.Time                  `db:"week_start_date"`
	WeekEndDate     time.Time                  `db:"week_end_date"`
	OverallStatus   GuardrailStatus            `db:"overall_status"`
	CategorySummary map[string]GuardrailStatus `db:"category_summary"`
	AISuggestion    string                     `db:"ai_suggestion"`
	CreatedAt       time.Time                  `db:"created_at"`
}
