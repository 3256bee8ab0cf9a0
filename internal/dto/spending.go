package dto

import "github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

type LogSpendingRequest struct {
	Category    string  `json:"category" validate:"required,min=1"`
	AmountSpent float64 `json:"amount_spent" validate:"required,gt=0"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
	Timestamp   string  `json:"timestamp" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DedupeKey   string  `json:"dedupe_key"`
}

type SpendingEntryResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	AmountSpent float64 `json:"amount_spent"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
	Timestamp   string  `json:"timestamp"`
}

// LogSpendingResponse returns the stored entry together with the guardrail
// evaluation triggered by it.
type LogSpendingResponse struct {
	Entry  SpendingEntryResponse `json:"entry"`
	Alerts *GuardrailCheckResult `json:"alerts"`
}

type GuardrailCheckResult struct {
	HasWarnings bool                    `json:"has_warnings"`
	HasOverages bool                    `json:"has_overages"`
	Alerts      []models.GuardrailAlert `json:"alerts"`
}

type SpendingSummaryResponse struct {
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	TotalSpent  float64                  `json:"total_spent"`
	TotalLimit  float64                  `json:"total_limit"`
	Categories  []models.CategorySummary `json:"categories"`
}
