package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const warningThreshold = 80.0

type GuardrailService struct {
	limitRepo    *repository.LimitRepository
	spendingRepo *repository.SpendingRepository
	logger       *zap.Logger
}

func NewGuardrailService(
	limitRepo *repository.LimitRepository,
	spendingRepo *repository.SpendingRepository,
	logger *zap.Logger,
) *GuardrailService {
	return &GuardrailService{
		limitRepo:    limitRepo,
		spendingRepo: spendingRepo,
		logger:       logger,
	}
}

// evaluateSpending classifies spending against a limit. A missing or zero
// limit forces percentage 0 and status safe, never a division by zero.
func evaluateSpending(spent, limit float64) (float64, models.GuardrailStatus) {
	if limit <= 0 {
		return 0, models.StatusSafe
	}

	percentage := spent / limit * 100
	percentage = math.Round(percentage*100) / 100

	switch {
	case percentage >= 100:
		return percentage, models.StatusOver
	case percentage >= warningThreshold:
		return percentage, models.StatusWarning
	default:
		return percentage, models.StatusSafe
	}
}

// CheckAll evaluates every active limit of the user against its current cycle
// window. Alerts are advisory and re-derivable; recomputing is harmless.
func (s *GuardrailService) CheckAll(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.GuardrailCheckResult, error) {
	limits, err := s.limitRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &dto.GuardrailCheckResult{
		Alerts: make([]models.GuardrailAlert, 0),
	}

	for _, limit := range limits {
		start, end := ResolveWindow(limit.Cycle, now)
		spent, err := s.spendingRepo.SumInWindow(ctx, userID, limit.Category, start, end)
		if err != nil {
			return nil, err
		}

		percentage, status := evaluateSpending(spent, limit.LimitAmount)
		if status == models.StatusSafe {
			continue
		}

		result.Alerts = append(result.Alerts, models.GuardrailAlert{
			Category:   limit.Category,
			Spent:      spent,
			Limit:      limit.LimitAmount,
			Percentage: percentage,
			Status:     status,
		})
		switch status {
		case models.StatusWarning:
			result.HasWarnings = true
		case models.StatusOver:
			result.HasOverages = true
		}
	}

	if len(result.Alerts) > 0 {
		s.logger.Info("Guardrail alerts raised",
			zap.String("user_id", userID.String()),
			zap.Int("alerts", len(result.Alerts)),
			zap.Bool("overages", result.HasOverages),
		)
	}

	return result, nil
}

// GetSummary aggregates spending over an explicit period across every
// category seen in the ledger, not only those with configured limits.
func (s *GuardrailService) GetSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*dto.SpendingSummaryResponse, error) {
	totals, err := s.spendingRepo.SumByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	limits, err := s.limitRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	limitByCategory := make(map[string]*models.SpendingLimit, len(limits))
	for _, limit := range limits {
		limitByCategory[limit.Category] = limit
	}

	summary := &dto.SpendingSummaryResponse{
		PeriodStart: from.Format(time.RFC3339),
		PeriodEnd:   to.Format(time.RFC3339),
		Categories:  make([]models.CategorySummary, 0, len(totals)),
	}

	for category, spent := range totals {
		row := models.CategorySummary{
			Category: category,
			Spent:    spent,
			Status:   models.StatusSafe,
		}
		if limit, ok := limitByCategory[category]; ok {
			amount := limit.LimitAmount
			row.Limit = &amount
			row.Percentage, row.Status = evaluateSpending(spent, amount)
			summary.TotalLimit += amount
		}
		summary.TotalSpent += spent
		summary.Categories = append(summary.Categories, row)
	}

	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	return summary, nil
}
