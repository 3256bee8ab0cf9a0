package service

import (
	"context"
	"errors"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidSpending = errors.New("invalid spending entry")

type SpendingService struct {
	spendingRepo *repository.SpendingRepository
	guardrails   *GuardrailService
	logger       *zap.Logger
}

func NewSpendingService(
	spendingRepo *repository.SpendingRepository,
	guardrails *GuardrailService,
	logger *zap.Logger,
) *SpendingService {
	return &SpendingService{
		spendingRepo: spendingRepo,
		guardrails:   guardrails,
		logger:       logger,
	}
}

// LogSpending appends a ledger entry and immediately re-evaluates the user's
// guardrails so the caller gets any warning in the same round trip.
func (s *SpendingService) LogSpending(ctx context.Context, userID uuid.UUID, req *dto.LogSpendingRequest) (*models.SpendingLogEntry, *dto.GuardrailCheckResult, error) {
	if req.Category == "" || req.AmountSpent <= 0 {
		return nil, nil, ErrInvalidSpending
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return nil, nil, ErrInvalidSpending
		}
		timestamp = parsed
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	entry := &models.SpendingLogEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    req.Category,
		AmountSpent: req.AmountSpent,
		Description: req.Description,
		Source:      source,
		Timestamp:   timestamp,
		CreatedAt:   time.Now(),
	}

	if err := s.spendingRepo.Create(ctx, entry, req.DedupeKey); err != nil {
		return nil, nil, err
	}

	alerts, err := s.guardrails.CheckAll(ctx, userID, timestamp)
	if err != nil {
		// The entry is already persisted; surface it even if evaluation failed.
		s.logger.Warn("Guardrail evaluation failed after append",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return entry, nil, nil
	}

	return entry, alerts, nil
}

func (s *SpendingService) ListSpending(ctx context.Context, userID uuid.UUID, category string, from, to *time.Time) ([]*models.SpendingLogEntry, error) {
	return s.spendingRepo.List(ctx, userID, category, from, to)
}
