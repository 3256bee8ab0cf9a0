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

var (
	ErrLimitNotFound = errors.New("limit not found")
	ErrLimitConflict = errors.New("limit already exists for this category")
	ErrInvalidLimit  = errors.New("invalid limit")
)

type LimitService struct {
	limitRepo *repository.LimitRepository
	logger    *zap.Logger
}

func NewLimitService(limitRepo *repository.LimitRepository, logger *zap.Logger) *LimitService {
	return &LimitService{
		limitRepo: limitRepo,
		logger:    logger,
	}
}

// SetLimit upserts the single limit for (user, category). Cycle and amount are
// replaced in place when the category already has one.
func (s *LimitService) SetLimit(ctx context.Context, userID uuid.UUID, req *dto.SetLimitRequest) (*models.SpendingLimit, error) {
	cycle := models.LimitCycle(req.Cycle)
	if req.Category == "" || req.LimitAmount <= 0 || !cycle.Valid() {
		return nil, ErrInvalidLimit
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	limit := &models.SpendingLimit{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		Cycle:       cycle,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	stored, err := s.limitRepo.Upsert(ctx, limit)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrLimitConflict
		}
		return nil, err
	}

	s.logger.Info("Spending limit set",
		zap.String("user_id", userID.String()),
		zap.String("category", stored.Category),
		zap.Float64("amount", stored.LimitAmount),
		zap.String("cycle", string(stored.Cycle)),
	)

	return stored, nil
}

func (s *LimitService) ListLimits(ctx context.Context, userID uuid.UUID) ([]*models.SpendingLimit, error) {
	return s.limitRepo.ListByUser(ctx, userID)
}

// RemoveLimit deletes a limit; a limit owned by another user is reported as
// not found rather than forbidden.
func (s *LimitService) RemoveLimit(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.limitRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrLimitNotFound
		}
		return err
	}
	return nil
}
