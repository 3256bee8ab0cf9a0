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

var ErrInvalidProfile = errors.New("invalid financial profile")

type ProfileService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewProfileService(userRepo *repository.UserRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.FinancialProfile, error) {
	if req.MonthlyIncome <= 0 || req.SavingsRate < 0 || req.SavingsRate > 100 || req.DiscretionaryExpense < 0 {
		return nil, ErrInvalidProfile
	}

	profile := &models.FinancialProfile{
		UserID:               userID,
		MonthlyIncome:        req.MonthlyIncome,
		SavingsRate:          req.SavingsRate,
		DiscretionaryExpense: req.DiscretionaryExpense,
		UpdatedAt:            time.Now(),
	}

	if err := s.userRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.FinancialProfile, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
