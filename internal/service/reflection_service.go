package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidReflection = errors.New("invalid reflection")

const dateLayout = "2006-01-02"

type ReflectionService struct {
	reflectionRepo *repository.ReflectionRepository
	logger         *zap.Logger
}

func NewReflectionService(reflectionRepo *repository.ReflectionRepository, logger *zap.Logger) *ReflectionService {
	return &ReflectionService{
		reflectionRepo: reflectionRepo,
		logger:         logger,
	}
}

// UpsertWeekly stores or replaces the reflection for an exact week. The
// suggestion text comes from an external generator and is never computed here;
// it is only sanitized so invalid UTF-8 cannot break persistence.
func (s *ReflectionService) UpsertWeekly(ctx context.Context, userID uuid.UUID, req *dto.UpsertReflectionRequest) (*models.SpendingReflection, error) {
	weekStart, err := time.Parse(dateLayout, req.WeekStartDate)
	if err != nil {
		return nil, ErrInvalidReflection
	}
	weekEnd, err := time.Parse(dateLayout, req.WeekEndDate)
	if err != nil {
		return nil, ErrInvalidReflection
	}
	if !weekEnd.After(weekStart) {
		return nil, ErrInvalidReflection
	}

	summary := make(map[string]models.GuardrailStatus, len(req.CategorySummary))
	for category, status := range req.CategorySummary {
		summary[category] = models.GuardrailStatus(status)
	}

	reflection := &models.SpendingReflection{
		ID:              uuid.New(),
		UserID:          userID,
		WeekStartDate:   weekStart,
		WeekEndDate:     weekEnd,
		OverallStatus:   models.GuardrailStatus(req.OverallStatus),
		CategorySummary: summary,
		AISuggestion:    sanitizeSuggestion(req.AISuggestion),
		CreatedAt:       time.Now(),
	}

	stored, err := s.reflectionRepo.Upsert(ctx, reflection)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Weekly reflection recorded",
		zap.String("user_id", userID.String()),
		zap.String("week_start", req.WeekStartDate),
		zap.String("status", req.OverallStatus),
	)

	return stored, nil
}

func (s *ReflectionService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.SpendingReflection, error) {
	if limit <= 0 || limit > 52 {
		limit = 12
	}
	return s.reflectionRepo.ListByUser(ctx, userID, limit)
}

// sanitizeSuggestion drops invalid UTF-8 byte sequences from the advisor text
// so the Postgres text column never rejects the row.
func sanitizeSuggestion(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}
