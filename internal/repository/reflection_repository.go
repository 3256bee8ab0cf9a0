package repository

import (
	"context"
	"encoding/json"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReflectionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReflectionRepository(db *pgxpool.Pool, logger *zap.Logger) *ReflectionRepository {
	return &ReflectionRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts a weekly reflection or replaces the mutable fields of the one
// already stored for the same (user, weekStart, weekEnd).
func (r *ReflectionRepository) Upsert(ctx context.Context, reflection *models.SpendingReflection) (*models.SpendingReflection, error) {
	summary, err := json.Marshal(reflection.CategorySummary)
	if err != nil {
		return nil, err
	}

	query := squirrel.Insert("spending_reflections").
		Columns("id", "user_id", "week_start_date", "week_end_date", "overall_status", "category_summary", "ai_suggestion", "created_at").
		Values(reflection.ID, reflection.UserID, reflection.WeekStartDate, reflection.WeekEndDate, reflection.OverallStatus, summary, reflection.AISuggestion, reflection.CreatedAt).
		Suffix(`ON CONFLICT (user_id, week_start_date, week_end_date) DO UPDATE SET
			overall_status = EXCLUDED.overall_status,
			category_summary = EXCLUDED.category_summary,
			ai_suggestion = EXCLUDED.ai_suggestion
			RETURNING id, user_id, week_start_date, week_end_date, overall_status, category_summary, ai_suggestion, created_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stored models.SpendingReflection
	var rawSummary []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stored.ID, &stored.UserID, &stored.WeekStartDate, &stored.WeekEndDate, &stored.OverallStatus, &rawSummary, &stored.AISuggestion, &stored.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawSummary, &stored.CategorySummary); err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *ReflectionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.SpendingReflection, error) {
	query := squirrel.Select("id", "user_id", "week_start_date", "week_end_date", "overall_status", "category_summary", "ai_suggestion", "created_at").
		From("spending_reflections").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("week_start_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reflections []*models.SpendingReflection
	for rows.Next() {
		var reflection models.SpendingReflection
		var rawSummary []byte
		if err := rows.Scan(
			&reflection.ID, &reflection.UserID, &reflection.WeekStartDate, &reflection.WeekEndDate, &reflection.OverallStatus, &rawSummary, &reflection.AISuggestion, &reflection.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawSummary, &reflection.CategorySummary); err != nil {
			return nil, err
		}
		reflections = append(reflections, &reflection)
	}

	return reflections, nil
}
