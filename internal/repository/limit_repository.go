package repository

import (
	"context"
	"errors"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrNoRows = pgx.ErrNoRows

type LimitRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLimitRepository(db *pgxpool.Pool, logger *zap.Logger) *LimitRepository {
	return &LimitRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts a limit or, when (user_id, category) already exists, updates
// it in place. The unique index makes concurrent setLimit calls safe; an
// application-level existence pre-check alone would race.
func (r *LimitRepository) Upsert(ctx context.Context, limit *models.SpendingLimit) (*models.SpendingLimit, error) {
	query := squirrel.Insert("spending_limits").
		Columns("id", "user_id", "category", "limit_amount", "cycle", "is_active", "created_at", "updated_at").
		Values(limit.ID, limit.UserID, limit.Category, limit.LimitAmount, limit.Cycle, limit.IsActive, limit.CreatedAt, limit.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, category) DO UPDATE SET
			limit_amount = EXCLUDED.limit_amount,
			cycle = EXCLUDED.cycle,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
			RETURNING id, user_id, category, limit_amount, cycle, is_active, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stored models.SpendingLimit
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stored.ID, &stored.UserID, &stored.Category, &stored.LimitAmount, &stored.Cycle, &stored.IsActive, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *LimitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SpendingLimit, error) {
	query := squirrel.Select("id", "user_id", "category", "limit_amount", "cycle", "is_active", "created_at", "updated_at").
		From("spending_limits").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("category ASC").
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

	var limits []*models.SpendingLimit
	for rows.Next() {
		var limit models.SpendingLimit
		if err := rows.Scan(
			&limit.ID, &limit.UserID, &limit.Category, &limit.LimitAmount, &limit.Cycle, &limit.IsActive, &limit.CreatedAt, &limit.UpdatedAt,
		); err != nil {
			return nil, err
		}
		limits = append(limits, &limit)
	}

	return limits, nil
}

// ListActiveByUser returns only limits currently enforced, for evaluation.
func (r *LimitRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*models.SpendingLimit, error) {
	query := squirrel.Select("id", "user_id", "category", "limit_amount", "cycle", "is_active", "created_at", "updated_at").
		From("spending_limits").
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		OrderBy("category ASC").
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

	var limits []*models.SpendingLimit
	for rows.Next() {
		var limit models.SpendingLimit
		if err := rows.Scan(
			&limit.ID, &limit.UserID, &limit.Category, &limit.LimitAmount, &limit.Cycle, &limit.IsActive, &limit.CreatedAt, &limit.UpdatedAt,
		); err != nil {
			return nil, err
		}
		limits = append(limits, &limit)
	}

	return limits, nil
}

// Delete removes a limit owned by userID. Returns ErrNoRows when the limit
// does not exist or belongs to another user.
func (r *LimitRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("spending_limits").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// IsUniqueViolation reports whether err is a unique-constraint conflict.
func IsUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
