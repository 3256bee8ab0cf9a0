package repository

import (
	"context"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SpendingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSpendingRepository(db *pgxpool.Pool, logger *zap.Logger) *SpendingRepository {
	return &SpendingRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a ledger entry. When dedupeKey is non-empty a retry carrying
// the same key is silently dropped by the unique index, which keeps appends
// safe to replay after transient failures.
func (r *SpendingRepository) Create(ctx context.Context, entry *models.SpendingLogEntry, dedupeKey string) error {
	builder := squirrel.Insert("spending_log").
		Columns("id", "user_id", "category", "amount_spent", "description", "source", "timestamp", "dedupe_key", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	if dedupeKey != "" {
		builder = builder.
			Values(entry.ID, entry.UserID, entry.Category, entry.AmountSpent, entry.Description, entry.Source, entry.Timestamp, dedupeKey, entry.CreatedAt).
			Suffix("ON CONFLICT (user_id, dedupe_key) DO NOTHING")
	} else {
		builder = builder.
			Values(entry.ID, entry.UserID, entry.Category, entry.AmountSpent, entry.Description, entry.Source, entry.Timestamp, nil, entry.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// SumInWindow totals spending for one category inside [from, to].
func (r *SpendingRepository) SumInWindow(ctx context.Context, userID uuid.UUID, category string, from, to time.Time) (float64, error) {
	query := squirrel.Select("COALESCE(SUM(amount_spent), 0)").
		From("spending_log").
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		Where(squirrel.GtOrEq{"timestamp": from}).
		Where(squirrel.LtOrEq{"timestamp": to}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// SumByCategory totals spending per category inside [from, to], covering every
// category seen in the ledger regardless of configured limits.
func (r *SpendingRepository) SumByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) (map[string]float64, error) {
	query := squirrel.Select("category", "COALESCE(SUM(amount_spent), 0)").
		From("spending_log").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"timestamp": from}).
		Where(squirrel.LtOrEq{"timestamp": to}).
		GroupBy("category").
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

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		totals[category] = total
	}

	return totals, nil
}

// List returns entries newest first, optionally filtered by category and range.
func (r *SpendingRepository) List(ctx context.Context, userID uuid.UUID, category string, from, to *time.Time) ([]*models.SpendingLogEntry, error) {
	query := squirrel.Select("id", "user_id", "category", "amount_spent", "description", "source", "timestamp", "created_at").
		From("spending_log").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}
	if from != nil {
		query = query.Where(squirrel.GtOrEq{"timestamp": *from})
	}
	if to != nil {
		query = query.Where(squirrel.LtOrEq{"timestamp": *to})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.SpendingLogEntry
	for rows.Next() {
		var entry models.SpendingLogEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Category, &entry.AmountSpent, &entry.Description, &entry.Source, &entry.Timestamp, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
