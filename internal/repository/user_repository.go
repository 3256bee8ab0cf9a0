package repository

import (
	"context"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("id", "username", "email", "password", "created_at", "updated_at").
		Values(user.ID, user.Username, user.Email, user.Password, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := squirrel.Select("id", "username", "email", "password", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := squirrel.Select("id", "username", "email", "password", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListAll returns every user id with its username, for leaderboard assembly.
func (r *UserRepository) ListAll(ctx context.Context) (map[uuid.UUID]string, error) {
	query := squirrel.Select("id", "username").
		From("users").
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

	users := make(map[uuid.UUID]string)
	for rows.Next() {
		var id uuid.UUID
		var username string
		if err := rows.Scan(&id, &username); err != nil {
			return nil, err
		}
		users[id] = username
	}

	return users, nil
}

func (r *UserRepository) UpsertProfile(ctx context.Context, profile *models.FinancialProfile) error {
	query := squirrel.Insert("financial_profiles").
		Columns("user_id", "monthly_income", "savings_rate", "discretionary_expense", "updated_at").
		Values(profile.UserID, profile.MonthlyIncome, profile.SavingsRate, profile.DiscretionaryExpense, profile.UpdatedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			monthly_income = EXCLUDED.monthly_income,
			savings_rate = EXCLUDED.savings_rate,
			discretionary_expense = EXCLUDED.discretionary_expense,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.FinancialProfile, error) {
	query := squirrel.Select("user_id", "monthly_income", "savings_rate", "discretionary_expense", "updated_at").
		From("financial_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var profile models.FinancialProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.UserID, &profile.MonthlyIncome, &profile.SavingsRate, &profile.DiscretionaryExpense, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
