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

type ChallengeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChallengeRepository(db *pgxpool.Pool, logger *zap.Logger) *ChallengeRepository {
	return &ChallengeRepository{
		db:     db,
		logger: logger,
	}
}

var challengeColumns = []string{
	"id", "user_id", "type", "name", "description", "start_date", "end_date",
	"duration_days", "target_amount", "current_amount", "daily_targets",
	"progress", "status", "difficulty", "theme", "milestones", "streak_count",
	"last_contribution_date", "completed_date", "achievements", "rewards",
	"tips", "created_at", "updated_at",
}

type challengeJSON struct {
	dailyTargets, theme, milestones, achievements, rewards, tips []byte
}

func marshalChallenge(c *models.Challenge) (*challengeJSON, error) {
	var out challengeJSON
	var err error
	if out.dailyTargets, err = json.Marshal(c.DailyTargets); err != nil {
		return nil, err
	}
	if out.theme, err = json.Marshal(c.Theme); err != nil {
		return nil, err
	}
	if out.milestones, err = json.Marshal(c.Milestones); err != nil {
		return nil, err
	}
	if out.achievements, err = json.Marshal(c.Achievements); err != nil {
		return nil, err
	}
	if out.rewards, err = json.Marshal(c.Rewards); err != nil {
		return nil, err
	}
	if out.tips, err = json.Marshal(c.Tips); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ChallengeRepository) scanChallenge(row pgxRow) (*models.Challenge, error) {
	var c models.Challenge
	var dailyTargets, theme, milestones, achievements, rewards, tips []byte

	err := row.Scan(
		&c.ID, &c.UserID, &c.Type, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
		&c.DurationDays, &c.TargetAmount, &c.CurrentAmount, &dailyTargets,
		&c.Progress, &c.Status, &c.Difficulty, &theme, &milestones, &c.StreakCount,
		&c.LastContributionDate, &c.CompletedDate, &achievements, &rewards,
		&tips, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(dailyTargets, &c.DailyTargets); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(theme, &c.Theme); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(milestones, &c.Milestones); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(achievements, &c.Achievements); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rewards, &c.Rewards); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tips, &c.Tips); err != nil {
		return nil, err
	}

	return &c, nil
}

type pgxRow interface {
	Scan(dest ...any) error
}

func (r *ChallengeRepository) Create(ctx context.Context, c *models.Challenge) error {
	blobs, err := marshalChallenge(c)
	if err != nil {
		return err
	}

	query := squirrel.Insert("challenges").
		Columns(challengeColumns...).
		Values(
			c.ID, c.UserID, c.Type, c.Name, c.Description, c.StartDate, c.EndDate,
			c.DurationDays, c.TargetAmount, c.CurrentAmount, blobs.dailyTargets,
			c.Progress, c.Status, c.Difficulty, blobs.theme, blobs.milestones, c.StreakCount,
			c.LastContributionDate, c.CompletedDate, blobs.achievements, blobs.rewards,
			blobs.tips, c.CreatedAt, c.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Update persists the full challenge snapshot after an apply.
func (r *ChallengeRepository) Update(ctx context.Context, c *models.Challenge) error {
	blobs, err := marshalChallenge(c)
	if err != nil {
		return err
	}

	query := squirrel.Update("challenges").
		Set("current_amount", c.CurrentAmount).
		Set("daily_targets", blobs.dailyTargets).
		Set("progress", c.Progress).
		Set("status", c.Status).
		Set("milestones", blobs.milestones).
		Set("streak_count", c.StreakCount).
		Set("last_contribution_date", c.LastContributionDate).
		Set("completed_date", c.CompletedDate).
		Set("achievements", blobs.achievements).
		Set("updated_at", c.UpdatedAt).
		Where(squirrel.Eq{"id": c.ID, "user_id": c.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ChallengeRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Challenge, error) {
	query := squirrel.Select(challengeColumns...).
		From("challenges").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanChallenge(r.db.QueryRow(ctx, sql, args...))
}

func (r *ChallengeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Challenge, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListCompletedByUser returns only completed challenges, the input of the
// achievement level calculator.
func (r *ChallengeRepository) ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([]*models.Challenge, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID, "status": models.ChallengeCompleted})
}

// ListAll returns every challenge across users, for leaderboard assembly.
func (r *ChallengeRepository) ListAll(ctx context.Context) ([]*models.Challenge, error) {
	return r.list(ctx, nil)
}

func (r *ChallengeRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.Challenge, error) {
	query := squirrel.Select(challengeColumns...).
		From("challenges").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		query = query.Where(where)
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

	var challenges []*models.Challenge
	for rows.Next() {
		c, err := r.scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}

	return challenges, nil
}
