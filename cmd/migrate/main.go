package main

import (
	"context"
	"log"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/config"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/logger"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/postgres"

	"go.uber.org/zap"
)

// Schema statements, applied in order. The unique indexes are load-bearing:
// limit upserts and ledger dedupe rely on them rather than on application
// level existence checks.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS financial_profiles (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		monthly_income DOUBLE PRECISION NOT NULL,
		savings_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		discretionary_expense DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS spending_limits (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		limit_amount DOUBLE PRECISION NOT NULL CHECK (limit_amount > 0),
		cycle TEXT NOT NULL CHECK (cycle IN ('weekly', 'monthly')),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, category)
	)`,
	`CREATE TABLE IF NOT EXISTS spending_log (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		amount_spent DOUBLE PRECISION NOT NULL CHECK (amount_spent > 0),
		description TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'manual',
		timestamp TIMESTAMPTZ NOT NULL,
		dedupe_key TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS spending_log_dedupe
		ON spending_log (user_id, dedupe_key) WHERE dedupe_key IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS spending_log_window
		ON spending_log (user_id, category, timestamp)`,
	`CREATE TABLE IF NOT EXISTS spending_reflections (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		week_start_date TIMESTAMPTZ NOT NULL,
		week_end_date TIMESTAMPTZ NOT NULL,
		overall_status TEXT NOT NULL,
		category_summary JSONB NOT NULL DEFAULT '{}',
		ai_suggestion TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, week_start_date, week_end_date)
	)`,
	`CREATE TABLE IF NOT EXISTS challenges (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		duration_days INT NOT NULL,
		target_amount DOUBLE PRECISION NOT NULL,
		current_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		daily_targets JSONB NOT NULL DEFAULT '[]',
		progress INT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		difficulty TEXT NOT NULL,
		theme JSONB NOT NULL DEFAULT '{}',
		milestones JSONB NOT NULL DEFAULT '[]',
		streak_count INT NOT NULL DEFAULT 0,
		last_contribution_date TIMESTAMPTZ,
		completed_date TIMESTAMPTZ,
		achievements JSONB NOT NULL DEFAULT '[]',
		rewards JSONB NOT NULL DEFAULT '[]',
		tips JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS challenges_user
		ON challenges (user_id, status)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Applying schema...")

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			appLogger.Fatal("Migration failed",
				zap.Int("statement", i),
				zap.Error(err),
			)
		}
	}

	appLogger.Info("Schema applied successfully")
}
