package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FinancialProfile is the per-user input the challenge factory consumes.
// SavingsRate is a percentage (10 means 10%).
type FinancialProfile struct {
	UserID               uuid.UUID `db:"user_id"`
	MonthlyIncome        float64   `db:"monthly_income"`
	SavingsRate          float64   `db:"savings_rate"`
	DiscretionaryExpense float64   `db:"discretionary_expense"`
	UpdatedAt            time.Time `db:"updated_at"`
}
