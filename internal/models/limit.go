package models

import (
	"time"

	"github.com/google/uuid"
)

type LimitCycle string

const (
	CycleWeekly  LimitCycle = "weekly"
	CycleMonthly LimitCycle = "monthly"
)

// Valid reports whether the cycle is one of the supported recurrence periods.
func (c LimitCycle) Valid() bool {
	return c == CycleWeekly || c == CycleMonthly
}

// SpendingLimit is a per-user, per-category guardrail. A user has at most one
// limit per category; cycle is a mutable attribute, not part of the key.
type SpendingLimit struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Category    string     `db:"category"`
	LimitAmount float64    `db:"limit_amount"`
	Cycle       LimitCycle `db:"cycle"`
	IsActive    bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
