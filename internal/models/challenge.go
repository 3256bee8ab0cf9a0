package models

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeType string

const (
	ChallengeDaily        ChallengeType = "daily"
	ChallengeWeekly       ChallengeType = "weekly"
	ChallengeMonthly      ChallengeType = "monthly"
	ChallengeRoundUp      ChallengeType = "round-up"
	ChallengeNoSpend      ChallengeType = "no-spend"
	ChallengeSavingSprint ChallengeType = "saving-sprint"
	ChallengeIncremental  ChallengeType = "incremental"
	ChallengeDeclutter    ChallengeType = "declutter"
	ChallengeHabitSwap    ChallengeType = "habit-swap"
	ChallengeAutomation   ChallengeType = "automation"
)

type ChallengeStatus string

const (
	ChallengeActive             ChallengeStatus = "active"
	ChallengeCompleted          ChallengeStatus = "completed"
	ChallengePartiallyCompleted ChallengeStatus = "partiallyCompleted"
	ChallengeFailed             ChallengeStatus = "failed"
)

// Terminal reports whether the status accepts no further mutation.
func (s ChallengeStatus) Terminal() bool {
	return s == ChallengeCompleted || s == ChallengePartiallyCompleted || s == ChallengeFailed
}

type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "easy"
	DifficultyMedium ChallengeDifficulty = "medium"
	DifficultyHard   ChallengeDifficulty = "hard"
)

// DailyTargetState disambiguates what a daily target slot means: a slot still
// waiting for money, a slot whose goal was met, or a rest day where the plan
// asks for nothing.
type DailyTargetState string

const (
	TargetPending       DailyTargetState = "pending"
	TargetSatisfied     DailyTargetState = "satisfied"
	TargetNotApplicable DailyTargetState = "not_applicable"
)

type DailyTarget struct {
	Day    int              `json:"day"`
	Date   time.Time        `json:"date"`
	Amount float64          `json:"amount"`
	State  DailyTargetState `json:"state"`
}

type Milestone struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Amount       float64    `json:"amount"`
	Percentage   int        `json:"percentage"`
	Icon         string     `json:"icon"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achievedDate,omitempty"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Icon        string    `json:"icon"`
	BonusPoints int       `json:"bonusPoints,omitempty"`
}

type Reward struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Value       float64 `json:"value"`
}

// ChallengeTheme is cosmetic metadata passed through to clients untouched.
type ChallengeTheme struct {
	Name   string    `json:"name"`
	Colors [3]string `json:"colors"`
}

// Challenge is a generated savings challenge. It is created by the factory and
// mutated exclusively through ApplyContribution; once the status is terminal
// the snapshot is frozen.
type Challenge struct {
	ID                   uuid.UUID           `db:"id" json:"id"`
	UserID               uuid.UUID           `db:"user_id" json:"userId"`
	Type                 ChallengeType       `db:"type" json:"type"`
	Name                 string              `db:"name" json:"name"`
	Description          string              `db:"description" json:"description"`
	StartDate            time.Time           `db:"start_date" json:"startDate"`
	EndDate              time.Time           `db:"end_date" json:"endDate"`
	DurationDays         int                 `db:"duration_days" json:"durationDays"`
	TargetAmount         float64             `db:"target_amount" json:"targetAmount"`
	CurrentAmount        float64             `db:"current_amount" json:"currentAmount"`
	DailyTargets         []DailyTarget       `db:"daily_targets" json:"dailyTargets"`
	Progress             int                 `db:"progress" json:"progress"`
	Status               ChallengeStatus     `db:"status" json:"status"`
	Difficulty           ChallengeDifficulty `db:"difficulty" json:"difficulty"`
	Theme                ChallengeTheme      `db:"theme" json:"theme"`
	Milestones           []Milestone         `db:"milestones" json:"milestones"`
	StreakCount          int                 `db:"streak_count" json:"streakCount"`
	LastContributionDate *time.Time          `db:"last_contribution_date" json:"lastContributionDate,omitempty"`
	CompletedDate        *time.Time          `db:"completed_date" json:"completedDate,omitempty"`
	Achievements         []Achievement       `db:"achievements" json:"achievements"`
	Rewards              []Reward            `db:"rewards" json:"rewards"`
	Tips                 []string            `db:"tips" json:"tips"`
	CreatedAt            time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time           `db:"updated_at" json:"updatedAt"`
}
