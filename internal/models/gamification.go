package models

import "github.com/google/uuid"

// AchievementLevel is the aggregate rank a user earns from completed
// challenges.
type AchievementLevel struct {
	Level                string  `json:"level"`
	Icon                 string  `json:"icon"`
	BonusMultiplier      float64 `json:"bonusMultiplier"`
	ChallengesCompleted  int     `json:"challengesCompleted"`
	NextLevel            string  `json:"nextLevel,omitempty"`
	ProgressToNextLevel  int     `json:"progressToNextLevel"`
	RequiredForNextLevel int     `json:"requiredForNextLevel"`
	TotalPoints          int     `json:"totalPoints"`
}

type LeaderboardEntry struct {
	Rank                int       `json:"rank"`
	UserID              uuid.UUID `json:"userId"`
	Username            string    `json:"username"`
	Level               string    `json:"level"`
	LevelIcon           string    `json:"levelIcon"`
	TotalPoints         int       `json:"totalPoints"`
	ChallengesCompleted int       `json:"challengesCompleted"`
	BestStreak          int       `json:"bestStreak"`
	TotalSaved          float64   `json:"totalSaved"`
}
