package service

import (
	"testing"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedChallenges(n int, difficulty models.ChallengeDifficulty) []*models.Challenge {
	out := make([]*models.Challenge, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &models.Challenge{
			ID:         uuid.New(),
			Status:     models.ChallengeCompleted,
			Difficulty: difficulty,
		})
	}
	return out
}

func TestComputeLevel_TierThresholds(t *testing.T) {
	tests := []struct {
		completed int
		wantLevel string
		wantIcon  string
		wantMult  float64
		wantNext  string
	}{
		{0, "Bronze", "🥉", 1.0, "Silver"},
		{1, "Bronze", "🥉", 1.0, "Silver"},
		{4, "Bronze", "🥉", 1.0, "Silver"},
		{5, "Silver", "🥈", 1.1, "Gold"},
		{10, "Gold", "🥇", 1.25, "Platinum"},
		{15, "Platinum", "💠", 1.5, "Diamond"},
		{25, "Diamond", "💎", 2.0, ""},
		{40, "Diamond", "💎", 2.0, ""},
	}

	for _, tt := range tests {
		level := ComputeLevel(completedChallenges(tt.completed, models.DifficultyEasy))

		assert.Equal(t, tt.wantLevel, level.Level, "completed=%d", tt.completed)
		assert.Equal(t, tt.wantIcon, level.Icon)
		assert.Equal(t, tt.wantMult, level.BonusMultiplier)
		assert.Equal(t, tt.wantNext, level.NextLevel)
		assert.Equal(t, tt.completed, level.ChallengesCompleted)
	}
}

func TestComputeLevel_ProgressToNext(t *testing.T) {
	// 7 completed: Silver (threshold 5), Gold at 10 -> 2 of 5 -> 40%
	level := ComputeLevel(completedChallenges(7, models.DifficultyEasy))
	assert.Equal(t, "Silver", level.Level)
	assert.Equal(t, 10, level.RequiredForNextLevel)
	assert.Equal(t, 40, level.ProgressToNextLevel)

	// Diamond has nowhere left to go
	level = ComputeLevel(completedChallenges(30, models.DifficultyEasy))
	assert.Equal(t, 100, level.ProgressToNextLevel)
	assert.Zero(t, level.RequiredForNextLevel)
}

func TestTotalPoints_DifficultyWeights(t *testing.T) {
	assert.Equal(t, 100, totalPoints(completedChallenges(1, models.DifficultyEasy)))
	assert.Equal(t, 150, totalPoints(completedChallenges(1, models.DifficultyMedium)))
	assert.Equal(t, 200, totalPoints(completedChallenges(1, models.DifficultyHard)))
	assert.Equal(t, 350, totalPoints(append(
		completedChallenges(2, models.DifficultyEasy),
		completedChallenges(1, models.DifficultyMedium)...,
	)))
}

func TestTotalPoints_IncludesStreakBonuses(t *testing.T) {
	c := completedChallenges(1, models.DifficultyEasy)
	c[0].Achievements = []models.Achievement{
		{ID: "streak-3", BonusPoints: 10},
		{ID: "streak-7", BonusPoints: 25},
		{ID: "challenge-complete"},
	}

	assert.Equal(t, 135, totalPoints(c))
}

func TestBuildLeaderboard_Ranking(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	usernames := map[uuid.UUID]string{
		alice: "alice",
		bob:   "bob",
		carol: "carol",
	}

	challenges := []*models.Challenge{
		// alice: one easy completion -> 100 points
		{UserID: alice, Status: models.ChallengeCompleted, Difficulty: models.DifficultyEasy, CurrentAmount: 90, StreakCount: 4},
		// bob: one hard completion -> 200 points
		{UserID: bob, Status: models.ChallengeCompleted, Difficulty: models.DifficultyHard, CurrentAmount: 300, StreakCount: 12},
		// carol: medium completion plus an active one that only counts for streak
		{UserID: carol, Status: models.ChallengeCompleted, Difficulty: models.DifficultyMedium, CurrentAmount: 120, StreakCount: 2},
		{UserID: carol, Status: models.ChallengeActive, Difficulty: models.DifficultyEasy, CurrentAmount: 40, StreakCount: 9},
	}

	entries := BuildLeaderboard(usernames, challenges)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"bob", "carol", "alice"}, []string{entries[0].Username, entries[1].Username, entries[2].Username})
	assert.Equal(t, []int{200, 150, 100}, []int{entries[0].TotalPoints, entries[1].TotalPoints, entries[2].TotalPoints})
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})

	// best streak spans every challenge, saved totals only completed ones
	assert.Equal(t, 9, entries[1].BestStreak)
	assert.Equal(t, 120.0, entries[1].TotalSaved)
	assert.Equal(t, 300.0, entries[0].TotalSaved)
}

func TestBuildLeaderboard_TiesBreakByUsername(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	usernames := map[uuid.UUID]string{a: "zoe", b: "amy"}

	challenges := []*models.Challenge{
		{UserID: a, Status: models.ChallengeCompleted, Difficulty: models.DifficultyEasy},
		{UserID: b, Status: models.ChallengeCompleted, Difficulty: models.DifficultyEasy},
	}

	entries := BuildLeaderboard(usernames, challenges)

	require.Len(t, entries, 2)
	assert.Equal(t, "amy", entries[0].Username)
	assert.Equal(t, "zoe", entries[1].Username)
}

func TestBuildLeaderboard_UserWithoutChallenges(t *testing.T) {
	id := uuid.New()
	entries := BuildLeaderboard(map[uuid.UUID]string{id: "newbie"}, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "Bronze", entries[0].Level)
	assert.Zero(t, entries[0].TotalPoints)
	assert.Equal(t, 1, entries[0].Rank)
}
