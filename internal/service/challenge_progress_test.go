package service

import (
	"testing"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeChallenge(target float64, duration int) models.Challenge {
	start := dayAt(2025, 6, 1)
	return models.Challenge{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Type:         models.ChallengeDaily,
		Status:       models.ChallengeActive,
		Difficulty:   models.DifficultyEasy,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, duration-1),
		DurationDays: duration,
		TargetAmount: target,
		DailyTargets: distributeDailyTargets(models.ChallengeDaily, target, duration, start),
		Milestones:   buildMilestones(target, duration),
		Achievements: []models.Achievement{},
	}
}

func TestApplyContribution_TerminalIsNoOp(t *testing.T) {
	c := activeChallenge(100, 10)
	c.Status = models.ChallengeCompleted
	c.CurrentAmount = 100
	c.Progress = 100

	got := ApplyContribution(c, 25, dayAt(2025, 6, 5))

	assert.Equal(t, c, got)
}

func TestApplyContribution_ProgressAndAmount(t *testing.T) {
	c := activeChallenge(100, 10)

	got := ApplyContribution(c, 37, dayAt(2025, 6, 1))

	assert.Equal(t, 37.0, got.CurrentAmount)
	assert.Equal(t, 37, got.Progress)
	assert.Equal(t, models.ChallengeActive, got.Status)
	require.NotNil(t, got.LastContributionDate)
	assert.Equal(t, dayAt(2025, 6, 1), *got.LastContributionDate)
}

func TestApplyContribution_InputSnapshotUntouched(t *testing.T) {
	c := activeChallenge(100, 10)

	_ = ApplyContribution(c, 60, dayAt(2025, 6, 1))

	assert.False(t, c.Milestones[0].Achieved, "caller's milestone slice must not be mutated")
	assert.Equal(t, models.TargetPending, c.DailyTargets[0].State)
	assert.Empty(t, c.Achievements)
}

func TestApplyContribution_StreakLaw(t *testing.T) {
	c := activeChallenge(1000, 30)

	// first contribution starts the streak
	c = ApplyContribution(c, 10, dayAt(2025, 6, 1))
	assert.Equal(t, 1, c.StreakCount)

	// same calendar day leaves it alone
	c = ApplyContribution(c, 10, time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, c.StreakCount)

	// next day extends
	c = ApplyContribution(c, 10, dayAt(2025, 6, 2))
	assert.Equal(t, 2, c.StreakCount)
	c = ApplyContribution(c, 10, dayAt(2025, 6, 3))
	assert.Equal(t, 3, c.StreakCount)

	// a gap resets to 1
	c = ApplyContribution(c, 10, dayAt(2025, 6, 6))
	assert.Equal(t, 1, c.StreakCount)
}

func TestApplyContribution_StreakBonusAwardedOnce(t *testing.T) {
	c := activeChallenge(1000, 30)

	c = ApplyContribution(c, 10, dayAt(2025, 6, 1))
	c = ApplyContribution(c, 10, dayAt(2025, 6, 2))
	c = ApplyContribution(c, 10, dayAt(2025, 6, 3))

	var bonus *models.Achievement
	for i := range c.Achievements {
		if c.Achievements[i].ID == "streak-3" {
			bonus = &c.Achievements[i]
		}
	}
	require.NotNil(t, bonus, "3 day streak should award a bonus")
	assert.Equal(t, 10, bonus.BonusPoints)
	assert.Equal(t, "🔥", bonus.Icon)

	// another contribution on the same day keeps the streak at 3 and must not
	// award the bonus again
	c = ApplyContribution(c, 10, dayAt(2025, 6, 3))
	count := 0
	for _, a := range c.Achievements {
		if a.ID == "streak-3" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestApplyContribution_MilestonesMonotonic(t *testing.T) {
	c := activeChallenge(100, 10) // milestones at 25/50/75/100

	c = ApplyContribution(c, 60, dayAt(2025, 6, 1))

	assert.True(t, c.Milestones[0].Achieved)
	assert.True(t, c.Milestones[1].Achieved)
	assert.False(t, c.Milestones[2].Achieved)
	require.NotNil(t, c.Milestones[0].AchievedDate)
	assert.Equal(t, dayAt(2025, 6, 1), *c.Milestones[0].AchievedDate)
	firstDate := *c.Milestones[1].AchievedDate

	c = ApplyContribution(c, 20, dayAt(2025, 6, 3))

	assert.True(t, c.Milestones[2].Achieved)
	assert.Equal(t, firstDate, *c.Milestones[1].AchievedDate, "achieved date must not move once set")
}

func TestApplyContribution_DailyTargetSatisfied(t *testing.T) {
	c := activeChallenge(100, 10) // 10 per day

	c = ApplyContribution(c, 10, dayAt(2025, 6, 3))

	assert.Equal(t, models.TargetSatisfied, c.DailyTargets[2].State)
	assert.Equal(t, models.TargetPending, c.DailyTargets[0].State)

	// too small a contribution leaves the slot pending
	c = ApplyContribution(c, 4, dayAt(2025, 6, 4))
	assert.Equal(t, models.TargetPending, c.DailyTargets[3].State)
}

func TestApplyContribution_TenDailyTensCompletes(t *testing.T) {
	c := activeChallenge(100, 10)

	for i := 0; i < 10; i++ {
		c = ApplyContribution(c, 10, dayAt(2025, 6, 1+i))
	}

	assert.Equal(t, models.ChallengeCompleted, c.Status)
	assert.Equal(t, 100.0, c.CurrentAmount)
	assert.Equal(t, 100, c.Progress)
	assert.Equal(t, 10, c.StreakCount)
	require.NotNil(t, c.CompletedDate)
	assert.Equal(t, dayAt(2025, 6, 10), *c.CompletedDate)

	for _, m := range c.Milestones {
		assert.True(t, m.Achieved, "milestone %s", m.ID)
	}

	// milestone achieved dates never go backwards
	for i := 1; i < len(c.Milestones); i++ {
		prev := *c.Milestones[i-1].AchievedDate
		cur := *c.Milestones[i].AchievedDate
		assert.False(t, cur.Before(prev))
	}

	var ids []string
	for _, a := range c.Achievements {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "challenge-complete")
	assert.Contains(t, ids, "streak-3")
	assert.Contains(t, ids, "streak-7")
}

func TestApplyContribution_ExpiryPartiallyCompleted(t *testing.T) {
	c := activeChallenge(100, 5)
	c.CurrentAmount = 80
	c.Progress = 80

	got := ApplyContribution(c, 5, dayAt(2025, 6, 20)) // well past the end date

	assert.Equal(t, models.ChallengePartiallyCompleted, got.Status)
	var ids []string
	for _, a := range got.Achievements {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "almost-there")
}

func TestApplyContribution_ExpiryFailed(t *testing.T) {
	c := activeChallenge(100, 5)
	c.CurrentAmount = 20
	c.Progress = 20

	got := ApplyContribution(c, 5, dayAt(2025, 6, 20))

	assert.Equal(t, models.ChallengeFailed, got.Status)
	assert.Nil(t, got.CompletedDate)
}

func TestApplyContribution_CompletionBeatsExpiry(t *testing.T) {
	c := activeChallenge(100, 5)
	c.CurrentAmount = 90
	c.Progress = 90

	got := ApplyContribution(c, 10, dayAt(2025, 6, 20))

	assert.Equal(t, models.ChallengeCompleted, got.Status)
}

func TestApplyContribution_ProgressCapsAtHundred(t *testing.T) {
	c := activeChallenge(100, 10)

	got := ApplyContribution(c, 250, dayAt(2025, 6, 1))

	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, 250.0, got.CurrentAmount)
}

func TestNextStreak(t *testing.T) {
	d1 := dayAt(2025, 6, 1)
	d2 := dayAt(2025, 6, 2)
	d5 := dayAt(2025, 6, 5)

	assert.Equal(t, 1, nextStreak(0, nil, d1))
	assert.Equal(t, 4, nextStreak(4, &d1, d1))
	assert.Equal(t, 5, nextStreak(4, &d1, d2))
	assert.Equal(t, 1, nextStreak(4, &d1, d5))
	assert.Equal(t, 1, nextStreak(4, &d2, d1))
}

func TestNextStreak_MixedLocations(t *testing.T) {
	// A stored UTC midnight followed by the next calendar day expressed in a
	// different zone: the instants are not 24h apart, but the calendar days
	// are consecutive.
	east := time.FixedZone("UTC+5", 5*3600)
	west := time.FixedZone("UTC-7", -7*3600)
	lastUTC := dayAt(2025, 6, 1)

	assert.Equal(t, 5, nextStreak(4, &lastUTC, time.Date(2025, 6, 2, 0, 0, 0, 0, east)))
	assert.Equal(t, 5, nextStreak(4, &lastUTC, time.Date(2025, 6, 2, 0, 0, 0, 0, west)))

	// same calendar day in another zone leaves the streak alone
	assert.Equal(t, 4, nextStreak(4, &lastUTC, time.Date(2025, 6, 1, 21, 0, 0, 0, east)))
}

func TestApplyContribution_StreakAcrossLocations(t *testing.T) {
	c := activeChallenge(300, 30) // 10 per day
	east := time.FixedZone("UTC+5", 5*3600)

	c = ApplyContribution(c, 10, dayAt(2025, 6, 1))
	c = ApplyContribution(c, 10, time.Date(2025, 6, 2, 0, 30, 0, 0, east))

	assert.Equal(t, 2, c.StreakCount)
	assert.Equal(t, dayAt(2025, 6, 2), *c.LastContributionDate)
	assert.Equal(t, models.TargetSatisfied, c.DailyTargets[1].State)
}
