package service

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *models.FinancialProfile {
	return &models.FinancialProfile{
		MonthlyIncome:        3000,
		SavingsRate:          10,
		DiscretionaryExpense: 600,
	}
}

func seededFactory() *ChallengeFactory {
	return NewChallengeFactory(rand.New(rand.NewSource(42)))
}

func TestTargetAmount_Formulas(t *testing.T) {
	profile := testProfile()

	tests := []struct {
		challengeType models.ChallengeType
		duration      int
		want          float64
	}{
		{models.ChallengeDaily, 30, 90},          // round(3000*0.001)*30
		{models.ChallengeMonthly, 30, 360},       // round(3000*0.12)*1
		{models.ChallengeWeekly, 28, 240},        // round(3000*0.02)*4
		{models.ChallengeRoundUp, 14, 15},        // round(15*0.5*2)
		{models.ChallengeNoSpend, 7, 112},        // round((600/30)*7*0.8)
		{models.ChallengeSavingSprint, 14, 140},  // round((3000/30)*14*0.10)
		{models.ChallengeDeclutter, 14, 80},      // 2*20*2
		{models.ChallengeHabitSwap, 21, 105},     // 5*21
		{models.ChallengeAutomation, 30, 90},     // round(3000*0.03*1)
		{models.ChallengeIncremental, 28, 75},    // round(7.5*(1+2+3+4))
	}

	for _, tt := range tests {
		t.Run(string(tt.challengeType), func(t *testing.T) {
			got := targetAmount(tt.challengeType, profile, tt.duration)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetAmount_DefaultFallback(t *testing.T) {
	got := targetAmount(models.ChallengeType("mystery"), testProfile(), 30)
	assert.Equal(t, 90.0, got) // round(max(2, 3))*30
}

func TestGenerate_PinnedPreferences(t *testing.T) {
	f := seededFactory()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	c, err := f.Generate(uuid.New(), testProfile(), GeneratePreferences{
		Type:         models.ChallengeDaily,
		DurationDays: 10,
		Theme:        "ocean",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, models.ChallengeDaily, c.Type)
	assert.Equal(t, 10, c.DurationDays)
	assert.Equal(t, "ocean", c.Theme.Name)
	assert.Equal(t, models.ChallengeActive, c.Status)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), c.StartDate)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), c.EndDate)
	assert.Len(t, c.DailyTargets, 10)
	assert.Len(t, c.Tips, 5)
	assert.Zero(t, c.CurrentAmount)
	assert.Empty(t, c.Achievements)
}

func TestGenerate_UnknownTypeRejected(t *testing.T) {
	f := seededFactory()

	_, err := f.Generate(uuid.New(), testProfile(), GeneratePreferences{Type: "yolo"}, time.Now())
	assert.ErrorIs(t, err, ErrUnknownChallengeType)
}

func TestGenerate_DurationClampedToTemplateBounds(t *testing.T) {
	f := seededFactory()

	c, err := f.Generate(uuid.New(), testProfile(), GeneratePreferences{
		Type:         models.ChallengeNoSpend,
		DurationDays: 365,
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 30, c.DurationDays) // no-spend caps at 30

	c, err = f.Generate(uuid.New(), testProfile(), GeneratePreferences{
		Type:         models.ChallengeMonthly,
		DurationDays: 3,
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 30, c.DurationDays) // monthly floors at 30
}

func TestDistributeDailyTargets_DailyEvenSplit(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	targets := distributeDailyTargets(models.ChallengeDaily, 100, 10, start)

	require.Len(t, targets, 10)
	for i, slot := range targets {
		assert.Equal(t, i+1, slot.Day)
		assert.Equal(t, start.AddDate(0, 0, i), slot.Date)
		assert.Equal(t, 10.0, slot.Amount)
		assert.Equal(t, models.TargetPending, slot.State)
	}
}

func TestDistributeDailyTargets_WeeklyCycleDays(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	targets := distributeDailyTargets(models.ChallengeWeekly, 240, 28, start)

	require.Len(t, targets, 28)
	for i, slot := range targets {
		if i%7 == 0 {
			assert.Equal(t, 60.0, slot.Amount, "cycle day %d", i)
			assert.Equal(t, models.TargetPending, slot.State)
		} else {
			assert.Zero(t, slot.Amount)
			assert.Equal(t, models.TargetNotApplicable, slot.State)
		}
	}
}

func TestDistributeDailyTargets_IncrementalTriangular(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	target := 100.0
	targets := distributeDailyTargets(models.ChallengeIncremental, target, 28, start)

	// base = 100 / (4*5/2) = 10; week amounts 10, 20, 30, 40
	var sum float64
	for i, slot := range targets {
		if i%7 == 0 {
			week := i/7 + 1
			assert.InDelta(t, 10*float64(week), slot.Amount, 1e-9)
			sum += slot.Amount
		} else {
			assert.Equal(t, models.TargetNotApplicable, slot.State)
		}
	}
	assert.InDelta(t, target, sum, 1e-9, "cycle amounts should sum to the target")
}

func TestBuildMilestones_Breakpoints(t *testing.T) {
	short := buildMilestones(100, 7)
	require.Len(t, short, 3)
	assert.Equal(t, []int{33, 66, 100}, []int{short[0].Percentage, short[1].Percentage, short[2].Percentage})

	long := buildMilestones(100, 10)
	require.Len(t, long, 4)
	assert.Equal(t, []int{25, 50, 75, 100}, []int{long[0].Percentage, long[1].Percentage, long[2].Percentage, long[3].Percentage})

	assert.Equal(t, 25.0, long[0].Amount)
	assert.Equal(t, 50.0, long[1].Amount)
	assert.Equal(t, 75.0, long[2].Amount)
	assert.Equal(t, 100.0, long[3].Amount)

	for _, m := range long {
		assert.False(t, m.Achieved)
		assert.Nil(t, m.AchievedDate)
	}

	assert.Equal(t, "🔷", long[0].Icon)
	assert.Equal(t, "⭐", long[1].Icon)
	assert.Equal(t, "🌟", long[2].Icon)
	assert.Equal(t, "🏆", long[3].Icon)
}

func TestBuildRewards_PointsScaleWithTargetAndDifficulty(t *testing.T) {
	easy, _ := templateFor(models.ChallengeDaily)
	hard, _ := templateFor(models.ChallengeNoSpend)

	easyRewards := buildRewards(easy, 100)
	hardRewards := buildRewards(hard, 100)

	require.Len(t, easyRewards, 3)

	var easyPoints, hardPoints float64
	for _, r := range easyRewards {
		if r.Type == "points" {
			easyPoints = r.Value
		}
	}
	for _, r := range hardRewards {
		if r.Type == "points" {
			hardPoints = r.Value
		}
	}

	// basePoints * log10(100)/2 = basePoints
	assert.Equal(t, 100.0, easyPoints)
	assert.Equal(t, 200.0, hardPoints)

	var boost float64
	for _, r := range easyRewards {
		if r.Type == "stat" {
			boost = r.Value
		}
	}
	assert.Equal(t, 10.0, boost)
}

func TestSampleTips_NoReplacement(t *testing.T) {
	f := seededFactory()

	tips := f.sampleTips(models.ChallengeDaily)
	require.Len(t, tips, 5)

	seen := make(map[string]bool, len(tips))
	for _, tip := range tips {
		assert.False(t, seen[tip], "tip sampled twice: %q", tip)
		seen[tip] = true
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	a, err := NewChallengeFactory(rand.New(rand.NewSource(7))).Generate(userID, testProfile(), GeneratePreferences{}, now)
	require.NoError(t, err)
	b, err := NewChallengeFactory(rand.New(rand.NewSource(7))).Generate(userID, testProfile(), GeneratePreferences{}, now)
	require.NoError(t, err)

	assert.Equal(t, a.Type, b.Type)
	assert.Equal(t, a.Theme, b.Theme)
	assert.Equal(t, a.Tips, b.Tips)
	assert.Equal(t, a.TargetAmount, b.TargetAmount)
}

func TestGenerate_IncrementalTargetMatchesDistribution(t *testing.T) {
	f := seededFactory()

	c, err := f.Generate(uuid.New(), testProfile(), GeneratePreferences{
		Type:         models.ChallengeIncremental,
		DurationDays: 28,
	}, time.Now())
	require.NoError(t, err)

	var sum float64
	for _, slot := range c.DailyTargets {
		sum += slot.Amount
	}
	assert.InDelta(t, c.TargetAmount, sum, 1e-6)
	assert.False(t, math.IsNaN(sum))
}
