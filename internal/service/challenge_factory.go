package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/google/uuid"
)

var ErrUnknownChallengeType = errors.New("unknown challenge type")

// GeneratePreferences optionally pin parts of the generated challenge; zero
// values mean "pick for me".
type GeneratePreferences struct {
	Type         models.ChallengeType
	DurationDays int
	Theme        string
}

// ChallengeFactory builds concrete challenges from the static catalog and a
// user's financial profile. All randomness (type, theme, tip sampling) flows
// through the injected source so tests can pin a seed.
type ChallengeFactory struct {
	rng *rand.Rand
}

func NewChallengeFactory(rng *rand.Rand) *ChallengeFactory {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ChallengeFactory{rng: rng}
}

// Generate builds a new active challenge starting today.
func (f *ChallengeFactory) Generate(userID uuid.UUID, profile *models.FinancialProfile, prefs GeneratePreferences, now time.Time) (*models.Challenge, error) {
	tpl, err := f.pickTemplate(prefs.Type)
	if err != nil {
		return nil, err
	}

	duration := tpl.DefaultDuration
	if prefs.DurationDays > 0 {
		duration = prefs.DurationDays
	}
	if duration < tpl.MinDuration {
		duration = tpl.MinDuration
	}
	if duration > tpl.MaxDuration {
		duration = tpl.MaxDuration
	}

	theme := f.pickTheme(prefs.Theme)
	target := targetAmount(tpl.Type, profile, duration)

	start := calendarDate(now)
	end := start.AddDate(0, 0, duration-1)

	created := time.Now()
	challenge := &models.Challenge{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         tpl.Type,
		Name:         tpl.Name,
		Description:  tpl.Description,
		StartDate:    start,
		EndDate:      end,
		DurationDays: duration,
		TargetAmount: target,
		Status:       models.ChallengeActive,
		Difficulty:   tpl.Difficulty,
		Theme:        theme,
		DailyTargets: distributeDailyTargets(tpl.Type, target, duration, start),
		Milestones:   buildMilestones(target, duration),
		Achievements: []models.Achievement{},
		Rewards:      buildRewards(tpl, target),
		Tips:         f.sampleTips(tpl.Type),
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	return challenge, nil
}

func (f *ChallengeFactory) pickTemplate(challengeType models.ChallengeType) (ChallengeTemplate, error) {
	if challengeType == "" {
		return challengeTemplates[f.rng.Intn(len(challengeTemplates))], nil
	}
	tpl, ok := templateFor(challengeType)
	if !ok {
		return ChallengeTemplate{}, ErrUnknownChallengeType
	}
	return tpl, nil
}

func (f *ChallengeFactory) pickTheme(name string) models.ChallengeTheme {
	if name != "" {
		if theme, ok := themeByName(name); ok {
			return theme
		}
	}
	return challengeThemes[f.rng.Intn(len(challengeThemes))]
}

// targetAmount computes the savings goal for a challenge type over the given
// duration. mi is monthly income, sr the savings rate percentage, disc the
// monthly discretionary spend.
func targetAmount(challengeType models.ChallengeType, profile *models.FinancialProfile, duration int) float64 {
	mi := profile.MonthlyIncome
	sr := profile.SavingsRate
	disc := profile.DiscretionaryExpense
	d := float64(duration)
	weeks := math.Ceil(d / 7)
	months := math.Ceil(d / 30)

	switch challengeType {
	case models.ChallengeDaily:
		return math.Round(mi*0.001) * d
	case models.ChallengeWeekly:
		return math.Round(mi*0.02) * weeks
	case models.ChallengeMonthly:
		return math.Round(mi*(sr*1.2/100)) * months
	case models.ChallengeRoundUp:
		return math.Round(15 * 0.5 * (d / 7))
	case models.ChallengeNoSpend:
		return math.Round((disc / 30) * d * 0.8)
	case models.ChallengeSavingSprint:
		return math.Round((mi / 30) * d * 0.10)
	case models.ChallengeIncremental:
		var sum float64
		for i := 0; i < int(weeks); i++ {
			sum += mi * 0.0025 * float64(i+1)
		}
		return math.Round(sum)
	case models.ChallengeDeclutter:
		return 2 * 20 * weeks
	case models.ChallengeHabitSwap:
		return 5 * d
	case models.ChallengeAutomation:
		return math.Round(mi * 0.03 * months)
	default:
		return math.Round(math.Max(2, mi*0.001)) * d
	}
}

// distributeDailyTargets lays the target out over the challenge days. Cycle
// based types only ask for money on cycle boundary days; the in-between slots
// carry amount zero and are marked not applicable rather than pending.
func distributeDailyTargets(challengeType models.ChallengeType, target float64, duration int, start time.Time) []models.DailyTarget {
	targets := make([]models.DailyTarget, 0, duration)
	weeks := int(math.Ceil(float64(duration) / 7))
	months := int(math.Ceil(float64(duration) / 30))

	for i := 0; i < duration; i++ {
		slot := models.DailyTarget{
			Day:   i + 1,
			Date:  start.AddDate(0, 0, i),
			State: models.TargetPending,
		}

		switch challengeType {
		case models.ChallengeWeekly:
			if i%7 == 0 {
				slot.Amount = target / float64(weeks)
			} else {
				slot.State = models.TargetNotApplicable
			}
		case models.ChallengeMonthly:
			if i%7 == 0 {
				slot.Amount = target / float64(months)
			} else {
				slot.State = models.TargetNotApplicable
			}
		case models.ChallengeIncremental:
			if i%7 == 0 {
				base := target / (float64(weeks) * float64(weeks+1) / 2)
				slot.Amount = base * float64(i/7+1)
			} else {
				slot.State = models.TargetNotApplicable
			}
		default:
			// daily and every other type split the goal evenly
			slot.Amount = target / float64(duration)
		}

		targets = append(targets, slot)
	}

	return targets
}

// buildMilestones places the fixed percentage checkpoints. Short challenges
// get thirds; anything longer than a week gets quarters.
func buildMilestones(target float64, duration int) []models.Milestone {
	breakpoints := []int{25, 50, 75, 100}
	if duration <= 7 {
		breakpoints = []int{33, 66, 100}
	}

	milestones := make([]models.Milestone, 0, len(breakpoints))
	for _, pct := range breakpoints {
		milestones = append(milestones, models.Milestone{
			ID:         fmt.Sprintf("milestone-%d", pct),
			Name:       fmt.Sprintf("Reach %d%% of your goal", pct),
			Amount:     math.Round(target * float64(pct) / 100),
			Percentage: pct,
			Icon:       milestoneIcon(pct),
		})
	}

	return milestones
}

func milestoneIcon(pct int) string {
	switch {
	case pct == 100:
		return "🏆"
	case pct >= 75:
		return "🌟"
	case pct >= 50:
		return "⭐"
	default:
		return "🔷"
	}
}

func buildRewards(tpl ChallengeTemplate, target float64) []models.Reward {
	basePoints := 100
	switch tpl.Difficulty {
	case models.DifficultyMedium:
		basePoints = 150
	case models.DifficultyHard:
		basePoints = 200
	}

	totalPoints := float64(basePoints)
	if target > 1 {
		totalPoints = math.Round(float64(basePoints) * math.Log10(target) / 2)
	}

	return []models.Reward{
		{
			Type:        "badge",
			Name:        tpl.Name + " Finisher",
			Description: "Awarded for completing the challenge.",
			Icon:        "🏅",
		},
		{
			Type:        "points",
			Name:        "Challenge Points",
			Description: "Points credited on completion.",
			Icon:        "✨",
			Value:       totalPoints,
		},
		{
			Type:        "stat",
			Name:        "Savings Boost",
			Description: "Estimated boost to your savings rate, in percent.",
			Icon:        "📈",
			Value:       target / 10,
		},
	}
}

// sampleTips picks 2 common and 3 type-specific tips without replacement.
func (f *ChallengeFactory) sampleTips(challengeType models.ChallengeType) []string {
	tips := make([]string, 0, 5)
	tips = append(tips, f.sample(commonTips, 2)...)
	tips = append(tips, f.sample(typeTips[challengeType], 3)...)
	return tips
}

// sample returns n elements chosen via a Fisher–Yates shuffle of a copy.
func (f *ChallengeFactory) sample(pool []string, n int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := f.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
