package service

import (
	"fmt"
	"math"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
)

// ApplyContribution applies a single (amount, date) contribution to a
// challenge snapshot and returns the updated snapshot. It is a pure state
// transition: no I/O, no clock reads, no hidden state. Callers must serialize
// applies per challenge id, since streak and milestone outcomes depend on
// chronological ordering.
//
// A terminal challenge is returned unchanged, which makes retries and replays
// of the same request safe.
func ApplyContribution(c models.Challenge, amount float64, date time.Time) models.Challenge {
	if c.Status.Terminal() {
		return c
	}

	// Copy mutable slices so the input snapshot stays untouched.
	c.Milestones = append([]models.Milestone(nil), c.Milestones...)
	c.Achievements = append([]models.Achievement(nil), c.Achievements...)
	c.DailyTargets = append([]models.DailyTarget(nil), c.DailyTargets...)

	day := calendarDate(date)

	c.CurrentAmount += amount
	if c.TargetAmount > 0 {
		c.Progress = int(math.Min(100, math.Round(c.CurrentAmount/c.TargetAmount*100)))
	} else {
		c.Progress = 100
	}

	if c.CurrentAmount >= c.TargetAmount {
		c.Status = models.ChallengeCompleted
		c.CompletedDate = &day
		c.Achievements = append(c.Achievements, models.Achievement{
			ID:          "challenge-complete",
			Name:        "Challenge Complete",
			Description: "You hit the full target amount.",
			Date:        day,
			Icon:        "🎉",
		})
	}

	previousStreak := c.StreakCount
	c.StreakCount = nextStreak(c.StreakCount, c.LastContributionDate, day)
	c.LastContributionDate = &day

	markDailyTarget(c.DailyTargets, day, amount)

	for i := range c.Milestones {
		m := &c.Milestones[i]
		if !m.Achieved && c.CurrentAmount >= m.Amount {
			m.Achieved = true
			m.AchievedDate = &day
			c.Achievements = append(c.Achievements, models.Achievement{
				ID:          "milestone-" + fmt.Sprintf("%d", m.Percentage),
				Name:        m.Name,
				Description: fmt.Sprintf("Crossed the %d%% milestone.", m.Percentage),
				Date:        day,
				Icon:        m.Icon,
			})
		}
	}

	if c.StreakCount != previousStreak {
		for _, threshold := range streakBonusThresholds {
			if c.StreakCount == threshold {
				c.Achievements = append(c.Achievements, models.Achievement{
					ID:          fmt.Sprintf("streak-%d", threshold),
					Name:        fmt.Sprintf("%d-Day Streak", threshold),
					Description: fmt.Sprintf("Contributed %d days in a row.", threshold),
					Date:        day,
					Icon:        "🔥",
					BonusPoints: streakBonuses[threshold],
				})
			}
		}
	}

	if day.After(c.EndDate) && c.Status != models.ChallengeCompleted {
		if c.Progress >= 80 {
			c.Status = models.ChallengePartiallyCompleted
			c.Achievements = append(c.Achievements, models.Achievement{
				ID:          "almost-there",
				Name:        "Almost There",
				Description: "Reached at least 80% of the target by the deadline.",
				Date:        day,
				Icon:        "💪",
			})
		} else {
			c.Status = models.ChallengeFailed
		}
	}

	return c
}

// nextStreak implements the streak law. First contribution starts at 1; a
// repeat on the same calendar day leaves the streak alone; the next calendar
// day extends it; any gap (or a backwards date) resets to 1. Both sides are
// normalized to UTC calendar days, so mixed source locations and DST shifts
// cannot skew the day count.
func nextStreak(streak int, last *time.Time, day time.Time) int {
	if last == nil {
		return 1
	}

	diffDays := int(calendarDate(day).Sub(calendarDate(*last)).Hours() / 24)

	switch {
	case diffDays == 0:
		return streak
	case diffDays == 1:
		return streak + 1
	default:
		return 1
	}
}

// markDailyTarget flips the day's slot to satisfied once a contribution covers
// its amount. Not-applicable slots (rest days of cycle-based plans) stay as
// they are.
func markDailyTarget(targets []models.DailyTarget, day time.Time, amount float64) {
	for i := range targets {
		t := &targets[i]
		if t.State == models.TargetPending && calendarDate(t.Date).Equal(day) && amount >= t.Amount {
			t.State = models.TargetSatisfied
			return
		}
	}
}
