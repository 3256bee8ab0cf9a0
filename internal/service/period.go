package service

import (
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
)

// ResolveWindow computes the accounting window a limit cycle covers at the
// reference instant. Weekly cycles start on the most recent Sunday at
// midnight; monthly cycles start on the first calendar day of the month.
// The window is [start, now].
func ResolveWindow(cycle models.LimitCycle, now time.Time) (time.Time, time.Time) {
	var start time.Time
	switch cycle {
	case models.CycleWeekly:
		start = truncateDay(now).AddDate(0, 0, -int(now.Weekday()))
	case models.CycleMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		start = truncateDay(now)
	}
	return start, now
}

// truncateDay zeroes the time-of-day component, keeping the location.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDate maps an instant to its calendar day as a UTC midnight. Streak
// and daily-target arithmetic compares these, so two contributions carrying
// different locations still land on well-defined days exactly 24h apart.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
