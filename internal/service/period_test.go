package service

import (
	"testing"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindow_WeeklyMidweek(t *testing.T) {
	// Wednesday 2025-06-18 15:42
	now := time.Date(2025, 6, 18, 15, 42, 7, 0, time.UTC)

	start, end := ResolveWindow(models.CycleWeekly, now)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start, "should be the preceding Sunday at midnight")
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, now, end)
}

func TestResolveWindow_WeeklyOnSunday(t *testing.T) {
	// Sunday itself starts a fresh window
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	start, _ := ResolveWindow(models.CycleWeekly, now)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestResolveWindow_Monthly(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 42, 7, 0, time.UTC)

	start, end := ResolveWindow(models.CycleMonthly, now)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)
}

func TestResolveWindow_MonthlyOnFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 1, 0, time.UTC)

	start, _ := ResolveWindow(models.CycleMonthly, now)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
}
