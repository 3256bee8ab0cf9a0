package service

import (
	"testing"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSpending_Classification(t *testing.T) {
	tests := []struct {
		name       string
		spent      float64
		limit      float64
		wantPct    float64
		wantStatus models.GuardrailStatus
	}{
		{"well under", 100, 400, 25, models.StatusSafe},
		{"just under warning band", 319, 400, 79.75, models.StatusSafe},
		{"exactly at warning threshold", 320, 400, 80, models.StatusWarning},
		{"inside warning band", 399, 400, 99.75, models.StatusWarning},
		{"exactly at limit", 400, 400, 100, models.StatusOver},
		{"over the limit", 420, 400, 105, models.StatusOver},
		{"zero limit never divides", 50, 0, 0, models.StatusSafe},
		{"negative limit guarded", 50, -10, 0, models.StatusSafe},
		{"no spending", 0, 400, 0, models.StatusSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, status := evaluateSpending(tt.spent, tt.limit)
			assert.Equal(t, tt.wantPct, pct)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestEvaluateSpending_MonthlyScenario(t *testing.T) {
	// Food limit $400/month, $320 spent month to date
	pct, status := evaluateSpending(320, 400)
	assert.Equal(t, 80.0, pct)
	assert.Equal(t, models.StatusWarning, status)

	// Another $100 pushes the total to $420
	pct, status = evaluateSpending(420, 400)
	assert.Equal(t, 105.0, pct)
	assert.Equal(t, models.StatusOver, status)
}
