package service

import (
	"testing"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestValidateContributionDate_ActiveBackdatedRejected(t *testing.T) {
	last := dayAt(2025, 6, 10)
	c := &models.Challenge{
		Status:               models.ChallengeActive,
		LastContributionDate: &last,
	}

	assert.ErrorIs(t, validateContributionDate(c, dayAt(2025, 6, 9)), ErrBackdatedContribution)
	assert.NoError(t, validateContributionDate(c, dayAt(2025, 6, 10)))
	assert.NoError(t, validateContributionDate(c, dayAt(2025, 6, 11)))
}

func TestValidateContributionDate_TerminalReplayNotAnError(t *testing.T) {
	// Replaying a pre-completion contribution against a finished challenge
	// must fall through to the no-op path, not surface as a client error.
	last := dayAt(2025, 6, 10)
	c := &models.Challenge{
		Status:               models.ChallengeCompleted,
		LastContributionDate: &last,
	}

	assert.NoError(t, validateContributionDate(c, dayAt(2025, 6, 9)))

	c.Status = models.ChallengePartiallyCompleted
	assert.NoError(t, validateContributionDate(c, dayAt(2025, 6, 9)))

	c.Status = models.ChallengeFailed
	assert.NoError(t, validateContributionDate(c, dayAt(2025, 6, 9)))
}

func TestValidateContributionDate_FirstContribution(t *testing.T) {
	c := &models.Challenge{Status: models.ChallengeActive}

	assert.NoError(t, validateContributionDate(c, dayAt(2025, 6, 1)))
}

func TestValidateContributionDate_MixedLocations(t *testing.T) {
	east := time.FixedZone("UTC+5", 5*3600)
	last := dayAt(2025, 6, 10)
	c := &models.Challenge{
		Status:               models.ChallengeActive,
		LastContributionDate: &last,
	}

	// June 11 00:30 in UTC+5 is still June 10 in UTC instants, but the
	// calendar day moved forward
	assert.NoError(t, validateContributionDate(c, time.Date(2025, 6, 11, 0, 30, 0, 0, east)))
	assert.ErrorIs(t, validateContributionDate(c, time.Date(2025, 6, 9, 23, 0, 0, 0, east)), ErrBackdatedContribution)
}

func TestChallengeService_LockLifecycle(t *testing.T) {
	s := NewChallengeService(nil, nil, NewChallengeFactory(nil), zap.NewNop())
	id := uuid.New()

	first := s.lockFor(id)
	assert.Same(t, first, s.lockFor(id), "same challenge must map to the same mutex")
	assert.Len(t, s.applyLocks, 1)

	s.releaseLock(id)
	assert.Empty(t, s.applyLocks)

	assert.NotSame(t, first, s.lockFor(id), "a released entry gets a fresh mutex")
}
