package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrChallengeNotFound       = errors.New("challenge not found")
	ErrProfileNotFound         = errors.New("financial profile not set")
	ErrBackdatedContribution   = errors.New("contribution date precedes the last recorded contribution")
	ErrInvalidContribution     = errors.New("invalid contribution")
	ErrInvalidChallengeRequest = errors.New("invalid challenge request")
)

type ChallengeService struct {
	challengeRepo *repository.ChallengeRepository
	userRepo      *repository.UserRepository
	factory       *ChallengeFactory
	logger        *zap.Logger

	// applyLocks serializes ApplyContribution per challenge id. Streak and
	// milestone outcomes depend on strict chronological ordering, so two
	// concurrent contributions to the same challenge must not interleave
	// between load and save.
	mu         sync.Mutex
	applyLocks map[uuid.UUID]*sync.Mutex
}

func NewChallengeService(
	challengeRepo *repository.ChallengeRepository,
	userRepo *repository.UserRepository,
	factory *ChallengeFactory,
	logger *zap.Logger,
) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		factory:       factory,
		logger:        logger,
		applyLocks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *ChallengeService) lockFor(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.applyLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.applyLocks[id] = lock
	}
	return lock
}

func (s *ChallengeService) releaseLock(id uuid.UUID) {
	s.mu.Lock()
	delete(s.applyLocks, id)
	s.mu.Unlock()
}

// Generate builds a new challenge from the user's stored financial profile
// and any preferences in the request, then persists it.
func (s *ChallengeService) Generate(ctx context.Context, userID uuid.UUID, req *dto.GenerateChallengeRequest) (*models.Challenge, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	prefs := GeneratePreferences{
		Type:         models.ChallengeType(req.Type),
		DurationDays: req.DurationDays,
		Theme:        req.Theme,
	}

	challenge, err := s.factory.Generate(userID, profile, prefs, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	s.logger.Info("Challenge generated",
		zap.String("user_id", userID.String()),
		zap.String("challenge_id", challenge.ID.String()),
		zap.String("type", string(challenge.Type)),
		zap.Float64("target", challenge.TargetAmount),
	)

	return challenge, nil
}

// Contribute applies one contribution to a challenge and persists the new
// snapshot. Contributions are serialized per challenge; on an active challenge
// a date earlier than the last recorded contribution is rejected outright
// rather than fed to the streak algorithm.
func (s *ChallengeService) Contribute(ctx context.Context, userID, challengeID uuid.UUID, amount float64, date time.Time) (*models.Challenge, error) {
	if amount <= 0 {
		return nil, ErrInvalidContribution
	}

	lock := s.lockFor(challengeID)
	lock.Lock()
	defer lock.Unlock()

	challenge, err := s.challengeRepo.GetByID(ctx, challengeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}

	// A terminal challenge is a frozen snapshot; replaying any contribution
	// against it, backdated or not, returns the snapshot untouched.
	if challenge.Status.Terminal() {
		return challenge, nil
	}

	if err := validateContributionDate(challenge, date); err != nil {
		return nil, err
	}

	updated := ApplyContribution(*challenge, amount, date)
	updated.UpdatedAt = time.Now()

	if err := s.challengeRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	if updated.Status != challenge.Status {
		s.logger.Info("Challenge status changed",
			zap.String("challenge_id", challengeID.String()),
			zap.String("from", string(challenge.Status)),
			zap.String("to", string(updated.Status)),
		)
	}

	if updated.Status.Terminal() {
		// Finished challenges never mutate again; drop the lock entry so the
		// map does not accumulate one mutex per finished challenge. A late
		// waiter holding the old mutex re-loads and hits the terminal no-op.
		s.releaseLock(challengeID)
	}

	return &updated, nil
}

// validateContributionDate enforces chronological ordering on an active
// challenge. Terminal challenges are exempt: any replay against a frozen
// snapshot is a no-op, never an error.
func validateContributionDate(c *models.Challenge, date time.Time) error {
	if c.Status.Terminal() || c.LastContributionDate == nil {
		return nil
	}
	if calendarDate(date).Before(calendarDate(*c.LastContributionDate)) {
		return ErrBackdatedContribution
	}
	return nil
}

func (s *ChallengeService) List(ctx context.Context, userID uuid.UUID) ([]*models.Challenge, error) {
	return s.challengeRepo.ListByUser(ctx, userID)
}

func (s *ChallengeService) Get(ctx context.Context, userID, challengeID uuid.UUID) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return challenge, nil
}
