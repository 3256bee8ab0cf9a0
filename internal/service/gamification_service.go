package service

import (
	"context"
	"math"
	"sort"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type achievementTier struct {
	Name       string
	Threshold  int
	Icon       string
	Multiplier float64
}

// achievementTiers in ascending order of completed-challenge count.
var achievementTiers = []achievementTier{
	{Name: "Bronze", Threshold: 1, Icon: "🥉", Multiplier: 1.0},
	{Name: "Silver", Threshold: 5, Icon: "🥈", Multiplier: 1.1},
	{Name: "Gold", Threshold: 10, Icon: "🥇", Multiplier: 1.25},
	{Name: "Platinum", Threshold: 15, Icon: "💠", Multiplier: 1.5},
	{Name: "Diamond", Threshold: 25, Icon: "💎", Multiplier: 2.0},
}

// ComputeLevel aggregates completed challenges into a rank. Pure function of
// its input snapshot.
func ComputeLevel(completed []*models.Challenge) models.AchievementLevel {
	count := len(completed)

	// Default rank is Bronze even before the first completion.
	currentIdx := 0
	for i, tier := range achievementTiers {
		if count >= tier.Threshold {
			currentIdx = i
		}
	}
	current := achievementTiers[currentIdx]
	var next *achievementTier
	if currentIdx+1 < len(achievementTiers) {
		next = &achievementTiers[currentIdx+1]
	}

	level := models.AchievementLevel{
		Level:               current.Name,
		Icon:                current.Icon,
		BonusMultiplier:     current.Multiplier,
		ChallengesCompleted: count,
		TotalPoints:         totalPoints(completed),
		ProgressToNextLevel: 100,
	}

	if next != nil {
		level.NextLevel = next.Name
		level.RequiredForNextLevel = next.Threshold
		progress := math.Round(float64(count-current.Threshold) / float64(next.Threshold-current.Threshold) * 100)
		level.ProgressToNextLevel = int(math.Min(100, math.Max(0, progress)))
	}

	return level
}

// totalPoints scores completed challenges: 100 base, +50 for medium, +100 for
// hard, plus any streak bonus points earned along the way.
func totalPoints(completed []*models.Challenge) int {
	points := 0
	for _, c := range completed {
		points += 100
		switch c.Difficulty {
		case models.DifficultyMedium:
			points += 50
		case models.DifficultyHard:
			points += 100
		}
		for _, a := range c.Achievements {
			points += a.BonusPoints
		}
	}
	return points
}

// BuildLeaderboard ranks users by total points, descending. Pure function of
// the supplied snapshots.
func BuildLeaderboard(usernames map[uuid.UUID]string, challenges []*models.Challenge) []models.LeaderboardEntry {
	byUser := make(map[uuid.UUID][]*models.Challenge)
	for _, c := range challenges {
		byUser[c.UserID] = append(byUser[c.UserID], c)
	}

	entries := make([]models.LeaderboardEntry, 0, len(usernames))
	for userID, username := range usernames {
		var completed []*models.Challenge
		bestStreak := 0
		for _, c := range byUser[userID] {
			if c.StreakCount > bestStreak {
				bestStreak = c.StreakCount
			}
			if c.Status == models.ChallengeCompleted {
				completed = append(completed, c)
			}
		}

		level := ComputeLevel(completed)

		totalSaved := 0.0
		for _, c := range completed {
			totalSaved += c.CurrentAmount
		}

		entries = append(entries, models.LeaderboardEntry{
			UserID:              userID,
			Username:            username,
			Level:               level.Level,
			LevelIcon:           level.Icon,
			TotalPoints:         level.TotalPoints,
			ChallengesCompleted: level.ChallengesCompleted,
			BestStreak:          bestStreak,
			TotalSaved:          totalSaved,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Username < entries[j].Username
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

type GamificationService struct {
	challengeRepo *repository.ChallengeRepository
	userRepo      *repository.UserRepository
	logger        *zap.Logger
}

func NewGamificationService(
	challengeRepo *repository.ChallengeRepository,
	userRepo *repository.UserRepository,
	logger *zap.Logger,
) *GamificationService {
	return &GamificationService{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (s *GamificationService) GetLevel(ctx context.Context, userID uuid.UUID) (*models.AchievementLevel, error) {
	completed, err := s.challengeRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	level := ComputeLevel(completed)
	return &level, nil
}

func (s *GamificationService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	usernames, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	challenges, err := s.challengeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return BuildLeaderboard(usernames, challenges), nil
}
