package handlers

import (
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GamificationHandler struct {
	gamificationService *service.GamificationService
	logger              *zap.Logger
}

func NewGamificationHandler(gamificationService *service.GamificationService, logger *zap.Logger) *GamificationHandler {
	return &GamificationHandler{
		gamificationService: gamificationService,
		logger:              logger,
	}
}

// GetLevel godoc
// @Summary Current achievement level
// @Description Aggregates the caller's completed challenges into a rank with points and progress
// @Tags gamification
// @Produce json
// @Success 200 {object} models.AchievementLevel
// @Security Bearer
// @Router /api/v1/achievements/level [get]
func (h *GamificationHandler) GetLevel(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	level, err := h.gamificationService.GetLevel(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to compute level", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute level",
		})
	}

	return c.JSON(level)
}

// GetLeaderboard godoc
// @Summary Points leaderboard across users
// @Tags gamification
// @Produce json
// @Success 200 {array} models.LeaderboardEntry
// @Security Bearer
// @Router /api/v1/leaderboard [get]
func (h *GamificationHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.gamificationService.GetLeaderboard(c.Context())
	if err != nil {
		h.logger.Error("Failed to build leaderboard", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build leaderboard",
		})
	}

	return c.JSON(entries)
}
