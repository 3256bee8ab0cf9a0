package handlers

import (
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChallengeHandler struct {
	challengeService *service.ChallengeService
	logger           *zap.Logger
}

func NewChallengeHandler(challengeService *service.ChallengeService, logger *zap.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
		logger:           logger,
	}
}

// Generate godoc
// @Summary Generate a new savings challenge
// @Description Builds a challenge from the stored financial profile; type, duration and theme may be pinned
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body dto.GenerateChallengeRequest true "Preferences"
// @Success 201 {object} models.Challenge
// @Failure 412 {object} map[string]string
// @Security Bearer
// @Router /api/v1/challenges/generate [post]
func (h *ChallengeHandler) Generate(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.GenerateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	challenge, err := h.challengeService.Generate(c.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrProfileNotFound:
			return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{
				"error": "Set your financial profile before generating a challenge",
			})
		case service.ErrUnknownChallengeType:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to generate challenge", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate challenge",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(challenge)
}

// Contribute godoc
// @Summary Apply a contribution to a challenge
// @Description Applies one (amount, date) event; contributions to a finished challenge are a safe no-op
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body dto.ContributeRequest true "Contribution"
// @Success 200 {object} models.Challenge
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security Bearer
// @Router /api/v1/challenges/{id}/contribute [post]
func (h *ChallengeHandler) Contribute(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid challenge id",
		})
	}

	var req dto.ContributeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Invalid contribution date",
			})
		}
		date = parsed
	}

	challenge, err := h.challengeService.Contribute(c.Context(), userID, id, req.Amount, date)
	if err != nil {
		switch err {
		case service.ErrChallengeNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Challenge not found",
			})
		case service.ErrBackdatedContribution, service.ErrInvalidContribution:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to apply contribution", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to apply contribution",
		})
	}

	return c.JSON(challenge)
}

// List godoc
// @Summary List the caller's challenges
// @Tags challenges
// @Produce json
// @Success 200 {array} models.Challenge
// @Security Bearer
// @Router /api/v1/challenges [get]
func (h *ChallengeHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	challenges, err := h.challengeService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list challenges", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list challenges",
		})
	}

	return c.JSON(challenges)
}

// Get godoc
// @Summary Fetch one challenge
// @Tags challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} models.Challenge
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/challenges/{id} [get]
func (h *ChallengeHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid challenge id",
		})
	}

	challenge, err := h.challengeService.Get(c.Context(), userID, id)
	if err != nil {
		if err == service.ErrChallengeNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Challenge not found",
			})
		}
		h.logger.Error("Failed to fetch challenge", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch challenge",
		})
	}

	return c.JSON(challenge)
}
