package handlers

import (
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// UpdateProfile godoc
// @Summary Set the financial profile
// @Description Stores monthly income, savings rate and discretionary spend used by the challenge generator
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} dto.ProfileResponse
// @Failure 422 {object} map[string]string
// @Security Bearer
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	profile, err := h.profileService.UpdateProfile(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrInvalidProfile {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(dto.ProfileResponse{
		MonthlyIncome:        profile.MonthlyIncome,
		SavingsRate:          profile.SavingsRate,
		DiscretionaryExpense: profile.DiscretionaryExpense,
		UpdatedAt:            profile.UpdatedAt.Format(time.RFC3339),
	})
}

// GetProfile godoc
// @Summary Fetch the financial profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		if err == service.ErrProfileNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Profile not set",
			})
		}
		h.logger.Error("Failed to fetch profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch profile",
		})
	}

	return c.JSON(dto.ProfileResponse{
		MonthlyIncome:        profile.MonthlyIncome,
		SavingsRate:          profile.SavingsRate,
		DiscretionaryExpense: profile.DiscretionaryExpense,
		UpdatedAt:            profile.UpdatedAt.Format(time.RFC3339),
	})
}
