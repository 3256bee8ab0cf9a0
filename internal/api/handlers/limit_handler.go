package handlers

import (
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LimitHandler struct {
	limitService *service.LimitService
	logger       *zap.Logger
}

func NewLimitHandler(limitService *service.LimitService, logger *zap.Logger) *LimitHandler {
	return &LimitHandler{
		limitService: limitService,
		logger:       logger,
	}
}

func limitResponse(limit *models.SpendingLimit) dto.LimitResponse {
	return dto.LimitResponse{
		ID:          limit.ID.String(),
		Category:    limit.Category,
		LimitAmount: limit.LimitAmount,
		Cycle:       string(limit.Cycle),
		IsActive:    limit.IsActive,
		CreatedAt:   limit.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   limit.UpdatedAt.Format(time.RFC3339),
	}
}

// SetLimit godoc
// @Summary Create or update a spending limit
// @Description Upserts the single limit for the caller's (category); cycle and amount are replaced in place
// @Tags limits
// @Accept json
// @Produce json
// @Param request body dto.SetLimitRequest true "Limit"
// @Success 200 {object} dto.LimitResponse
// @Failure 422 {object} map[string]string
// @Security Bearer
// @Router /api/v1/limits [post]
func (h *LimitHandler) SetLimit(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.SetLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	limit, err := h.limitService.SetLimit(c.Context(), userID, &req)
	if err != nil {
		switch err {
		case service.ErrInvalidLimit:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		case service.ErrLimitConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to set limit", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to set limit",
		})
	}

	return c.JSON(limitResponse(limit))
}

// ListLimits godoc
// @Summary List spending limits
// @Tags limits
// @Produce json
// @Success 200 {array} dto.LimitResponse
// @Security Bearer
// @Router /api/v1/limits [get]
func (h *LimitHandler) ListLimits(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	limits, err := h.limitService.ListLimits(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list limits", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list limits",
		})
	}

	resp := make([]dto.LimitResponse, 0, len(limits))
	for _, limit := range limits {
		resp = append(resp, limitResponse(limit))
	}

	return c.JSON(resp)
}

// RemoveLimit godoc
// @Summary Delete a spending limit
// @Tags limits
// @Param id path string true "Limit ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/limits/{id} [delete]
func (h *LimitHandler) RemoveLimit(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid limit id",
		})
	}

	if err := h.limitService.RemoveLimit(c.Context(), id, userID); err != nil {
		if err == service.ErrLimitNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Limit not found",
			})
		}
		h.logger.Error("Failed to remove limit", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove limit",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
