package handlers

import (
	"strconv"
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReflectionHandler struct {
	reflectionService *service.ReflectionService
	logger            *zap.Logger
}

func NewReflectionHandler(reflectionService *service.ReflectionService, logger *zap.Logger) *ReflectionHandler {
	return &ReflectionHandler{
		reflectionService: reflectionService,
		logger:            logger,
	}
}

func reflectionResponse(r *models.SpendingReflection) dto.ReflectionResponse {
	summary := make(map[string]string, len(r.CategorySummary))
	for category, status := range r.CategorySummary {
		summary[category] = string(status)
	}

	return dto.ReflectionResponse{
		ID:              r.ID.String(),
		WeekStartDate:   r.WeekStartDate.Format("2006-01-02"),
		WeekEndDate:     r.WeekEndDate.Format("2006-01-02"),
		OverallStatus:   string(r.OverallStatus),
		CategorySummary: summary,
		AISuggestion:    r.AISuggestion,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

// UpsertWeekly godoc
// @Summary Record a weekly reflection
// @Description Inserts or replaces the reflection for the exact week; the suggestion text is stored as supplied
// @Tags reflections
// @Accept json
// @Produce json
// @Param request body dto.UpsertReflectionRequest true "Reflection"
// @Success 200 {object} dto.ReflectionResponse
// @Failure 422 {object} map[string]string
// @Security Bearer
// @Router /api/v1/reflections [post]
func (h *ReflectionHandler) UpsertWeekly(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpsertReflectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	reflection, err := h.reflectionService.UpsertWeekly(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrInvalidReflection {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to upsert reflection", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record reflection",
		})
	}

	return c.JSON(reflectionResponse(reflection))
}

// ListRecent godoc
// @Summary List recent weekly reflections
// @Tags reflections
// @Produce json
// @Param limit query int false "Max rows (default 12)"
// @Success 200 {array} dto.ReflectionResponse
// @Security Bearer
// @Router /api/v1/reflections [get]
func (h *ReflectionHandler) ListRecent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	reflections, err := h.reflectionService.ListRecent(c.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to list reflections", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list reflections",
		})
	}

	resp := make([]dto.ReflectionResponse, 0, len(reflections))
	for _, reflection := range reflections {
		resp = append(resp, reflectionResponse(reflection))
	}

	return c.JSON(resp)
}
