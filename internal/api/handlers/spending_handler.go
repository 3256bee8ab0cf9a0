package handlers

import (
	"time"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/models"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SpendingHandler struct {
	spendingService  *service.SpendingService
	guardrailService *service.GuardrailService
	logger           *zap.Logger
}

func NewSpendingHandler(
	spendingService *service.SpendingService,
	guardrailService *service.GuardrailService,
	logger *zap.Logger,
) *SpendingHandler {
	return &SpendingHandler{
		spendingService:  spendingService,
		guardrailService: guardrailService,
		logger:           logger,
	}
}

func spendingEntryResponse(entry *models.SpendingLogEntry) dto.SpendingEntryResponse {
	return dto.SpendingEntryResponse{
		ID:          entry.ID.String(),
		Category:    entry.Category,
		AmountSpent: entry.AmountSpent,
		Description: entry.Description,
		Source:      entry.Source,
		Timestamp:   entry.Timestamp.Format(time.RFC3339),
	}
}

// LogSpending godoc
// @Summary Log a spending entry
// @Description Appends a ledger entry and re-evaluates the caller's guardrails
// @Tags spending
// @Accept json
// @Produce json
// @Param request body dto.LogSpendingRequest true "Spending entry"
// @Success 201 {object} dto.LogSpendingResponse
// @Failure 422 {object} map[string]string
// @Security Bearer
// @Router /api/v1/spending [post]
func (h *SpendingHandler) LogSpending(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.LogSpendingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	entry, alerts, err := h.spendingService.LogSpending(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrInvalidSpending {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to log spending", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log spending",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.LogSpendingResponse{
		Entry:  spendingEntryResponse(entry),
		Alerts: alerts,
	})
}

// ListSpending godoc
// @Summary List spending entries
// @Description Newest first, optionally filtered by category and date range
// @Tags spending
// @Produce json
// @Param category query string false "Category filter"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} dto.SpendingEntryResponse
// @Security Bearer
// @Router /api/v1/spending [get]
func (h *SpendingHandler) ListSpending(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid 'from' timestamp",
			})
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid 'to' timestamp",
			})
		}
		to = &parsed
	}

	entries, err := h.spendingService.ListSpending(c.Context(), userID, c.Query("category"), from, to)
	if err != nil {
		h.logger.Error("Failed to list spending", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list spending",
		})
	}

	resp := make([]dto.SpendingEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, spendingEntryResponse(entry))
	}

	return c.JSON(resp)
}

// GetSummary godoc
// @Summary Spending summary for a period
// @Description Aggregates every category seen in the ledger; defaults to the current week
// @Tags spending
// @Produce json
// @Param from query string false "Period start (RFC3339)"
// @Param to query string false "Period end (RFC3339)"
// @Success 200 {object} dto.SpendingSummaryResponse
// @Security Bearer
// @Router /api/v1/spending/summary [get]
func (h *SpendingHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	now := time.Now()
	from, to := service.ResolveWindow(models.CycleWeekly, now)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid 'from' timestamp",
			})
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid 'to' timestamp",
			})
		}
		to = parsed
	}

	summary, err := h.guardrailService.GetSummary(c.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Failed to build summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build summary",
		})
	}

	return c.JSON(summary)
}
