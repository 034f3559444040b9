package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/suwandre/fundity/internal/models"
	"github.com/suwandre/fundity/internal/scanner"
	"github.com/suwandre/fundity/internal/scheduler"
)

type OpportunityHandler struct {
	scheduler        *scheduler.Scheduler
	defaultMinSpread float64
}

func NewOpportunityHandler(scheduler *scheduler.Scheduler, defaultMinSpread float64) *OpportunityHandler {
	return &OpportunityHandler{scheduler, defaultMinSpread}
}

// Handles GET /v1/opportunities/:symbol.
func (h *OpportunityHandler) GetOpportunities(c fiber.Ctx) error {
	symbol := c.Params("symbol")

	if symbol == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "symbol parameter is required",
		})
	}

	minSpread := h.defaultMinSpread
	if raw := c.Query("min_spread"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "min_spread must be a non-negative number",
			})
		}
		minSpread = parsed
	}

	snap, _, ok := h.scheduler.Latest()
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "no snapshot available yet, try again shortly",
		})
	}

	log.Info().
		Str("symbol", symbol).
		Float64("min_spread", minSpread).
		Msg("scanning for opportunities")

	opportunities := scanner.FindOpportunities(snap, symbol, minSpread)
	if opportunities == nil {
		opportunities = []models.ArbitrageOpportunity{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"symbol":        symbol,
		"min_spread":    minSpread,
		"opportunities": opportunities,
	})
}
