package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/suwandre/fundity/internal/scheduler"
)

type FundingHandler struct {
	scheduler *scheduler.Scheduler
}

func NewFundingHandler(scheduler *scheduler.Scheduler) *FundingHandler {
	return &FundingHandler{scheduler}
}

// Handles GET /v1/health.
func (h *FundingHandler) GetHealth(c fiber.Ctx) error {
	_, fetchedAt, ok := h.scheduler.Latest()

	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "waiting for first snapshot",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":       "ok",
		"snapshot_age": time.Since(fetchedAt).String(),
	})
}

// Handles GET /v1/funding.
func (h *FundingHandler) GetFunding(c fiber.Ctx) error {
	snap, fetchedAt, ok := h.scheduler.Latest()

	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "no snapshot available yet, try again shortly",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"fetched_at": fetchedAt,
		"data":       snap,
	})
}

// Handles GET /v1/rates/:exchange/:symbol.
func (h *FundingHandler) GetRate(c fiber.Ctx) error {
	exchange := c.Params("exchange")
	symbol := c.Params("symbol")

	snap, _, ok := h.scheduler.Latest()
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "no snapshot available yet, try again shortly",
		})
	}

	rates, ok := snap.FundingRates[exchange]
	if !ok {
		log.Warn().Str("exchange", exchange).Msg("exchange not in snapshot")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "exchange not found",
		})
	}

	rate, ok := rates[symbol]
	if !ok {
		log.Warn().Str("exchange", exchange).Str("symbol", symbol).Msg("symbol not quoted on exchange")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "symbol not quoted on this exchange",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"exchange": exchange,
		"symbol":   symbol,
		"rate":     float64(rate) / 10000.0,
	})
}
