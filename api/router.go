package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/suwandre/fundity/api/handlers"
	"github.com/suwandre/fundity/internal/scheduler"
)

func SetupRoutes(app *fiber.App, sched *scheduler.Scheduler, defaultMinSpread float64) {
	fundingHandler := handlers.NewFundingHandler(sched)
	opportunityHandler := handlers.NewOpportunityHandler(sched, defaultMinSpread)

	v1 := app.Group("/v1")

	v1.Get("/health", fundingHandler.GetHealth)
	v1.Get("/funding", fundingHandler.GetFunding)
	v1.Get("/rates/:exchange/:symbol", fundingHandler.GetRate)
	v1.Get("/opportunities/:symbol", opportunityHandler.GetOpportunities)
}
