package handler

import (
	"github.com/gofiber/fiber/v2"

	"adgenie/internal/model"
	"adgenie/internal/service"
)

// RegisterRoutes attaches the public HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, campaignSvc service.CampaignService) {
	app.Get("/", Welcome())
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	for _, p := range model.Platforms() {
		api.Get("/"+p.Slug()+"/campaigns", ListCampaigns(campaignSvc, p))
	}
}
