package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"adgenie/internal/model"
	"adgenie/internal/service"
)

// ListCampaigns godoc
// @Summary  Campaigns for an ad platform
// @Tags     campaigns
// @Produce  json
// @Param    platform  path      string  true  "Ad platform"  Enums(meta, tiktok, google)
// @Success  200       {object}  model.Message
// @Failure  404       {object}  errorPayload
// @Failure  500       {object}  errorPayload
// @Router   /api/{platform}/campaigns [get]
func ListCampaigns(svc service.CampaignService, p model.Platform) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msg, err := svc.Campaigns(c.UserContext(), p)
		if err != nil {
			if errors.Is(err, model.ErrUnknownPlatform) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "platform not found")
			}
			// Surfaced through ErrorHandler as INTERNAL_ERROR; the request logger records the cause.
			return err
		}
		return c.JSON(msg)
	}
}
