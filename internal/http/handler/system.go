package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"adgenie/internal/model"
)

const (
	welcomeMessage = "Welcome to AdGenie Dashboard API"
	statusHealthy  = "healthy"
)

// Welcome godoc
// @Summary  API welcome message
// @Tags     system
// @Produce  json
// @Success  200  {object}  model.Message
// @Router   / [get]
func Welcome() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Message{Message: welcomeMessage})
	}
}

// HealthCheck godoc
// @Summary  Service health with current UTC time
// @Tags     system
// @Produce  json
// @Success  200  {object}  model.Health
// @Router   /health [get]
func HealthCheck() fiber.Handler {
	return healthCheck(time.Now)
}

func healthCheck(now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Health{
			Status:    statusHealthy,
			Timestamp: now().UTC(),
		})
	}
}

// LivenessProbe answers 200 while the process is able to serve requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
