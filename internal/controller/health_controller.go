package controller

import (
	"notes-api/internal/dto"
	"notes-api/internal/pkg/logger"
	"notes-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Live(ctx *fiber.Ctx) error
	Ready(ctx *fiber.Ctx) error
	DbCheck(ctx *fiber.Ctx) error
}

type healthController struct {
	healthService service.IHealthService
	log           logger.ILogger
}

func NewHealthController(healthService service.IHealthService, log logger.ILogger) IHealthController {
	return &healthController{
		healthService: healthService,
		log:           log,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get("/health", c.Health)
	r.Get("/live", c.Live)
	r.Get("/ready", c.Ready)
	r.Get("/db", c.DbCheck)
}

func (c *healthController) Home(ctx *fiber.Ctx) error {
	return ctx.SendString("Backend is running!")
}

// Health is the legacy combined check kept for existing probes.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.StatusResponse{Status: "ok"})
}

// Live answers 200 regardless of database availability.
func (c *healthController) Live(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.StatusResponse{Status: "alive"})
}

func (c *healthController) Ready(ctx *fiber.Ctx) error {
	if err := c.healthService.Ready(ctx.Context()); err != nil {
		c.log.Warn("health", "readiness check failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(dto.StatusResponse{Status: "not ready"})
	}
	return ctx.JSON(dto.StatusResponse{Status: "ready"})
}

func (c *healthController) DbCheck(ctx *fiber.Ctx) error {
	if _, err := c.healthService.DatabaseVersion(ctx.Context()); err != nil {
		c.log.Error("health", "database check failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).SendString("Database error")
	}
	return ctx.JSON(dto.MessageResponse{Message: "AUTO DEPLOY WORKED"})
}
