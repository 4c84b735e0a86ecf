package server

import (
	"log"
	"time"

	"notes-api/internal/bootstrap"
	"notes-api/internal/config"
	"notes-api/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	globalRateLimit = 100 // requests per minute, all routes, per client IP
	createRateLimit = 10  // requests per minute on note creation
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	// Middleware. The access log and metrics wrap everything so the
	// recorded status and duration cover the full chain; the error
	// handler sits inside them so they observe the mapped status.
	app.Use(cors.New())
	app.Use(otelfiber.Middleware())
	app.Use(serverutils.AccessLogMiddleware(container.Logger))
	app.Use(container.Metrics.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))
	app.Use(container.RateLimiter.Limit("global", globalRateLimit, time.Minute))

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)

	app.Get("/metrics", c.Metrics.Handler())

	auth := serverutils.BasicAuthMiddleware(cfg.API.Username, cfg.API.Password)
	createLimit := c.RateLimiter.Limit("create_note", createRateLimit, time.Minute)
	c.NoteController.RegisterRoutes(app, auth, createLimit)
}
