package bootstrap

import (
	"context"
	"log"

	"notes-api/internal/config"
	"notes-api/internal/controller"
	"notes-api/internal/pkg/logger"
	"notes-api/internal/pkg/serverutils"
	"notes-api/internal/repository/implementation"
	"notes-api/internal/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController   controller.INoteController
	HealthController controller.IHealthController

	// Shared infrastructure, owned by the process lifetime
	Logger      logger.ILogger
	Metrics     *serverutils.Metrics
	RateLimiter *serverutils.RateLimiter
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Redis backs the fixed-window rate limiter. A failed connection is
	// logged, not fatal: the limiter fails open.
	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Redis.URL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	noteRepo := implementation.NewNoteRepository(db)
	diagRepo := implementation.NewDiagnosticsRepository(db)

	noteService := service.NewNoteService(noteRepo)
	healthService := service.NewHealthService(diagRepo)

	return &Container{
		NoteController:   controller.NewNoteController(noteService),
		HealthController: controller.NewHealthController(healthService, sysLogger),

		Logger:      sysLogger,
		Metrics:     serverutils.NewMetrics(),
		RateLimiter: serverutils.NewRateLimiter(rdb, sysLogger),
	}
}
