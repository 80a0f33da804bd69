package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charity-platform/backend/internal/config"
	"github.com/charity-platform/backend/internal/db"
	apphttp "github.com/charity-platform/backend/internal/http"
	"github.com/charity-platform/backend/internal/http/handlers"
	"github.com/charity-platform/backend/internal/repositories"
	"github.com/charity-platform/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, cfg.MigrationsDir, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	orgRepo := repositories.NewOrganizationRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	beneficiaryRepo := repositories.NewBeneficiaryRepo(pool)
	charityRepo := repositories.NewCharityRepo(pool)

	// Services
	orgService := services.NewOrganizationService(orgRepo, campaignRepo, log)
	campaignService := services.NewCampaignService(campaignRepo, beneficiaryRepo, log)
	beneficiaryService := services.NewBeneficiaryService(beneficiaryRepo, log)
	charityService := services.NewCharityService(charityRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, log)
	orgHandler := handlers.NewOrganizationHandler(orgService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	beneficiaryHandler := handlers.NewBeneficiaryHandler(beneficiaryService, log)
	charityHandler := handlers.NewCharityHandler(charityService, cfg.MediaDir, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, orgHandler, campaignHandler, beneficiaryHandler, charityHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
