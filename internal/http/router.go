package http

import (
	"time"

	"github.com/charity-platform/backend/internal/config"
	"github.com/charity-platform/backend/internal/http/handlers"
	"github.com/charity-platform/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	orgHandler *handlers.OrganizationHandler,
	campaignHandler *handlers.CampaignHandler,
	beneficiaryHandler *handlers.BeneficiaryHandler,
	charityHandler *handlers.CharityHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// API root: named index of the top-level collections
	api.Get("/", func(c *fiber.Ctx) error {
		base := c.BaseURL() + "/api"
		return c.JSON(fiber.Map{
			"organizations": base + "/organizations/",
			"campaigns":     base + "/campaigns/",
			"beneficiaries": base + "/beneficiaries/",
			"charities":     base + "/charities/",
		})
	})

	// Auth (public)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Organizations
	api.Get("/organizations", orgHandler.List)
	api.Post("/organizations", orgHandler.Create)
	api.Get("/organizations/active", orgHandler.Active)
	api.Get("/organizations/:id", orgHandler.Get)
	api.Put("/organizations/:id", orgHandler.Update)
	api.Patch("/organizations/:id", orgHandler.PartialUpdate)
	api.Delete("/organizations/:id", orgHandler.Delete)
	api.Get("/organizations/:id/campaigns", orgHandler.Campaigns)

	// Campaigns
	api.Get("/campaigns", campaignHandler.List)
	api.Post("/campaigns", campaignHandler.Create)
	api.Get("/campaigns/active", campaignHandler.Active)
	api.Get("/campaigns/:id", campaignHandler.Get)
	api.Put("/campaigns/:id", campaignHandler.Update)
	api.Patch("/campaigns/:id", campaignHandler.PartialUpdate)
	api.Delete("/campaigns/:id", campaignHandler.Delete)
	api.Get("/campaigns/:id/beneficiaries", campaignHandler.Beneficiaries)
	api.Post("/campaigns/:id/update_raised_amount", campaignHandler.UpdateRaisedAmount)

	// Beneficiaries
	api.Get("/beneficiaries", beneficiaryHandler.List)
	api.Post("/beneficiaries", beneficiaryHandler.Create)
	api.Get("/beneficiaries/active", beneficiaryHandler.Active)
	api.Get("/beneficiaries/:id", beneficiaryHandler.Get)
	api.Put("/beneficiaries/:id", beneficiaryHandler.Update)
	api.Patch("/beneficiaries/:id", beneficiaryHandler.PartialUpdate)
	api.Delete("/beneficiaries/:id", beneficiaryHandler.Delete)
	api.Post("/beneficiaries/:id/update_amount_received", beneficiaryHandler.UpdateAmountReceived)

	// Charities: reads are open, create is admin-only
	api.Get("/charities", charityHandler.List)
	api.Post("/charities", middleware.AdminMiddleware(cfg, log), charityHandler.Create)
	api.Get("/charities/:id", charityHandler.Get)
	api.Put("/charities/:id", charityHandler.Update)
	api.Patch("/charities/:id", charityHandler.PartialUpdate)
	api.Delete("/charities/:id", charityHandler.Delete)
}
