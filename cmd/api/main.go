package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Toodlepoodle/property-listings-martin/internal/controller"
	"github.com/Toodlepoodle/property-listings-martin/internal/middleware"
	"github.com/Toodlepoodle/property-listings-martin/pkg/config"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
	"github.com/Toodlepoodle/property-listings-martin/pkg/email"
	"github.com/Toodlepoodle/property-listings-martin/pkg/seed"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/jwt"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", controller.HealthCheck)

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Post("/request-otp", controller.RequestOTP)
	auth.Post("/verify-otp", controller.VerifyOTP)

	// Public property routes
	api.Get("/properties", controller.ListProperties)
	api.Get("/properties/:id", controller.GetProperty)
	api.Get("/share/:id", controller.ShareProperty)

	// Public requirement intake — buyers and renters submit without an account
	api.Post("/requirements", controller.CreateRequirement)

	// Media gallery
	api.Post("/media", controller.UploadMedia)
	api.Get("/media", controller.ListMedia)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", controller.GetMe)
	protected.Get("/requirements", controller.ListRequirements)

	properties := protected.Group("/properties")
	properties.Post("/", controller.CreateProperty)
	properties.Put("/:id", middleware.CheckPropertyOwnership(), controller.UpdateProperty)
	properties.Delete("/:id", middleware.CheckPropertyOwnership(), controller.DeleteProperty)

	// Dashboard routes
	dashboard := api.Group("/dashboard", middleware.AuthMiddleware())
	dashboard.Get("/stats", controller.GetDashboardStats)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := config.Load()
	jwt.SetSecret(cfg.JWT.Secret)

	if err := email.InitEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From); err != nil {
		log.Warn().Err(err).Msg("email service disabled, alerts and OTP mail will not be delivered")
	}

	if err := storage.Init(cfg.Storage.UploadsDir, cfg.Storage.MediaDir, []string{"bucket1", "bucket2", "bucket3"}); err != nil {
		log.Fatal().Err(err).Msg("could not prepare storage directories")
	}

	if err := database.InitStores(cfg.Storage.DataDir); err != nil {
		log.Fatal().Err(err).Msg("could not prepare data directory")
	}
	seed.SeedProperties()

	controller.InitAuthController()
	if email.GlobalEmailService != nil {
		controller.InitMatchNotifier(email.GlobalEmailService, cfg.Admin.Email)
	}

	app := fiber.New(fiber.Config{
		// per-file limits live in pkg/utils/validation
		BodyLimit: 256 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.Metrics())

	setupRoutes(app)

	app.Static("/uploads", storage.UploadsDir())
	app.Static("/media", storage.MediaDir())

	port := cfg.Server.Port
	log.Info().Str("port", port).Msg("server starting")
	if err := app.Listen(":" + port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
