package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant/applicantapi"
	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/logx"
	"github.com/CavidAtamoghlanov/vacancy-management/screening/screeningapi"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy/vacancyapi"
)

func main() {
	// 1. Load Configuration
	cfg, err := LoadConfig()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	logx.SetLevelFromString(cfg.LogLevel)
	logx.Info("Starting Vacancy Management API Server...")

	// 3. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.Close()

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Vacancy Management API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		dbOK := container.DB == nil || container.DB.Ping() == nil
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     dbOK,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 7. Register Routes
	auth.RegisterRoutes(app, container.AuthHandlers, container.AuthMiddleware)
	vacancyapi.RegisterRoutes(app, container.VacancyHandlers, container.AuthMiddleware)
	applicantapi.RegisterRoutes(app, container.ApplicantHandlers, container.AuthMiddleware)
	screeningapi.RegisterRoutes(app, container.ScreeningHandlers, container.AuthMiddleware)

	// 8. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := errx.AsError(err); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
