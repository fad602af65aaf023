package main

import (
	"time"

	"practico/internal/config"
	"practico/internal/handlers"
	"practico/internal/middleware"
	"practico/internal/openapi"
	"practico/internal/services"
	"practico/internal/storage"
	"practico/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// newApp wires services and handlers over repos and returns the Fiber app.
// publisher may be nil when change events are disabled.
func newApp(cfg config.Config, repos storage.Repositories, driver string, publisher services.EventPublisher, log zerolog.Logger) *fiber.App {
	// --- Initialize Services ---
	customerService := services.NewCustomerService(repos.Customers, publisher, log)
	employeeService := services.NewEmployeeService(repos.Employees, publisher, log)
	productService := services.NewProductService(repos.Products, publisher, log)

	// --- Initialize Handlers ---
	v := validation.New()
	registrars := []handlers.Registrar{
		handlers.NewCustomerHandler(customerService, v, log),
		handlers.NewEmployeeHandler(employeeService, v, log),
		handlers.NewProductHandler(productService, v, log),
	}

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:               "practico",
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(log))

	// --- API Routes ---
	api := app.Group("/api")
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  driver,
		})
	})

	// --- API Description ---
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(openapi.YAML)
	})

	return app
}
