// Package main is the entry point for the ordering backend. It wires the
// document store, the service layer and the HTTP routes, then serves the
// JSON API.
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/StefanoAus/icoffee-backend/internal/config"
	"github.com/StefanoAus/icoffee-backend/internal/handlers"
	"github.com/StefanoAus/icoffee-backend/internal/middleware"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
	"github.com/StefanoAus/icoffee-backend/internal/security"
	"github.com/StefanoAus/icoffee-backend/internal/services"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

func main() {
	cfg := config.Load()
	logger := security.NewLogger(cfg.LogLevel)

	// Select the persistence backend. DATABASE_URL switches the document
	// store to Postgres; the default is JSON files under DATA_DIR.
	var (
		docStore store.DocumentStore
		pgStore  *store.PostgresStore
		backend  = "file"
	)
	if cfg.DatabaseURL != "" {
		if err := store.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		pg, err := store.ConnectPostgres(store.PostgresConfig{URL: cfg.DatabaseURL})
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pg.Close()
		docStore, pgStore, backend = pg, pg, "postgres"
	} else {
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to initialize data directory: %v", err)
		}
		docStore = fs
	}

	// Repositories and services.
	userRepo := repository.NewUserRepository(docStore)
	groupRepo := repository.NewGroupRepository(docStore)
	menuRepo := repository.NewMenuRepository(docStore)
	orderRepo := repository.NewOrderRepository(docStore)
	paymentRepo := repository.NewPaymentRepository(docStore)

	authService := services.NewAuthService(userRepo)
	directoryService := services.NewDirectoryService(userRepo, groupRepo)
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuService)
	paymentService := services.NewPaymentService(paymentRepo, userRepo)

	// Handlers.
	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(directoryService)
	groupHandler := handlers.NewGroupHandler(directoryService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	securityMiddleware := middleware.NewSecurityMiddleware(logger)

	// Login throttling per client IP.
	refill := time.Minute / time.Duration(cfg.LoginRateLimit)
	loginRateLimiter := security.NewRateLimiter(cfg.LoginRateLimit, refill)
	defer loginRateLimiter.Stop()

	app := fiber.New(fiber.Config{
		AppName: "icoffee-backend",
	})

	app.Use(recover.New())
	app.Use(securityMiddleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		healthy := true
		if pgStore != nil {
			healthy = pgStore.Ping(c.Context()) == nil
		}
		status := fiber.StatusOK
		if !healthy {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"success": healthy,
			"backend": backend,
		})
	})

	api := app.Group("/api")

	api.Post("/login",
		securityMiddleware.RateLimit(loginRateLimiter, "login"),
		authHandler.Login,
	)
	api.All("/login", handlers.MethodNotAllowed)

	api.Get("/orders", orderHandler.List)
	api.Post("/orders", orderHandler.Submit)
	api.All("/orders", handlers.MethodNotAllowed)

	api.Get("/groups", groupHandler.List)
	api.Post("/groups", groupHandler.Create)
	api.Put("/groups", groupHandler.Rename)
	api.Delete("/groups", groupHandler.Delete)
	api.All("/groups", handlers.MethodNotAllowed)

	api.Get("/menu", menuHandler.List)
	api.Post("/menu", menuHandler.Create)
	api.Put("/menu", menuHandler.Update)
	api.Delete("/menu", menuHandler.Delete)
	api.All("/menu", handlers.MethodNotAllowed)

	api.Get("/users", userHandler.List)
	api.Post("/users", userHandler.Create)
	api.Put("/users", userHandler.Update)
	api.Delete("/users", userHandler.Delete)
	api.All("/users", handlers.MethodNotAllowed)

	api.Get("/payments", paymentHandler.Status)
	api.Post("/payments", paymentHandler.Record)
	api.All("/payments", handlers.MethodNotAllowed)

	logger.WithFields(map[string]interface{}{
		"port":    cfg.Port,
		"backend": backend,
	}).Info("server starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", err)
		log.Fatalf("failed to start server: %v", err)
	}
}
