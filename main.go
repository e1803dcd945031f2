package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/urbtech/urbtech-backend/database"
	"github.com/urbtech/urbtech-backend/internal/chatbot"
	"github.com/urbtech/urbtech-backend/internal/config"
	"github.com/urbtech/urbtech-backend/internal/models"
	"github.com/urbtech/urbtech-backend/internal/ordersink"
	"github.com/urbtech/urbtech-backend/internal/routes"
	"github.com/urbtech/urbtech-backend/internal/services"
	"github.com/urbtech/urbtech-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if !cfg.TwilioConfigured() {
		log.Println("⚠️  Twilio credentials not found - WhatsApp features will be limited")
	}

	// Initialize storage
	var store storage.Store
	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(cfg); err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		log.Println("🔄 Running database migrations...")
		if err := database.DB.AutoMigrate(&models.Customer{}, &models.Order{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")
	}
	storage.SetStore(store)

	// Initialize Twilio service (optional in development)
	var twilioService *services.TwilioService
	if cfg.TwilioConfigured() {
		twilioService, err = services.NewTwilioService(cfg)
		if err != nil {
			log.Fatal("Failed to initialize Twilio service:", err)
		}
		services.SetTwilioService(twilioService)
		log.Println("✅ Twilio service initialized")
	}

	// Order sink: primary storage with a local SQLite fallback so the
	// conversation always completes even when persistence is down
	var primary chatbot.OrderSink
	if cfg.OrdersAPIURL != "" {
		primary = ordersink.NewRemoteSink(cfg.OrdersAPIURL)
		log.Printf("📡 Orders persisted via remote API: %s", cfg.OrdersAPIURL)
	} else {
		primary = ordersink.NewStoreSink(store)
	}

	localStore, err := storage.NewLocalStore(cfg.FallbackDBPath)
	if err != nil {
		log.Fatal("Failed to open local fallback store:", err)
	}
	sink := ordersink.NewFallbackSink(primary, ordersink.NewStoreSink(localStore))

	// One session store and engine per channel; both channels share the same
	// state machine with explicit policy differences
	webSessions := chatbot.NewMemorySessionStore(cfg.SessionTTL)
	whatsappSessions := chatbot.NewMemorySessionStore(cfg.SessionTTL)

	chatService := services.NewChatService(chatbot.NewEngine(chatbot.WebPolicy(), sink), webSessions)
	whatsappService := services.NewWhatsAppService(chatbot.NewEngine(chatbot.WhatsAppPolicy(), sink), whatsappSessions)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "URBTECH Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Service info endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":     "URBTECH Backend API",
			"version":     "1.0.0",
			"status":      "healthy",
			"environment": cfg.Environment,
			"storage":     storageType(cfg),
			"whatsapp": fiber.Map{
				"configured": cfg.TwilioConfigured(),
			},
			"sessions": fiber.Map{
				"web":      webSessions.ActiveSessions(),
				"whatsapp": whatsappSessions.ActiveSessions(),
			},
		})
	})

	// Health check endpoint for monitoring
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		statusCode := fiber.StatusOK

		if !cfg.UseMemoryStore && database.DB != nil {
			sqlDB, err := database.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				status = "unhealthy"
				statusCode = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(statusCode).JSON(fiber.Map{
			"status": status,
			"services": fiber.Map{
				"database": status == "healthy",
				"twilio":   twilioService != nil,
			},
		})
	})

	routes.SetupRoutes(app, cfg, store, chatService, whatsappService, twilioService)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 URBTECH Backend starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", storageType(cfg))
	log.Printf("🌍 Environment: %s", cfg.Environment)
	log.Printf("📱 WhatsApp: %s", whatsappStatus(cfg))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func storageType(cfg *config.Config) string {
	if cfg.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func whatsappStatus(cfg *config.Config) string {
	if !cfg.TwilioConfigured() {
		return "Not configured"
	}
	return "Configured"
}
