package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/urbtech/urbtech-backend/internal/config"
	"github.com/urbtech/urbtech-backend/internal/handlers"
	"github.com/urbtech/urbtech-backend/internal/middleware"
	"github.com/urbtech/urbtech-backend/internal/services"
	"github.com/urbtech/urbtech-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	cfg *config.Config,
	store storage.Store,
	chatService *services.ChatService,
	whatsappService *services.WhatsAppService,
	twilioService *services.TwilioService,
) {
	customerHandler := handlers.NewCustomerHandler(store)
	orderHandler := handlers.NewOrderHandler(store)
	chatHandler := handlers.NewChatHandler(chatService)
	whatsappHandler := handlers.NewWhatsAppHandler(whatsappService, twilioService)

	// API routes
	api := app.Group("/api")

	customers := api.Group("/customers")
	customers.Post("/", customerHandler.CreateCustomer)
	customers.Get("/", customerHandler.GetCustomers)

	orders := api.Group("/orders")
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/", orderHandler.GetOrders)
	orders.Put("/", orderHandler.UpdateOrderStatus)
	orders.Delete("/", orderHandler.DeleteOrder)

	// Web chat widget
	api.Post("/chat", chatHandler.HandleMessage)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	if cfg.Environment == "development" || cfg.DisableWebhookValidation {
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
		log.Println("⚠️  WhatsApp webhook validation DISABLED")
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(cfg.TwilioAuthToken), whatsappHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	app.Post("/test/whatsapp", whatsappHandler.HandleTestWebhook)
}
