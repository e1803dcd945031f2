package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/urbtech/urbtech-backend/internal/services"
)

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid        string `form:"MessageSid"`
	AccountSid        string `form:"AccountSid"`
	From              string `form:"From"` // WhatsApp number (whatsapp:+5511999999999)
	To                string `form:"To"`   // Your Twilio number
	Body              string `form:"Body"` // Message text
	NumMedia          string `form:"NumMedia"`
	MediaUrl0         string `form:"MediaUrl0"`
	MediaContentType0 string `form:"MediaContentType0"`
}

// WhatsAppHandler handles WhatsApp webhook requests
type WhatsAppHandler struct {
	whatsappService *services.WhatsAppService
	twilioService   *services.TwilioService
}

// NewWhatsAppHandler creates a new WhatsApp handler. twilioService may be nil
// in development; replies are then logged instead of sent.
func NewWhatsAppHandler(whatsappService *services.WhatsAppService, twilioService *services.TwilioService) *WhatsAppHandler {
	return &WhatsAppHandler{
		whatsappService: whatsappService,
		twilioService:   twilioService,
	}
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	// Malformed payloads never reach the engine
	if payload.From == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing sender",
		})
	}

	numMedia, _ := strconv.Atoi(payload.NumMedia)

	// Status callbacks carry neither text nor media; acknowledge and ignore
	if payload.Body == "" && numMedia == 0 {
		return c.SendStatus(fiber.StatusOK)
	}

	mediaURL := ""
	if numMedia > 0 {
		mediaURL = payload.MediaUrl0
	}

	response, err := h.whatsappService.ProcessMessage(c.Context(), payload.From, payload.Body, mediaURL)
	if err != nil {
		log.Printf("Error processing message: %v", err)
		response = "❌ Desculpe, algo deu errado. Tente novamente."
	}

	if h.twilioService != nil && response != "" {
		if err := h.twilioService.SendWhatsAppMessage(stripWhatsAppPrefix(payload.From), response); err != nil {
			log.Printf("❌ Failed to send WhatsApp response: %v", err)
		}
	} else {
		log.Printf("📤 Response (not sent - Twilio not configured): %s", response)
	}

	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload is the JSON shape for testing without Twilio
type TestWebhookPayload struct {
	From     string `json:"from"`
	Message  string `json:"message"`
	MediaURL string `json:"media_url"`
}

// HandleTestWebhook processes test WhatsApp messages (for development). The
// reply is returned in the response body instead of being sent via Twilio.
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	if payload.From == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing sender",
		})
	}

	response, err := h.whatsappService.ProcessMessage(c.Context(), payload.From, payload.Message, payload.MediaURL)
	if err != nil {
		log.Printf("Error processing message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"response": response,
	})
}

func stripWhatsAppPrefix(from string) string {
	if len(from) > 9 && from[:9] == "whatsapp:" {
		return from[9:]
	}
	return from
}
