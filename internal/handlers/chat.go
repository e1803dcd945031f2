package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbtech/urbtech-backend/internal/services"
)

// ChatRequest is one turn from the browser chat widget
type ChatRequest struct {
	SessionID string   `json:"session_id"`
	Message   string   `json:"message"`
	Photos    []string `json:"photos"` // data URLs, already decoded by the widget
}

// ChatHandler serves the in-browser chat widget
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// HandleMessage processes one chat widget turn
func (h *ChatHandler) HandleMessage(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	reply, err := h.chatService.ProcessMessage(c.Context(), req.SessionID, req.Message, req.Photos)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.JSON(reply)
}
