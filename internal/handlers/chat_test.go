package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/urbtech/urbtech-backend/internal/chatbot"
	"github.com/urbtech/urbtech-backend/internal/ordersink"
	"github.com/urbtech/urbtech-backend/internal/services"
	"github.com/urbtech/urbtech-backend/internal/storage"
)

func setupChatApp(store storage.Store) *fiber.App {
	sink := ordersink.NewStoreSink(store)
	engine := chatbot.NewEngine(chatbot.WebPolicy(), sink)
	sessions := chatbot.NewMemorySessionStore(0)
	handler := NewChatHandler(services.NewChatService(engine, sessions))

	app := fiber.New()
	app.Post("/api/chat", handler.HandleMessage)
	return app
}

func TestChatRequiresSessionID(t *testing.T) {
	app := setupChatApp(storage.NewMemoryStore())

	resp, _ := postJSON(t, app, "/api/chat", ChatRequest{Message: "oi"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatFullConversation(t *testing.T) {
	store := storage.NewMemoryStore()
	app := setupChatApp(store)

	send := func(message string, photos []string) map[string]interface{} {
		resp, decoded := postJSON(t, app, "/api/chat", ChatRequest{
			SessionID: "tab-42",
			Message:   message,
			Photos:    photos,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		return decoded
	}

	// The web widget gets each engine message as its own bubble
	reply := send("oi", nil)
	assert.Len(t, reply["messages"], 2)
	assert.Equal(t, "ask_name", reply["step"])

	send("Maria Silva", nil)
	send("empresarial", nil)
	send("computadores antigos", nil)
	send("Av. Paulista, 1000", nil)
	send("20 unidades", nil)

	// A photo on the web channel does not auto-advance
	reply = send("", []string{"data:image/png;base64,AAAA"})
	assert.Equal(t, "ask_photos", reply["step"])

	reply = send("pular", nil)
	assert.Equal(t, "confirm_order", reply["step"])

	reply = send("confirmar", nil)
	assert.Equal(t, true, reply["done"])
	assert.Equal(t, "welcome", reply["step"])

	orders, err := store.GetAllOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, []string{"data:image/png;base64,AAAA"}, orders[0].Photos)
}
