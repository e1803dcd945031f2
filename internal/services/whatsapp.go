package services

import (
	"context"
	"log"
	"strings"

	"github.com/urbtech/urbtech-backend/internal/chatbot"
)

// WhatsAppService is the WhatsApp channel adapter: it normalizes the sender
// into a session key, runs the engine and renders the reply as a single
// message per inbound request.
type WhatsAppService struct {
	engine   *chatbot.Engine
	sessions chatbot.SessionStore
}

// NewWhatsAppService creates a new WhatsApp service
func NewWhatsAppService(engine *chatbot.Engine, sessions chatbot.SessionStore) *WhatsAppService {
	return &WhatsAppService{
		engine:   engine,
		sessions: sessions,
	}
}

// ProcessMessage handles one inbound WhatsApp message and returns the reply
// text. Twilio delivers at most one media attachment per message.
func (w *WhatsAppService) ProcessMessage(ctx context.Context, from, body, mediaURL string) (string, error) {
	// Remove the channel prefix before using the number as session key
	phone := strings.TrimPrefix(from, "whatsapp:")

	log.Printf("📱 WhatsApp message from %s: %s", phone, body)

	input := chatbot.Input{Text: body}
	if mediaURL != "" {
		input.MediaURLs = []string{mediaURL}
	}

	session := w.sessions.GetOrCreate(phone)
	session.Lock()
	defer session.Unlock()

	result := w.engine.Advance(ctx, session.CurrentStep, session.Draft, input)
	session.CurrentStep = result.NextStep
	w.sessions.Save(session)

	if result.Terminal {
		log.Printf("✅ Order completed for %s", phone)
	}

	// One reply per inbound request: join engine messages into a single body
	return strings.Join(result.Messages, "\n\n"), nil
}
