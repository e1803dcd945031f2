package services

import (
	"context"

	"github.com/urbtech/urbtech-backend/internal/chatbot"
)

// ChatService is the web chat channel adapter. The browser widget calls it
// in-process per page session; photos arrive as already-decoded data URLs.
type ChatService struct {
	engine   *chatbot.Engine
	sessions chatbot.SessionStore
}

// NewChatService creates a new web chat service
func NewChatService(engine *chatbot.Engine, sessions chatbot.SessionStore) *ChatService {
	return &ChatService{
		engine:   engine,
		sessions: sessions,
	}
}

// ChatReply is the outcome of one web chat turn
type ChatReply struct {
	Messages []string     `json:"messages"`
	Step     chatbot.Step `json:"step"`
	Done     bool         `json:"done"`
}

// ProcessMessage handles one message from the chat widget. Each engine
// message is returned as its own bubble.
func (c *ChatService) ProcessMessage(ctx context.Context, sessionID, text string, photos []string) (*ChatReply, error) {
	session := c.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()

	result := c.engine.Advance(ctx, session.CurrentStep, session.Draft, chatbot.Input{
		Text:      text,
		MediaURLs: photos,
	})
	session.CurrentStep = result.NextStep
	c.sessions.Save(session)

	return &ChatReply{
		Messages: result.Messages,
		Step:     result.NextStep,
		Done:     result.Terminal,
	}, nil
}
