// Package webchat hosts chat sessions over HTTP. The host owns session
// transport and invokes two lifecycle hooks (chat start, message) on a
// Handler; assistant tokens are relayed to the browser as server-sent
// events.
package webchat

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/elicia-ai/elicia/pkg/chat"
)

// Session is one web chat session. It owns exactly one conversation,
// created at chat start and discarded with the session. Turns within a
// session run strictly sequentially; the host serializes hook calls
// through the session mutex.
type Session struct {
	id        string
	createdAt time.Time

	mu   sync.Mutex
	conv *chat.Conversation
}

// NewSession creates a session with a generated ID and no conversation.
// The conversation is attached by the handler's OnChatStart hook.
func NewSession() *Session {
	return &Session{
		id:        generateSessionID(),
		createdAt: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// CreatedAt reports when the session was opened.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Begin attaches a fresh conversation seeded with the system prompt.
func (s *Session) Begin(systemPrompt string) {
	s.conv = chat.NewConversation(systemPrompt)
}

// Conversation returns the session's conversation, or nil before Begin.
func (s *Session) Conversation() *chat.Conversation {
	return s.conv
}

// generateSessionID returns a random 16-byte hex identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))[:32]
	}
	return hex.EncodeToString(b)
}
