package chat

import "time"

// Role is the role for a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is the provider-agnostic chat message DTO.
type Message struct {
	Role    Role
	Content string
}

// Conversation is the append-only message history for one session. The
// system message is fixed at construction and stays the first entry;
// user and assistant messages alternate after it.
type Conversation struct {
	messages  []Message
	createdAt time.Time
}

// NewConversation creates a conversation seeded with the system prompt.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		messages:  []Message{{Role: RoleSystem, Content: systemPrompt}},
		createdAt: time.Now(),
	}
}

// AddUser appends a user message.
func (c *Conversation) AddUser(content string) {
	c.messages = append(c.messages, Message{Role: RoleUser, Content: content})
}

// AddAssistant appends an assistant message.
func (c *Conversation) AddAssistant(content string) {
	c.messages = append(c.messages, Message{Role: RoleAssistant, Content: content})
}

// Reset restores the conversation to its initial system-only state.
func (c *Conversation) Reset() {
	c.messages = c.messages[:1]
}

// Messages returns a copy of the history in order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len reports the number of messages, including the system entry.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// CreatedAt reports when the conversation was started.
func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}
