package webchat

import "context"

// Outgoing is one open response message in the hosting UI. The host
// provides an implementation per hook invocation; the handler appends
// fragments to it as they arrive and closes it exactly once, with
// either Finalize or Fail.
type Outgoing interface {
	// StreamToken appends one text fragment to the open message.
	StreamToken(text string)

	// Finalize closes the message after the last fragment.
	Finalize()

	// Fail closes the message with a visible error instead of a reply.
	Fail(message string)
}

// Handler receives session lifecycle events from the host. The handler
// never assumes control of the host's loop; it only reacts to hooks and
// writes through the Outgoing it is handed.
type Handler interface {
	// OnChatStart is invoked once when a session opens. It initializes
	// the session conversation and sends the welcome message.
	OnChatStart(ctx context.Context, sess *Session, out Outgoing) error

	// OnMessage is invoked for each incoming user message. It appends
	// the message to the session conversation, produces the assistant
	// reply through out, and records it in the conversation.
	OnMessage(ctx context.Context, sess *Session, content string, out Outgoing) error
}
