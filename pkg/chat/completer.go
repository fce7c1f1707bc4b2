// Package chat sends conversation history to a hosted chat-completion API
// and returns the assistant reply, whole or as a stream of fragments.
package chat

import "context"

// Fragment is one incrementally delivered piece of an assistant reply.
// A transport failure mid-stream arrives as the final fragment with Err
// set; fragments already delivered are not retracted.
type Fragment struct {
	Text string
	Err  error
}

// Completer is the interface for the remote completion operation.
// Implementations own transport and authentication; callers own history.
type Completer interface {
	// Complete sends the full ordered history and returns the complete
	// assistant text once the remote call finishes.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Stream sends the same request but returns a finite, non-restartable
	// channel of fragments as they arrive. The channel is closed after the
	// last fragment. Consuming it to completion yields the same total text
	// Complete would return. Cancellation is stopping the pull: cancel ctx
	// and drain.
	Stream(ctx context.Context, messages []Message) (<-chan Fragment, error)
}
