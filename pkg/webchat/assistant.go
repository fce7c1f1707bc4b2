package webchat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/elicia-ai/elicia/pkg/chat"
)

// AssistantConfig configures an Assistant. Zero-value prompt fields fall
// back to the Elicia defaults.
type AssistantConfig struct {
	SystemPrompt string
	Welcome      string
	Logger       logrus.FieldLogger
}

// Assistant is the Handler implementation backed by a chat Completer.
// Replies are requested in streaming mode and relayed fragment by
// fragment to the session's open message.
type Assistant struct {
	completer    chat.Completer
	systemPrompt string
	welcome      string
	log          logrus.FieldLogger
}

var _ Handler = (*Assistant)(nil)

// NewAssistant builds an assistant bound to a completer.
func NewAssistant(completer chat.Completer, cfg AssistantConfig) *Assistant {
	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	welcome := cfg.Welcome
	if welcome == "" {
		welcome = DefaultWelcome
	}
	return &Assistant{
		completer:    completer,
		systemPrompt: systemPrompt,
		welcome:      welcome,
		log:          cfg.Logger,
	}
}

// OnChatStart seeds the session conversation and sends the welcome
// message as a single finalized outgoing message.
func (a *Assistant) OnChatStart(ctx context.Context, sess *Session, out Outgoing) error {
	sess.Begin(a.systemPrompt)
	out.StreamToken(a.welcome)
	out.Finalize()
	return nil
}

// OnMessage runs one conversational turn. A RequestError is caught here
// and surfaced through out; it never propagates to the host, and the
// session stays usable for the next message. The user message stays in
// the history after a failed turn; the partial assistant output is not
// recorded and not retried.
func (a *Assistant) OnMessage(ctx context.Context, sess *Session, content string, out Outgoing) error {
	conv := sess.Conversation()
	if conv == nil {
		return errors.New("session has no conversation; OnChatStart was not invoked")
	}

	conv.AddUser(content)

	fragments, err := a.completer.Stream(ctx, conv.Messages())
	if err != nil {
		a.failTurn(sess, out, err)
		return nil
	}

	var reply strings.Builder
	for frag := range fragments {
		if frag.Err != nil {
			a.failTurn(sess, out, frag.Err)
			return nil
		}
		reply.WriteString(frag.Text)
		out.StreamToken(frag.Text)
	}

	out.Finalize()
	conv.AddAssistant(reply.String())
	return nil
}

func (a *Assistant) failTurn(sess *Session, out Outgoing, err error) {
	if a.log != nil {
		a.log.WithField("session_id", sess.ID()).Errorf("turn failed: %v", err)
	}
	out.Fail(fmt.Sprintf("❌ Error: %v", err))
}
