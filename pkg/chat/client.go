package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

// DefaultModel is used when no model override is configured.
const DefaultModel = "gpt-4o-mini"

// ClientConfig holds the settings for the OpenAI-backed client.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  logrus.FieldLogger
}

// Client implements Completer against the OpenAI chat completions API.
type Client struct {
	client openai.Client
	model  openai.ChatModel
	log    logrus.FieldLogger
}

var _ Completer = (*Client)(nil)

// NewClient builds a client from config. The API key must be set; the
// key is not validated against the remote service until the first call.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("APIKey is not set")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  openai.ChatModel(model),
		log:    cfg.Logger,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return string(c.model)
}

// Complete sends a non-streaming chat completion request.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	c.debugf("chat: sending non-streaming request with %d messages", len(messages))
	params, err := c.newParams(messages)
	if err != nil {
		return "", err
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", requestErr("chat completion", err)
	}
	if len(completion.Choices) == 0 {
		return "", requestErr("chat completion", errors.New("empty completion choices"))
	}
	return completion.Choices[0].Message.Content, nil
}

// Stream sends a streaming chat completion request and forwards each
// content delta on the returned channel. The channel is closed once the
// remote stream ends; a mid-stream failure is delivered as the final
// fragment with Err set.
func (c *Client) Stream(ctx context.Context, messages []Message) (<-chan Fragment, error) {
	c.debugf("chat: sending streaming request with %d messages", len(messages))
	params, err := c.newParams(messages)
	if err != nil {
		return nil, err
	}

	out := make(chan Fragment)
	go func() {
		defer close(out)

		streamResp := c.client.Chat.Completions.NewStreaming(ctx, params)
		defer streamResp.Close()

		acc := openai.ChatCompletionAccumulator{}
		for streamResp.Next() {
			chunk := streamResp.Current()
			if !acc.AddChunk(chunk) {
				out <- Fragment{Err: requestErr("chat stream", errors.New("failed to accumulate stream"))}
				return
			}
			if len(chunk.Choices) > 0 {
				delta := chunk.Choices[0].Delta
				if delta.Content != "" {
					out <- Fragment{Text: delta.Content}
				}
			}
		}
		if err := streamResp.Err(); err != nil {
			out <- Fragment{Err: requestErr("chat stream", err)}
			return
		}
		if len(acc.Choices) == 0 {
			out <- Fragment{Err: requestErr("chat stream", errors.New("empty streamed completion choices"))}
		}
	}()
	return out, nil
}

// newParams converts provider-agnostic messages into request params.
func (c *Client) newParams(messages []Message) (openai.ChatCompletionNewParams, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleUser:
			out = append(out, openai.UserMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			return openai.ChatCompletionNewParams{}, fmt.Errorf("invalid message role at index %d: %q", i, msg.Role)
		}
	}
	return openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: out,
	}, nil
}

func (c *Client) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}
