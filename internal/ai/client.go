// Package ai owns request dispatch to the external generative model:
// caching, interaction logging, token accounting and error wrapping.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Completer is the minimal surface the gateway needs from a model client.
// Tests inject a fake; production uses AnthropicClient.
type Completer interface {
	Complete(ctx context.Context, prompt, system string, maxTokens int, temperature float64) (text string, tokensUsed int, err error)
}

// AnthropicClient calls the Messages API. One request carries one user
// message with the full rendered prompt plus an optional system message;
// tokensUsed is input + output tokens.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// NewAnthropicClient builds a client with a finite request timeout.
func NewAnthropicClient(apiKey, model string, timeout time.Duration) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(&http.Client{Timeout: timeout}),
		),
		model: model,
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt, system string, maxTokens int, temperature float64) (string, int, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(temperature),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", 0, fmt.Errorf("messages API: %w", err)
	}

	var content string
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += tb.Text
		}
	}
	tokens := int(msg.Usage.InputTokens + msg.Usage.OutputTokens)
	return content, tokens, nil
}

// ModelRequestError wraps any transport or non-success failure from the
// external model. The core performs no retries; retry policy belongs to the
// caller.
type ModelRequestError struct {
	Cause error
}

func (e *ModelRequestError) Error() string {
	return fmt.Sprintf("model request failed: %v", e.Cause)
}

func (e *ModelRequestError) Unwrap() error { return e.Cause }
