// Package agent turns extracted paper text into the fixed twelve-section
// analysis by prompting a generative-AI provider.
package agent

import (
	"context"
	"errors"
)

// Client is the outbound port to a generative-AI provider.
type Client interface {
	// Generate sends one prompt and returns the raw model reply.
	Generate(ctx context.Context, prompt string) (string, error)
	// Model returns the model identifier requests are sent to.
	Model() string
}

// ErrQuotaExceeded indicates the provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("model quota exceeded")

// ErrUnrecognizedReply indicates the model reply matched none of the
// framework headings, so nothing could be presented.
var ErrUnrecognizedReply = errors.New("model reply matches no framework heading")
