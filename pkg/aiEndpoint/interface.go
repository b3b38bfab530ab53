package aiEndpoint

import (
	"context"
	"errors"
)

// Errors surfaced by AIEngine implementations. Implementations wrap the
// underlying cause so both the class and the original message survive.
var (
	ErrAuthFailed    = errors.New("authentication failed")
	ErrRateLimit     = errors.New("rate limit exceeded")
	ErrRequestFailed = errors.New("request failed")
	ErrEmptyResponse = errors.New("empty response")
)

// AIEngine defines the interface for interacting with an AI endpoint.
// Implementations of this interface will handle the specific communication
// details (e.g., HTTP requests, authentication) for different AI models
// or services.
type AIEngine interface {
	// SendPrompt sends a string prompt to the AI endpoint and returns
	// the AI's response as a string.
	SendPrompt(ctx context.Context, prompt string) (string, error)

	// CountTokens reports how many tokens the model counts for prompt.
	CountTokens(ctx context.Context, prompt string) (int, error)

	Close() error
}
