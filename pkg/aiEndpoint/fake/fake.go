// Package fake provides an in-memory AIEngine for tests.
package fake

import (
	"context"
	"sync"

	"github.com/zicongmei/ai-prompt/pkg/aiEndpoint"
)

// Engine returns canned answers and records the prompts it receives.
type Engine struct {
	Response string
	Tokens   int
	Err      error

	mu      sync.Mutex
	prompts []string
	closed  bool
}

var _ aiEndpoint.AIEngine = (*Engine)(nil)

// New returns an Engine that answers every prompt with response.
func New(response string) *Engine {
	return &Engine{Response: response}
}

func (e *Engine) WithError(err error) *Engine {
	e.Err = err
	return e
}

func (e *Engine) WithTokens(n int) *Engine {
	e.Tokens = n
	return e
}

func (e *Engine) SendPrompt(ctx context.Context, prompt string) (string, error) {
	e.record(prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if e.Err != nil {
		return "", e.Err
	}
	return e.Response, nil
}

func (e *Engine) CountTokens(ctx context.Context, prompt string) (int, error) {
	e.record(prompt)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if e.Err != nil {
		return 0, e.Err
	}
	return e.Tokens, nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// Prompts returns every prompt received so far.
func (e *Engine) Prompts() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.prompts...)
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

func (e *Engine) record(prompt string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prompts = append(e.prompts, prompt)
}
