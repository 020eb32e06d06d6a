// Package completion defines the boundary with the remote text-completion
// service. The adapter (openai.go) converts the narrow request shape into the
// vendor SDK call; everything above this package sees only Request/Choice.
package completion

import "context"

// Request is a single completion call: one prompt, one response, no
// streaming, no conversation state.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Choice is one candidate completion. Callers consume only the first.
type Choice struct {
	Text string
}

// Service issues a completion request and returns the candidate choices.
// Transport and service failures are returned unmodified; there is no retry
// and no local recovery.
type Service interface {
	Complete(ctx context.Context, req Request) ([]Choice, error)
}
