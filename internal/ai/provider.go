package ai

import "context"

// Provider is a hosted text completion model.
type Provider interface {
	Name() string
	Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}
