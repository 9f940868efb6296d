package llm

import "context"

// Provider is a single-shot completion oracle. Implementations must apply
// zero-temperature sampling; callers still treat the output as untrusted text.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
