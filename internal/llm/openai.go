package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider completes prompts against the OpenAI chat API via
// langchaingo. Every call is bounded by the configured timeout so a slow
// provider cannot hold a request indefinitely.
type OpenAIProvider struct {
	llm     *openai.LLM
	timeout time.Duration
}

func NewOpenAIProvider(apiKey, model string, timeout time.Duration) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{
		llm:     client,
		timeout: timeout,
	}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt,
		llms.WithTemperature(0),
	)
	if err != nil {
		return "", fmt.Errorf("LLM completion failed: %w", err)
	}

	return out, nil
}
