// Package generator produces text completions for commands that answer with
// generated content.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/revrost/go-openrouter"
)

// OpenRouterClient is the slice of the OpenRouter API the generator calls.
type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context, request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

// OpenRouter answers one-shot prompts through the OpenRouter completion API.
type OpenRouter struct {
	client       OpenRouterClient
	model        string
	systemPrompt string
}

// NewOpenRouter builds a generator for the given model, prefixing every
// request with systemPrompt.
func NewOpenRouter(apiKey, model, systemPrompt string) *OpenRouter {
	return &OpenRouter{
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("echobot"),
		),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// Ask sends prompt as a single user message and returns the completion text.
func (g *OpenRouter) Ask(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model: g.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role: openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{
					Text: g.systemPrompt,
				},
			},
			{
				Role: openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{
					Text: prompt,
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openrouter returned no choices")
	}

	return resp.Choices[0].Message.Content.Text, nil
}
