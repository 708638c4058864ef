// Package inference wraps the upstream completion API. Every user brings
// their own API key, so clients are constructed per request rather than
// held as a singleton.
package inference

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// CompletionClient is the subset of the upstream client the chat gateway
// uses. *openai.Client satisfies it; tests substitute fakes.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

// ClientProvider hands out completion clients keyed by user API key.
type ClientProvider interface {
	ClientForKey(ctx context.Context, apiKey string) (CompletionClient, error)
}

type InferenceProvider struct{}

var _ ClientProvider = (*InferenceProvider)(nil)

func NewInferenceProvider() *InferenceProvider {
	return &InferenceProvider{}
}

// ClientForKey builds a completion client authenticated with the given
// user API key.
func (ip *InferenceProvider) ClientForKey(ctx context.Context, apiKey string) (CompletionClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeValidation,
			"user has no API key configured",
			nil,
			"5e2c8f0b-7d41-4a63-9b85-0c3f6e9d2a78",
		)
	}
	return openai.NewClient(apiKey), nil
}
