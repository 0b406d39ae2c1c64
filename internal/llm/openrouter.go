package llm

import (
	"net/http"
	"time"
)

// OpenRouterProvider speaks the OpenAI chat-completions dialect against the
// OpenRouter endpoint.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(apiKey, model string) *OpenRouterProvider {
	if model == "" {
		model = "meta-llama/llama-3.1-70b-instruct"
	}
	return &OpenRouterProvider{
		OpenAIProvider: &OpenAIProvider{
			name:    "openrouter",
			apiKey:  apiKey,
			model:   model,
			baseURL: "https://openrouter.ai/api/v1",
			httpClient: &http.Client{
				Timeout: 2 * time.Minute,
			},
		},
	}
}
