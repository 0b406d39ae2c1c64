package llm

import (
	"net/http"
	"time"
)

// CustomProvider targets any OpenAI-compatible endpoint at a caller-supplied
// base URL.
type CustomProvider struct {
	*OpenAIProvider
}

func NewCustomProvider(baseURL, apiKey, model string) *CustomProvider {
	return &CustomProvider{
		OpenAIProvider: &OpenAIProvider{
			name:    "custom",
			apiKey:  apiKey,
			model:   model,
			baseURL: baseURL,
			httpClient: &http.Client{
				Timeout: 2 * time.Minute,
			},
		},
	}
}
