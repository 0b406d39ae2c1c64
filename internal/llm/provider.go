package llm

import (
	"context"
)

// Provider is the interface all chat-completion providers implement. The
// clarifier makes exactly one round trip per request, so there is no
// streaming surface.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a completion request and returns the full response.
	// A non-2xx reply from the service is returned as *HTTPError.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the service
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message represents a chat message
type Message struct {
	Role    string
	Content string
}

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
