// Package remote produces clarification records by forwarding the problem
// description to a chat-completion service and parsing its JSON reply. It
// holds no generation logic of its own: one request, no retry, and the
// parsed object is passed through without schema validation.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iszyeffiong/clarifier/internal/clarify"
	"github.com/iszyeffiong/clarifier/internal/llm"
	"github.com/iszyeffiong/clarifier/internal/prompts"
)

// MalformedResponseError is returned when the service reply is not valid
// JSON after code-fence stripping. Raw keeps the reply text for display.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("service reply is not valid JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Generator asks a chat-completion provider for a clarification record.
type Generator struct {
	provider llm.Provider
	model    string
}

func New(provider llm.Provider, model string) *Generator {
	return &Generator{
		provider: provider,
		model:    model,
	}
}

// NewWithKey wires the OpenAI provider for callers that hold only an API key.
func NewWithKey(apiKey, model string) *Generator {
	return New(llm.NewOpenAIProvider(apiKey, model), model)
}

// Generate sends one clarification request. Low temperature keeps the
// phrasing close to deterministic. Provider errors (including *llm.HTTPError
// for non-2xx replies) propagate unmodified; an unparseable reply becomes a
// *MalformedResponseError. Cancellation is the caller's job via ctx.
func (g *Generator) Generate(ctx context.Context, input string) (*clarify.Result, error) {
	req := &llm.CompletionRequest{
		Model: g.model,
		Messages: []llm.Message{
			{Role: "system", Content: prompts.Clarify},
			{Role: "user", Content: prompts.BuildClarifyPrompt(input)},
		},
		MaxTokens:   1024,
		Temperature: 0.2,
	}

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	content := stripFences(resp.Content)

	// Absent keys decode to zero values and unknown keys are dropped; the
	// reply is deliberately not validated against the field set.
	var res clarify.Result
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return nil, &MalformedResponseError{Raw: resp.Content, Err: err}
	}

	return &res, nil
}

// stripFences removes a surrounding markdown code block, with or without a
// language tag, from a reply.
func stripFences(s string) string {
	cleaned := strings.TrimSpace(s)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}
