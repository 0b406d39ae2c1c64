package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed clarify.md
var Clarify string

// BuildClarifyPrompt wraps the raw problem description as the user message
// for the clarification request.
func BuildClarifyPrompt(input string) string {
	return fmt.Sprintf("Problem description:\n\n%s", strings.TrimSpace(input))
}
