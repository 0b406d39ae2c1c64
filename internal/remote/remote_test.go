package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iszyeffiong/clarifier/internal/llm"
)

// chatServer returns an httptest server that answers /chat/completions with
// the given status and assistant message content.
func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, "quota exceeded")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		body := map[string]any{
			"choices": []map[string]any{
				{
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		}
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestGenerateHTTPError(t *testing.T) {
	ts := chatServer(t, http.StatusTooManyRequests, "")
	defer ts.Close()

	g := New(llm.NewCustomProvider(ts.URL, "key", "test-model"), "test-model")

	_, err := g.Generate(context.Background(), "anything")
	if err == nil {
		t.Fatal("Generate() succeeded, want HTTP error")
	}

	var httpErr *llm.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error %T is not *llm.HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want %d", httpErr.StatusCode, http.StatusTooManyRequests)
	}
	if httpErr.Body != "quota exceeded" {
		t.Errorf("Body = %q, want the response body text", httpErr.Body)
	}
}

func TestGenerateParsesFencedJSON(t *testing.T) {
	reply := "```json\n" + `{
  "problemStatement": "Finding things is slow.",
  "targetUsers": "Researchers",
  "userPainPoints": ["search is bad"],
  "solutionDirection": "Better search.",
  "keyFeatures": ["unified index"],
  "assumptionsRisks": "Data is accessible.",
  "successMetrics": ["faster lookups"],
  "technicalConsiderations": "Index freshness.",
  "nextSteps": ["interview users"]
}` + "\n```"

	ts := chatServer(t, http.StatusOK, reply)
	defer ts.Close()

	g := New(llm.NewCustomProvider(ts.URL, "key", "test-model"), "test-model")

	res, err := g.Generate(context.Background(), "it is hard to find things")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.ProblemStatement != "Finding things is slow." {
		t.Errorf("ProblemStatement = %q", res.ProblemStatement)
	}
	if len(res.UserPainPoints) != 1 || res.UserPainPoints[0] != "search is bad" {
		t.Errorf("UserPainPoints = %v", res.UserPainPoints)
	}
}

func TestGeneratePassesThroughPartialReply(t *testing.T) {
	// Missing keys decode to zero values; nothing validates the field set.
	ts := chatServer(t, http.StatusOK, `{"problemStatement": "only this", "extraneous": true}`)
	defer ts.Close()

	g := New(llm.NewCustomProvider(ts.URL, "key", "test-model"), "test-model")

	res, err := g.Generate(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.ProblemStatement != "only this" {
		t.Errorf("ProblemStatement = %q", res.ProblemStatement)
	}
	if res.UserPainPoints != nil {
		t.Errorf("UserPainPoints = %v, want nil for a missing key", res.UserPainPoints)
	}
}

func TestGenerateMalformedReply(t *testing.T) {
	ts := chatServer(t, http.StatusOK, "Sure! Here is your clarification:")
	defer ts.Close()

	g := New(llm.NewCustomProvider(ts.URL, "key", "test-model"), "test-model")

	_, err := g.Generate(context.Background(), "anything")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("error %T = %v, want *MalformedResponseError", err, err)
	}
	if malformed.Raw != "Sure! Here is your clarification:" {
		t.Errorf("Raw = %q, want the original reply text", malformed.Raw)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
