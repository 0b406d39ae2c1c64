package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iszyeffiong/clarifier/internal/clarify"
)

func sampleResult() *clarify.Result {
	return &clarify.Result{
		ProblemStatement:        "Things are slow.",
		TargetUsers:             "Busy people",
		UserPainPoints:          []string{"waiting", "guessing"},
		SolutionDirection:       "Make it fast.",
		KeyFeatures:             []string{"speed"},
		AssumptionsRisks:        "Speed is the problem.",
		SuccessMetrics:          []string{"less waiting"},
		TechnicalConsiderations: "Caching.",
		NextSteps:               []string{"measure first"},
	}
}

func TestMarkdown(t *testing.T) {
	md := string(Markdown(sampleResult()))

	for _, want := range []string{
		"# Problem Clarification",
		"## Problem Statement",
		"Things are slow.",
		"- waiting",
		"## Next Steps",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "## Context") {
		t.Error("empty ProblemContext should not produce a Context section")
	}
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clarification.html")
	if err := WriteHTML(sampleResult(), path); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	if !strings.Contains(html, "<h2>User Pain Points</h2>") {
		t.Errorf("html missing rendered heading:\n%s", html)
	}
	if !strings.Contains(html, "<li>waiting</li>") {
		t.Error("html missing rendered list item")
	}
}
