package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iszyeffiong/clarifier/internal/clarify"
	"github.com/iszyeffiong/clarifier/internal/config"
	"github.com/iszyeffiong/clarifier/internal/llm"
)

func newResultApp() *App {
	s := newState()
	s.config = config.DefaultConfig()
	s.lastInput = "I waste hours on manual scheduling"
	s.result = s.local.Generate(s.lastInput, clarify.ModeStandard)
	s.source = "local"
	return &App{view: viewResult, state: s}
}

func runCmd(t *testing.T, cmd tea.Cmd) resultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a generation command, got nil")
	}
	msg, ok := cmd().(resultMsg)
	if !ok {
		t.Fatalf("expected resultMsg, got %T", cmd())
	}
	return msg
}

func TestResultTabTogglesWordingMode(t *testing.T) {
	app := newResultApp()

	cmd := app.handleResultKey(tea.KeyMsg{Type: tea.KeyTab})
	if app.state.mode != clarify.ModeVariation {
		t.Fatalf("after tab, mode = %q, want %q", app.state.mode, clarify.ModeVariation)
	}
	if app.view != viewGenerating {
		t.Fatalf("after tab, view = %v, want %v", app.view, viewGenerating)
	}
	msg := runCmd(t, cmd)
	if msg.source != "local" {
		t.Errorf("regenerated source = %q, want %q", msg.source, "local")
	}
	if msg.result == nil {
		t.Fatal("regenerated result is nil")
	}

	// A second tab flips back to standard
	app.handleResultKey(tea.KeyMsg{Type: tea.KeyTab})
	if app.state.mode != clarify.ModeStandard {
		t.Fatalf("after second tab, mode = %q, want %q", app.state.mode, clarify.ModeStandard)
	}
}

func TestResultTabIgnoredOnServicePath(t *testing.T) {
	app := newResultApp()
	app.state.config = &config.Config{Provider: "openai", APIKey: "key", Model: "gpt-4o"}
	app.state.provider = stubProvider{}
	app.state.source = "openai"

	cmd := app.handleResultKey(tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		t.Error("tab on a service result should do nothing")
	}
	if app.state.mode != clarify.ModeStandard {
		t.Errorf("mode = %q, want unchanged %q", app.state.mode, clarify.ModeStandard)
	}
	if app.view != viewResult {
		t.Errorf("view = %v, want unchanged %v", app.view, viewResult)
	}
}

func TestResultRegenerateUsesVariation(t *testing.T) {
	app := newResultApp()

	cmd := app.handleResultKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if app.state.mode != clarify.ModeVariation {
		t.Fatalf("after r, mode = %q, want %q", app.state.mode, clarify.ModeVariation)
	}
	msg := runCmd(t, cmd)
	if msg.source != "local" {
		t.Errorf("regenerated source = %q, want %q", msg.source, "local")
	}
}

type stubProvider struct{}

func (stubProvider) Name() string { return "stub" }

func (stubProvider) Complete(context.Context, *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{}, nil
}

func (stubProvider) Ping(context.Context) error { return nil }
