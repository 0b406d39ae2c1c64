package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/iszyeffiong/clarifier/internal/clarify"
	"github.com/iszyeffiong/clarifier/internal/config"
	"github.com/iszyeffiong/clarifier/internal/llm"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Settings state
	settingsMode     string // "", "provider", "model", "apikey"
	settingsSelected int

	// Problem description input
	input textinput.Model

	// Generation
	local      *clarify.Generator
	lastInput  string
	mode       clarify.Mode
	generating bool
	result     *clarify.Result
	source     string // "local" or the provider name
	genError   error

	// Transient note shown in the result status bar after an export
	statusNote string

	// Service provider (nil on the local path)
	provider      llm.Provider
	providerReady bool
	providerError error
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Describe the problem, or /help for commands..."
	input.CharLimit = 500
	input.Width = 64

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	return &state{
		input:       input,
		apiKeyInput: apiKey,
		local:       clarify.NewGenerator(),
		mode:        clarify.ModeStandard,
	}
}
