package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iszyeffiong/clarifier/internal/clarify"
	"github.com/iszyeffiong/clarifier/internal/config"
	"github.com/iszyeffiong/clarifier/internal/export"
	"github.com/iszyeffiong/clarifier/internal/llm"
	"github.com/iszyeffiong/clarifier/internal/remote"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewGenerating
	viewResult
	viewSettings
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, _ := config.Load()
	if cfg == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = cfg
	}

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	if a.state.config.Remote() {
		return tea.Batch(
			tea.WindowSize(),
			textinput.Blink,
			a.testProvider(),
		)
	}

	// Local path needs no connectivity
	a.state.providerReady = true
	a.state.input.Focus()
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) testProvider() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		provider, err := llm.NewProvider(cfg)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewWelcome
		a.state.input.Focus()
		if a.state.config.Remote() {
			return a, a.testProvider()
		}
		a.state.providerReady = true
		return a, textinput.Blink

	case setupErrorMsg:
		a.state.providerError = msg.error
		a.view = viewError
		return a, nil

	case providerReadyMsg:
		a.state.provider = msg.provider
		a.state.providerReady = true
		a.state.providerError = nil
		a.state.input.Focus()
		return a, textinput.Blink

	case providerErrorMsg:
		a.state.providerError = msg.error
		a.state.input.Focus()
		return a, textinput.Blink

	case resultMsg:
		a.state.generating = false
		a.state.result = msg.result
		a.state.source = msg.source
		a.state.statusNote = ""
		a.view = viewResult
		return a, nil

	case generateErrMsg:
		a.state.generating = false
		a.state.genError = msg.error
		a.view = viewError
		return a, nil

	case savedMsg:
		a.state.statusNote = "Saved " + msg.path
		return a, nil

	case saveErrMsg:
		a.state.statusNote = "Save failed: " + msg.error.Error()
		return a, nil
	}

	// Route text input updates to the focused field
	if (a.view == viewSetup && a.state.setupStep == 1) ||
		(a.view == viewSettings && a.state.settingsMode == "apikey") {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewWelcome {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		switch a.view {
		case viewSettings:
			if a.state.settingsMode != "" {
				a.state.settingsMode = ""
				a.state.apiKeyInput.Reset()
				return nil
			}
			a.view = a.dismissTo()
			return nil
		case viewHelp, viewError:
			a.view = a.dismissTo()
			return nil
		case viewSetup:
			if a.state.setupStep == 1 {
				a.state.setupStep = 0
				a.state.apiKeyInput.Reset()
				return nil
			}
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if a.view == viewWelcome {
			return a.handleInput()
		}
	}

	// View-specific handling
	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	}

	return nil
}

// dismissTo picks the view to return to after closing an overlay.
func (a *App) dismissTo() view {
	if a.state.result != nil {
		return viewResult
	}
	return viewWelcome
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	// Handle slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case cmd == "/settings" || cmd == "/s":
			a.view = viewSettings
			a.state.input.Reset()
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
		a.state.input.Reset()
		return nil
	}

	a.state.lastInput = input
	a.state.mode = clarify.ModeStandard
	a.state.generating = true
	a.state.input.Reset()
	a.view = viewGenerating
	return a.generate(input, clarify.ModeStandard)
}

// generate routes the request: a configured service provider handles it
// remotely, anything else goes to the built-in template generator. Falling
// back to the local path after a service failure is also decided here, in
// the caller, never inside the generators.
func (a *App) generate(input string, mode clarify.Mode) tea.Cmd {
	if a.state.config.Remote() && a.state.provider != nil {
		provider := a.state.provider
		model := a.state.config.Model
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
			defer cancel()

			res, err := remote.New(provider, model).Generate(ctx, input)
			if err != nil {
				return generateErrMsg{err}
			}
			return resultMsg{result: res, source: provider.Name()}
		}
	}

	local := a.state.local
	return func() tea.Msg {
		return resultMsg{result: local.Generate(input, mode), source: "local"}
	}
}

func (a *App) generateLocally(input string, mode clarify.Mode) tea.Cmd {
	local := a.state.local
	return func() tea.Msg {
		return resultMsg{result: local.Generate(input, mode), source: "local"}
	}
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Regenerate):
		// Regeneration always uses variation mode locally; the service path
		// simply asks again.
		a.state.mode = clarify.ModeVariation
		a.state.generating = true
		a.view = viewGenerating
		return a.generate(a.state.lastInput, clarify.ModeVariation)

	case key.Matches(msg, keys.ToggleMode):
		// Wording modes belong to the built-in generator; the service path
		// has none.
		if a.state.config.Remote() && a.state.provider != nil {
			return nil
		}
		mode := clarify.ModeVariation
		if a.state.mode == clarify.ModeVariation {
			mode = clarify.ModeStandard
		}
		a.state.mode = mode
		a.state.generating = true
		a.view = viewGenerating
		return a.generateLocally(a.state.lastInput, mode)
	}

	switch msg.String() {
	case "n":
		a.state.result = nil
		a.state.statusNote = ""
		a.state.input.Reset()
		a.state.input.Focus()
		a.view = viewWelcome
		return textinput.Blink

	case "m":
		res := a.state.result
		return func() tea.Msg {
			if err := export.WriteMarkdown(res, "clarification.md"); err != nil {
				return saveErrMsg{err}
			}
			return savedMsg{"clarification.md"}
		}

	case "o":
		res := a.state.result
		return func() tea.Msg {
			if err := export.WriteHTML(res, "clarification.html"); err != nil {
				return saveErrMsg{err}
			}
			return savedMsg{"clarification.html"}
		}

	case "s":
		a.view = viewSettings
		return nil
	}

	return nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		if a.state.lastInput == "" {
			return nil
		}
		a.state.generating = true
		a.view = viewGenerating
		return a.generate(a.state.lastInput, a.state.mode)

	case "f":
		// Fall back to the built-in generator for this input
		if a.state.lastInput == "" {
			return nil
		}
		a.state.generating = true
		a.view = viewGenerating
		return a.generateLocally(a.state.lastInput, a.state.mode)

	case "s":
		a.view = viewSettings
		return nil

	case "n":
		a.state.genError = nil
		a.state.input.Reset()
		a.state.input.Focus()
		a.view = viewWelcome
		return textinput.Blink
	}

	return nil
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel

			if provider.NeedsAPIKey {
				a.state.setupStep = 1
				a.state.apiKeyInput.Focus()
				return textinput.Blink
			}
			return a.finishSetup()
		}

	case 1: // API key entry
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			a.state.apiKeyInput.Reset()
			a.state.setupStep = 0
			return a.finishSetup()
		}
	}

	return nil
}

func (a *App) finishSetup() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.settingsMode {
	case "provider":
		switch msg.String() {
		case "up", "k":
			if a.state.settingsSelected > 0 {
				a.state.settingsSelected--
			}
		case "down", "j":
			if a.state.settingsSelected < len(config.Providers)-1 {
				a.state.settingsSelected++
			}
		case "enter":
			provider := config.Providers[a.state.settingsSelected]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel
			a.state.provider = nil
			a.state.settingsMode = ""
			return a.applySettings()
		}

	case "model":
		provider := config.GetProvider(a.state.config.Provider)
		if provider == nil {
			a.state.settingsMode = ""
			return nil
		}
		switch msg.String() {
		case "up", "k":
			if a.state.settingsSelected > 0 {
				a.state.settingsSelected--
			}
		case "down", "j":
			if a.state.settingsSelected < len(provider.Models)-1 {
				a.state.settingsSelected++
			}
		case "enter":
			a.state.config.Model = provider.Models[a.state.settingsSelected]
			a.state.settingsMode = ""
			return a.applySettings()
		}

	case "apikey":
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			a.state.apiKeyInput.Reset()
			a.state.settingsMode = ""
			return a.applySettings()
		}

	default:
		switch msg.String() {
		case "p":
			a.state.settingsMode = "provider"
			a.state.settingsSelected = 0
		case "m":
			a.state.settingsMode = "model"
			a.state.settingsSelected = 0
		case "k":
			a.state.settingsMode = "apikey"
			a.state.apiKeyInput.Focus()
			return textinput.Blink
		}
	}

	return nil
}

func (a *App) applySettings() tea.Cmd {
	cfg := a.state.config
	save := func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
	return save
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }
type resultMsg struct {
	result *clarify.Result
	source string
}
type generateErrMsg struct{ error }
type savedMsg struct{ path string }
type saveErrMsg struct{ error }

// engineLabel describes which generation path the next request will take.
func (a *App) engineLabel() string {
	if a.state.config.Remote() {
		label := a.state.config.Provider
		if a.state.config.Model != "" {
			label = fmt.Sprintf("%s %s", label, a.state.config.Model)
		}
		if !a.state.providerReady {
			label += " (connecting...)"
		}
		return label
	}
	return "built-in templates"
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewGenerating:
		return a.renderGenerating()
	case viewResult:
		return a.renderResult()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderWelcome()
	}
}
