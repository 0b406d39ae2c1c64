package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iszyeffiong/clarifier/internal/llm"
	"github.com/iszyeffiong/clarifier/internal/remote"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	err := a.state.genError
	if err == nil {
		err = a.state.providerError
	}
	errMsg := "Unknown error"
	if err != nil {
		errMsg = err.Error()
	}

	errBox := styleBox.
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(truncate(errMsg, 300))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(err); len(suggestions) > 0 {
		suggBox := styleBox.
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[r] Retry  [f] Use built-in generator  [s] Settings  [n] New  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func suggestionsFor(err error) []string {
	if err == nil {
		return nil
	}

	var httpErr *llm.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 401, 403:
			return []string{
				"The service rejected the API key",
				"Press [s] and update it, or [f] to stay offline",
			}
		case 429:
			return []string{
				fmt.Sprintf("%s is rate limiting requests", httpErr.Provider),
				"Wait a moment and press [r], or [f] for the built-in generator",
			}
		default:
			return []string{
				fmt.Sprintf("The service answered with status %d", httpErr.StatusCode),
				"Press [r] to retry or [f] for the built-in generator",
			}
		}
	}

	var malformed *remote.MalformedResponseError
	if errors.As(err, &malformed) {
		return []string{
			"The service reply was not valid JSON",
			"Press [r] to ask again or [f] for the built-in generator",
		}
	}

	errLower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errLower, "connect") || strings.Contains(errLower, "timeout"):
		return []string{
			"Check your internet connection",
			"Or press [f] to use the built-in generator offline",
		}
	case strings.Contains(errLower, "ollama"):
		return []string{
			"Make sure Ollama is running: ollama serve",
			"Or switch engines in settings",
		}
	}

	return nil
}
