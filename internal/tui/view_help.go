package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /help, /h      Show this help",
		"  /settings, /s  Open settings",
		"  /quit, /q      Quit clarifier",
		"",
		"  Or type a problem description and press Enter",
	}

	commandsBox := styleBox.
		Width(54).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	shortcutsTitle := styleSubtitle.Render("On a clarification")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  r              Regenerate with varied wording",
		"  Tab            Toggle standard/varied wording",
		"  m              Save as markdown",
		"  o              Save as HTML",
		"  n              Start a new clarification",
		"  Esc            Go back / Quit",
	}

	shortcutsBox := styleBox.
		Width(54).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
