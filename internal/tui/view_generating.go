package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderGenerating() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Clarifying")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	asked := styleSubtitle.Render("> " + truncate(a.state.lastInput, 60))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	engine := styleSubtitle.Render("via " + a.engineLabel())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, engine))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
