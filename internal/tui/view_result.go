package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	asked := styleSubtitle.Render("> " + truncate(a.state.lastInput, 70))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n")

	source := styleSubtitle.Render("via " + a.state.source + "  ·  " + string(a.state.mode))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, source))
	b.WriteString("\n\n")

	boxWidth := min(76, a.width-4)
	textWidth := boxWidth - 4
	wrap := lipgloss.NewStyle().Width(textWidth)

	var lines []string
	for i, s := range a.state.result.Sections() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styleSectionTitle.Render(s.Title))
		if s.Prose != "" {
			lines = append(lines, wrap.Render(s.Prose))
		}
		for _, item := range s.Items {
			lines = append(lines, wrap.Render("• "+item))
		}
	}

	content := strings.Join(lines, "\n")

	// Clip to the screen; exports carry the full record
	maxHeight := a.height - 8
	if maxHeight < 5 {
		maxHeight = 5
	}
	contentLines := strings.Split(content, "\n")
	if len(contentLines) > maxHeight {
		contentLines = contentLines[:maxHeight-1]
		contentLines = append(contentLines, styleSubtitle.Render("... (save with [m] to read everything)"))
		content = strings.Join(contentLines, "\n")
	}

	resultBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorPrimary).
		Render(content)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	status := "[r] Regenerate  [Tab] Wording  [m] Markdown  [o] HTML  [n] New  [s] Settings  [Esc] Quit"
	if a.state.statusNote != "" {
		status = a.state.statusNote + "   " + status
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return b.String()
}
