package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
  ██████╗██╗      █████╗ ██████╗ ██╗███████╗██╗   ██╗
 ██╔════╝██║     ██╔══██╗██╔══██╗██║██╔════╝╚██╗ ██╔╝
 ██║     ██║     ███████║██████╔╝██║█████╗   ╚████╔╝
 ██║     ██║     ██╔══██║██╔══██╗██║██╔══╝    ╚██╔╝
 ╚██████╗███████╗██║  ██║██║  ██║██║██║        ██║
  ╚═════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝        ╚═╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Turn a rough problem into a structured clarification")

	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	engine := styleSubtitle.Render("engine: " + a.engineLabel())

	var warning string
	if a.state.providerError != nil {
		warning = lipgloss.NewStyle().Foreground(colorError).
			Render(truncate("service unreachable: "+a.state.providerError.Error(), 70))
	}

	statusBar := styleStatusBar.Render("[Enter] Clarify  [/help] Commands  [Esc] Quit")

	parts := []string{logoRendered, subtitle, "", inputBox, engine}
	if warning != "" {
		parts = append(parts, warning)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
