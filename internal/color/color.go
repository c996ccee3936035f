package color

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"}).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})
)

// Success renders s in the success style.
func Success(s string) string {
	return successStyle.Render(s)
}

// Error renders s in the error style.
func Error(s string) string {
	return errorStyle.Render(s)
}

// Info renders s in the info style.
func Info(s string) string {
	return infoStyle.Render(s)
}
