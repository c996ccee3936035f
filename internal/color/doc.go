// Package color provides terminal color theming for testctl.
//
// Styles adapt to dark and light terminal backgrounds and degrade
// gracefully when the terminal does not support color (lipgloss handles
// profile detection, including NO_COLOR).
package color
