// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/invowk/modrun/internal/config"
	"github.com/invowk/modrun/internal/issue"
)

// Color palette shared by all dispatcher output. Adaptive colors pick the
// light or dark variant from the terminal background or ui.color_scheme.
var (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#7C3AED"}

	// ColorMuted is gray - used for descriptions and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"}

	// ColorError is red - used for errors.
	ColorError = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}

	// ColorHighlight is blue - used for module names and suggestions.
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
)

// styles are bound to one output writer. Writers that are not terminals get
// the Ascii profile, so every style renders as plain text.
type styles struct {
	title       lipgloss.Style
	module      lipgloss.Style
	description lipgloss.Style
	err         lipgloss.Style
	warning     lipgloss.Style
	hint        lipgloss.Style

	// glamourStyle is the issue catalog style matching the writer.
	glamourStyle string
}

func newStyles(w io.Writer, scheme config.ColorScheme) styles {
	r := lipgloss.NewRenderer(w)

	glamourStyle := issue.StyleAuto
	switch scheme {
	case config.ColorSchemeDark:
		r.SetHasDarkBackground(true)
		glamourStyle = "dark"
	case config.ColorSchemeLight:
		r.SetHasDarkBackground(false)
		glamourStyle = "light"
	}
	if r.ColorProfile() == termenv.Ascii {
		glamourStyle = "notty"
	}

	return styles{
		title:        r.NewStyle().Bold(true).Foreground(ColorPrimary),
		module:       r.NewStyle().Foreground(ColorHighlight),
		description:  r.NewStyle().Foreground(ColorMuted),
		err:          r.NewStyle().Bold(true).Foreground(ColorError),
		warning:      r.NewStyle().Foreground(ColorWarning),
		hint:         r.NewStyle().Foreground(ColorMuted).Italic(true),
		glamourStyle: glamourStyle,
	}
}
