package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/quadviz/internal/render"
)

// Theme colors the canvas and the side panel. Primitive colors other than
// black and white are drawn as given.
type Theme struct {
	Name   string
	Header lipgloss.Color
	Text   lipgloss.Color
	Grid   lipgloss.Color
	Ok     lipgloss.Color
	Warn   lipgloss.Color
	Alert  lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:   "night",
		Header: lipgloss.Color("#8ab4f8"),
		Text:   lipgloss.Color("#e8eaed"),
		Grid:   lipgloss.Color("#3c4043"),
		Ok:     lipgloss.Color("#81c995"),
		Warn:   lipgloss.Color("#fdd663"),
		Alert:  lipgloss.Color("#f28b82"),
	}

	// single-hue scope look, traces keep their own colors
	ThemePhosphor = Theme{
		Name:   "phosphor",
		Header: lipgloss.Color("#33ff66"),
		Text:   lipgloss.Color("#b3ffc6"),
		Grid:   lipgloss.Color("#0f4d1f"),
		Ok:     lipgloss.Color("#33ff66"),
		Warn:   lipgloss.Color("#e6ff33"),
		Alert:  lipgloss.Color("#ff5533"),
	}

	ThemeBlueprint = Theme{
		Name:   "blueprint",
		Header: lipgloss.Color("#9fd3ff"),
		Text:   lipgloss.Color("#f0f8ff"),
		Grid:   lipgloss.Color("#1f4f7a"),
		Ok:     lipgloss.Color("#7fffd4"),
		Warn:   lipgloss.Color("#ffd27f"),
		Alert:  lipgloss.Color("#ff7f7f"),
	}

	ThemeDusk = Theme{
		Name:   "dusk",
		Header: lipgloss.Color("#d7a9e3"),
		Text:   lipgloss.Color("#f5e9f7"),
		Grid:   lipgloss.Color("#4a3a52"),
		Ok:     lipgloss.Color("#a3d9a5"),
		Warn:   lipgloss.Color("#f3c77b"),
		Alert:  lipgloss.Color("#f08a8a"),
	}

	Themes = []Theme{ThemeNight, ThemePhosphor, ThemeBlueprint, ThemeDusk}
)

// GetTheme returns a theme by name, falling back to night.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNight
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Ink maps a primitive color onto the terminal palette. Black and white
// primitives would vanish against a dark background, so they take the
// theme's text color.
func (t Theme) Ink(hex string) lipgloss.Color {
	switch hex {
	case render.Black, render.White, "":
		return t.Text
	}
	return lipgloss.Color(hex)
}
