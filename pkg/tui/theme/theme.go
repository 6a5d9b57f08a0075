// Package theme holds the Lip Gloss styles of the date picker popup.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/datepicker/pkg/calendar"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Header lipgloss.Style
	Input  lipgloss.Style
	Cell   CellTheme
	Footer FooterTheme
}

// CellTheme styles calendar cells by class.
type CellTheme struct {
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Today    lipgloss.Style
	Active   lipgloss.Style
	Cursor   lipgloss.Style
	Disabled lipgloss.Style
	Custom   lipgloss.Style
}

// FooterTheme groups styles used by the buttons and the help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Button lipgloss.Style
}

// Palette is the small set of colours the theme derives everything from.
type Palette struct {
	Foreground string
	Background string
	Accent     string
	Warning    string
}

// DarkPalette suits terminals with a dark background.
var DarkPalette = Palette{
	Foreground: "#e4e4e4",
	Background: "#1c1c1c",
	Accent:     "#5f5fff",
	Warning:    "#ff5f5f",
}

// LightPalette suits terminals with a light background.
var LightPalette = Palette{
	Foreground: "#1c1c1c",
	Background: "#fafafa",
	Accent:     "#5f5fd7",
	Warning:    "#d70000",
}

// Blend mixes a towards b by t in Lab space and returns a hex colour.
// Unparseable input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// ForBackground picks the palette for a dark or light terminal.
func ForBackground(dark bool) Theme {
	if dark {
		return New(DarkPalette)
	}
	return New(LightPalette)
}

// Default returns the dark theme.
func Default() Theme {
	return New(DarkPalette)
}

// New builds a theme from p. Old/new and disabled colours are blends of the
// foreground towards the background.
func New(p Palette) Theme {
	fg := lipgloss.Color(p.Foreground)
	muted := lipgloss.Color(Blend(p.Foreground, p.Background, 0.55))
	faint := lipgloss.Color(Blend(p.Foreground, p.Background, 0.75))
	disabled := lipgloss.Color(Blend(p.Warning, p.Background, 0.5))
	accent := lipgloss.Color(p.Accent)

	return Theme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		Header: lipgloss.NewStyle().Foreground(muted).Bold(true),
		Input:  lipgloss.NewStyle().Foreground(fg),
		Cell: CellTheme{
			Normal:   lipgloss.NewStyle().Foreground(fg),
			Muted:    lipgloss.NewStyle().Foreground(muted),
			Today:    lipgloss.NewStyle().Underline(true),
			Active:   lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color(p.Background)).Bold(true),
			Cursor:   lipgloss.NewStyle().Reverse(true),
			Disabled: lipgloss.NewStyle().Foreground(disabled).Strikethrough(true),
			Custom:   lipgloss.NewStyle().Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(faint),
			Status: lipgloss.NewStyle().Foreground(muted),
			Button: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
	}
}

// For returns the style of a cell with the given classes.
func (c CellTheme) For(classes calendar.Class) lipgloss.Style {
	style := c.Normal
	switch {
	case classes.Has(calendar.Disabled):
		style = c.Disabled
	case classes.Has(calendar.Old), classes.Has(calendar.New):
		style = c.Muted
	}
	if classes.Has(calendar.Custom) {
		style = style.Inherit(c.Custom)
	}
	if classes.Has(calendar.Today) {
		style = style.Inherit(c.Today)
	}
	if classes.Has(calendar.Active) {
		style = c.Active.Inherit(style)
	}
	return style
}
