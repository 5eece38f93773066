// Package ui renders recipes for the terminal: the list view, the detail
// view and the tag chips.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette, adaptive to light and dark terminals.
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#4f46e5", Dark: "#818cf8"}
	ColorStar   = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorFail   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorPass   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StarStyle    = lipgloss.NewStyle().Foreground(ColorStar)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	TagStyle     = lipgloss.NewStyle().Foreground(ColorAccent)
	FailStyle    = lipgloss.NewStyle().Foreground(ColorFail)
	PassStyle    = lipgloss.NewStyle().Foreground(ColorPass)
)

// Favorite markers.
const (
	IconFavorite    = "★"
	IconNotFavorite = "☆"
)

// RenderPass renders a success message.
func RenderPass(s string) string { return PassStyle.Render(s) }

// RenderFail renders an error message.
func RenderFail(s string) string { return FailStyle.Render(s) }

// RenderMuted renders secondary text.
func RenderMuted(s string) string { return MutedStyle.Render(s) }
