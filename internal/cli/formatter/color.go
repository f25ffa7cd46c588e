package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// WarningColor maps a cap warning level to its palette color.
func WarningColor(level domain.WarningLevel) lipgloss.Color {
	switch level {
	case domain.WarningDanger:
		return ColorRed
	case domain.WarningSoon:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// WarningStyle returns the foreground style for a warning level. The neutral
// level renders dim so the default note stays in the background.
func WarningStyle(level domain.WarningLevel) lipgloss.Style {
	switch level {
	case domain.WarningDanger:
		return StyleRed.Bold(true)
	case domain.WarningSoon:
		return StyleYellow
	default:
		return StyleDim
	}
}

// WarningIndicator returns a colored marker such as "● KNAPP".
func WarningIndicator(level domain.WarningLevel) string {
	switch level {
	case domain.WarningDanger:
		return StyleRed.Render("● GRENZE")
	case domain.WarningSoon:
		return StyleYellow.Render("● KNAPP")
	default:
		return StyleGreen.Render("● OK")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
