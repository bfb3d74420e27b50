package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/output"
)

var (
	DimColor    = lipgloss.Color("#6c6c6c")
	TextColor   = lipgloss.Color("#e0e0e0")
	AccentColor = lipgloss.Color("#7aa2f7")
	ErrorColor  = lipgloss.Color("#f7768e")
	GreenColor  = lipgloss.Color("#9ece6a")
	YellowColor = lipgloss.Color("#e0af68")
	BlueColor   = lipgloss.Color("#7aa2f7")
	RedColor    = lipgloss.Color("#f7768e")
	PurpleColor = lipgloss.Color("#bb9af7")
)

var (
	TabStyle = lipgloss.NewStyle().
			Foreground(DimColor).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	DisabledRowStyle = lipgloss.NewStyle().
				Foreground(DimColor).
				Strikethrough(true)

	MetaStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(DimColor).
				Italic(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(YellowColor)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(DimColor)

	DisabledShortcutStyle = lipgloss.NewStyle().
				Foreground(DimColor).
				Faint(true)
)

// MethodStyle returns the badge style for a method.
func MethodStyle(m input.Method) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch m {
	case input.MethodGet:
		return base.Foreground(GreenColor)
	case input.MethodPost:
		return base.Foreground(YellowColor)
	case input.MethodPut:
		return base.Foreground(BlueColor)
	case input.MethodDelete:
		return base.Foreground(RedColor)
	case input.MethodPatch:
		return base.Foreground(PurpleColor)
	default:
		return base.Foreground(DimColor)
	}
}

// StatusStyle colours a status code by class.
func StatusStyle(code int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch output.ClassifyStatus(code) {
	case output.StatusSuccess:
		return base.Foreground(GreenColor)
	case output.StatusRedirect:
		return base.Foreground(BlueColor)
	case output.StatusClientError:
		return base.Foreground(YellowColor)
	default:
		return base.Foreground(RedColor)
	}
}
