package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorGreen   = lipgloss.Color("42")
	colorTeal    = lipgloss.Color("37")
	colorAmber   = lipgloss.Color("214")
	colorRed     = lipgloss.Color("196")
	colorGrey    = lipgloss.Color("245")
	colorDim     = lipgloss.Color("240")
	colorWhite   = lipgloss.Color("255")
	colorSurface = lipgloss.Color("236")

	barFillColor      = "#2EA66B"
	barHighlightColor = "#E0A030"
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	// HeaderStyle is used for section titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	// TitleStyle is the page title.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Padding(1, 0, 0, 0)

	LabelStyle  = lipgloss.NewStyle().Foreground(colorGrey)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	SubtleStyle = lipgloss.NewStyle().Foreground(colorDim)
	InfoStyle   = lipgloss.NewStyle().Foreground(colorTeal)
	ItalicStyle = lipgloss.NewStyle().Italic(true)

	// EmphasisStyle renders the headline figure and highlighted rows.
	EmphasisStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
	WarningStyle  = lipgloss.NewStyle().Foreground(colorRed)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	// FocusedBoxStyle marks the section that receives keys.
	FocusedBoxStyle = BoxStyle.BorderForeground(colorGreen)

	// ModalStyle frames the details overlay.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorGreen).
			Background(colorSurface).
			Padding(1, 2)

	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(lipgloss.Color("28"))
)
