package form

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/formnav/internal/version"
)

// Application branding constants
const (
	AppName   = "FORMNAV"
	GitHubURL = "github.com/muurk/formnav"
)

// Layout constants
const (
	MinTerminalWidth = 72 // Minimum supported terminal width
	fieldWidth       = 40
	textAreaHeight   = 3
	labelWidth       = 14
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	GroupStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Width(labelWidth).
			Foreground(TextColor)

	FocusedLabelStyle = lipgloss.NewStyle().
				Width(labelWidth).
				Foreground(PrimaryColor).
				Bold(true)

	DisabledLabelStyle = lipgloss.NewStyle().
				Width(labelWidth).
				Foreground(SubtleColor).
				Strikethrough(true)

	// Badge showing the field's current submit label
	SubmitLabelStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				PaddingLeft(1)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(labelWidth)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor)
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps a screen in the application chrome:
// a header, the content, and a footer pinned under it, inside an outer
// border sized to the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < 10 {
		terminalHeight = 10
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(footerText),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
