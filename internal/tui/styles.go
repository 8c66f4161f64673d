package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orbytrixx/orbytrixx/internal/version"
)

// Application branding constants
const (
	AppName    = "ORBYTRIXX"
	WebsiteURL = "orbytrixx.com"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 40 // Narrowest width we still lay out
	MinModalWidth    = 30

	// chromeHeight is the number of rows taken by the outer border, the
	// header and the footer of RenderApplicationContainer.
	chromeHeight = 6
	// contentTop is the first terminal row of the content area.
	contentTop = 3
	// contentLeft is the first terminal column of the content area.
	contentLeft = 1
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Orbit purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#00D7FF") // Cyan
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5F5F") // Red

	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	BorderColor    = lipgloss.Color("#7D56F4")
	HighlightColor = lipgloss.Color("#43BF6D")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1)

	ActiveNavItemStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(true)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(HighlightColor).
				Bold(true).
				Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Background(lipgloss.Color("#2A2A2A")).
				Padding(0, 2)

	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor)

	HighlightedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	CheckStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)
)

// BuildHeaderContent creates header content with app name, version and site URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(WebsiteURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text cut to one
// line of at most maxWidth cells
func BuildFooterContent(helpText string, maxWidth int) string {
	if i := strings.IndexByte(helpText, '\n'); i >= 0 {
		helpText = helpText[:i]
	}
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		MaxWidth(maxWidth).
		Render(helpText)
}

// RenderApplicationContainer wraps every screen: header (name, version,
// site URL), content, footer with help text and an outer border filling the
// terminal.
//
//	func (m Model) View() string {
//	    return RenderApplicationContainer(m.content(), m.help(), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight < chromeHeight+1 {
		terminalHeight = chromeHeight + 1
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)
	styledHeader := headerStyle.Render(BuildHeaderContent())

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)
	styledFooter := footerStyle.Render(BuildFooterContent(footerText, terminalWidth-6))

	// Content height is fixed so the footer stays pinned to the bottom.
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Height(ContentHeight(terminalHeight)).
		MaxHeight(ContentHeight(terminalHeight))
	styledContent := contentStyle.Render(content)

	inner := lipgloss.JoinVertical(lipgloss.Left, styledHeader, styledContent, styledFooter)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// ContentWidth is the usable width inside RenderApplicationContainer.
func ContentWidth(terminalWidth int) int {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	return terminalWidth - 4
}

// ContentHeight is the usable height inside RenderApplicationContainer.
func ContentHeight(terminalHeight int) int {
	h := terminalHeight - chromeHeight
	if h < 1 {
		return 1
	}
	return h
}

// SafeModalWidth returns the smaller of requestedWidth and what fits in the
// terminal, never below MinModalWidth.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < MinModalWidth {
		maxWidth = MinModalWidth
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}

// RenderModal centers modalContent on a dimmed full-screen backdrop.
func RenderModal(modalContent string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#2A2A2A")),
	)
}

// RenderButton renders a button in its focused, idle or disabled state.
func RenderButton(label string, focused, enabled bool) string {
	switch {
	case !enabled:
		return DisabledButtonStyle.Render(label)
	case focused:
		return FocusedButtonStyle.Render("▸ " + label)
	default:
		return ButtonStyle.Render(label)
	}
}
