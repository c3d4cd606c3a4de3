// ABOUTME: Defines lipgloss styles for the gifbox pages, navbar, status bar, and inline errors.
// ABOUTME: Provides FieldStyle to pick the focused or blurred look for an input row.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Page frame
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Form fields
	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	// Feedback
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	// Result rows
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	RowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	URLStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	CategoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// Navbar
	NavStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 2)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// FieldStyle returns the label style for an input row.
func FieldStyle(focused bool) lipgloss.Style {
	if focused {
		return FocusedStyle
	}
	return BlurredStyle
}
