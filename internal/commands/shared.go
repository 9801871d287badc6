package commands

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Shared styles used across command models.
var (
	SpinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	GuidanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// guidanceText is shown under results and when a lookup comes back empty.
const guidanceText = "Tip: try name variations (accents are ignored) or common nicknames."

func noDataMessage(query string) string {
	return fmt.Sprintf("No data found for %q. %s", query, guidanceText)
}

var countPrinter = message.NewPrinter(language.English)

// formatCount renders a frequency with thousands separators for table display.
func formatCount(count int64) string {
	return countPrinter.Sprintf("%d", count)
}

// NewLoadingSpinner creates a spinner with consistent styling for loading states.
func NewLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return s
}
