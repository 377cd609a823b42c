package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var styleErrLabel = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#b71c1c", Dark: "#fa8a8a"})

var styleErrText = lipgloss.NewStyle().Bold(true)

// ErrorLine renders err as one line. Newlines in the message are flattened
func ErrorLine(err error) string {
	text := strings.Join(strings.Fields(err.Error()), " ")
	return Emoji("❗ ") + styleErrLabel.Render("Error:") + " " + styleErrText.Render(text)
}
