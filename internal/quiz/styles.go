package quiz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handrank/poker"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// renderHand lists the cards high to low with hearts and diamonds in red.
func renderHand(h poker.Hand) string {
	cards := strings.Fields(h.String())
	for i, c := range cards {
		style := BlackCardStyle
		if strings.HasSuffix(c, "h") || strings.HasSuffix(c, "d") {
			style = RedCardStyle
		}
		cards[i] = style.Render(c)
	}
	return strings.Join(cards, " ")
}
