package components

import (
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// CardWidth returns the uniform inner width used for boxed sections so
// stacked cards visually align.
func CardWidth(frameWidth int) int {
	// Leave room for outer border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CardBox wraps content in a rounded-border card at the given content width.
func CardBox(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
