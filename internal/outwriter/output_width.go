package outwriter

import (
	"os"

	"github.com/restorepath/readiness/internal/contract"
	"golang.org/x/term"
)

// getMaxTextWidth calculates the maximum width of free-text table cells
// (remediations, recommendations) based on terminal width.
func getMaxTextWidth(cfg *contract.Config, fixedColumns int) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for table borders, separators, and padding
	available := termWidth - fixedColumns - 10
	if available < 20 {
		return 20
	}
	if available > 90 {
		return 90
	}
	return available
}

// truncateText shortens s to maxWidth runes, marking the cut with an ellipsis.
func truncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}
