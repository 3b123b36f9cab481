package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
	colorWhite  = lipgloss.Color("255") // Bright white - values
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + styleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printStats prints run statistics on a single line.
func printStats(repoCount, languageCount, entryCount int) {
	parts := []string{
		fmt.Sprintf("%d repositories", repoCount),
		fmt.Sprintf("%d languages", languageCount),
		fmt.Sprintf("%d card entries", entryCount),
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += styleDim.Render(" · ")
		}
		line += styleDim.Render(part)
	}
	fmt.Println(line)
}
