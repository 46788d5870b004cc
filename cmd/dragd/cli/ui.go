// Package cli carries the terminal chrome shared by the dragd commands:
// the logo, colored status printers and the theme they draw from.
package cli

import (
	"fmt"
	"strings"
)

// ColorTheme represents a set of colors for the CLI
type ColorTheme struct {
	Name       string
	Success    string
	Error      string
	Warning    string
	Info       string
	Header     string
	Logo       string
	BoxOutline string
}

// Terminal colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// DefaultTheme is the cyan scheme used unless overridden.
var DefaultTheme = ColorTheme{
	Name:       "default",
	Success:    colorGreen,
	Error:      colorRed,
	Warning:    colorYellow,
	Info:       colorBlue,
	Header:     colorCyan + colorBold,
	Logo:       colorCyan,
	BoxOutline: colorCyan,
}

// CurrentTheme is the active theme.
var CurrentTheme = DefaultTheme

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(CurrentTheme.Success + "✓ " + message + colorReset)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(CurrentTheme.Error + "✗ " + message + colorReset)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(CurrentTheme.Warning + "! " + message + colorReset)
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	fmt.Println(CurrentTheme.Info + "ℹ " + message + colorReset)
}

// PrintHeader prints a section header
func PrintHeader(message string) {
	fmt.Println("\n" + CurrentTheme.Header + message + colorReset)
	fmt.Println(strings.Repeat("─", len([]rune(message))))
}

// DrawBox creates a colored box around content
func DrawBox(content string) string {
	lines := strings.Split(content, "\n")
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	var sb strings.Builder
	sb.WriteString(CurrentTheme.BoxOutline + "┌" + strings.Repeat("─", maxLen+2) + "┐\n")
	for _, line := range lines {
		sb.WriteString("│ " + line + strings.Repeat(" ", maxLen-len([]rune(line))) + " │\n")
	}
	sb.WriteString("└" + strings.Repeat("─", maxLen+2) + "┘" + colorReset)
	return sb.String()
}

// DrawDragdLogo generates the ASCII art logo for dragd.
func DrawDragdLogo() string {
	logo := `
	'########::'########:::::'###:::::'######::::'########::
	 ##.... ##: ##.... ##:::'## ##:::'##... ##::: ##.... ##:
	 ##:::: ##: ##:::: ##::'##:. ##:: ##:::..:::: ##:::: ##:
	 ##:::: ##: ########::'##:::. ##: ##::'####:: ##:::: ##:
	 ##:::: ##: ##.. ##::: #########: ##::: ##::: ##:::: ##:
	 ##:::: ##: ##::. ##:: ##.... ##: ##::: ##::: ##:::: ##:
	 ########:: ##:::. ##: ##:::: ##:. ######:::: ########::
	........:::..:::::..::..:::::..:::......:::::........:::
`
	return CurrentTheme.Logo + logo + colorReset
}
