package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// The CLI calls this when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a green ✓ line. Use it for identifiers that pass a check
// or operations that completed.
//
// Example:
//
//	output.Success("user_name follows SnakeCase")
func Success(msg string) {
	fmt.Println(passStyle.Render("✓ " + msg))
}

// Error prints a red ✗ line. Use it for identifiers that fail a check or
// operations that need user attention.
//
// Example:
//
//	output.Error("userName does not follow SnakeCase")
func Error(msg string) {
	fmt.Println(failStyle.Render("✗ " + msg))
}

// Info prints a cyan heading or status line.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Step prints an indented gray detail line beneath an Info heading.
func Step(msg string) {
	fmt.Println(stepStyle.Render("  " + msg))
}

// Verbose prints a dim line, but only when verbose mode is on.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(verboseStyle.Render("· " + msg))
	}
}
