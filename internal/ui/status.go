package ui

import "fmt"

// status.go provides styled stdout helpers for use outside a running
// bubbletea program.

// PrintSuccess prints a green success message
func PrintSuccess(message string) {
	fmt.Println(SuccessStyle.Render("✓ " + message))
}

// PrintError prints a red error message
func PrintError(message string) {
	fmt.Println(ErrorStyle.Render("✗ " + message))
}

// PrintInfo prints a dimmed informational message
func PrintInfo(message string) {
	fmt.Println(HintStyle.Render(message))
}
